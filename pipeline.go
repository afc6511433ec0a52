package etfcast

import (
	"errors"
	"sync"

	"github.com/etnz/etfcast/date"
)

// HistoryProvider is the external collaborator that delivers raw market
// history for a symbol. PriceHistory must return a non-empty chronological
// close series or fail; DividendHistory may return an empty history, which
// is not an error for securities that never distributed.
type HistoryProvider interface {
	PriceHistory(symbol string) (*date.History, error)
	DividendHistory(symbol string) (*date.History, error)
}

// Report bundles everything derived for one symbol.
type Report struct {
	Metrics    HistoricalMetrics
	Projection ProjectionResult
}

// Run executes the whole pipeline for one symbol: fetch, extract, simulate.
// Any failure is terminal for this symbol and is returned as one of the
// typed errors of this package.
func Run(provider HistoryProvider, symbol string, config ProjectionConfig) (*Report, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	rawPrices, err := provider.PriceHistory(symbol)
	if err != nil {
		return nil, unavailable(symbol, err)
	}
	rawDividends, err := provider.DividendHistory(symbol)
	if err != nil {
		return nil, unavailable(symbol, err)
	}

	prices, err := NewPriceSeries(symbol, rawPrices)
	if err != nil {
		return nil, err
	}
	dividends, err := NewDividendSeries(symbol, rawDividends)
	if err != nil {
		return nil, err
	}

	metrics, err := Extract(prices, dividends)
	if err != nil {
		return nil, err
	}
	projection, err := Simulate(metrics, config)
	if err != nil {
		return nil, err
	}
	return &Report{Metrics: metrics, Projection: projection}, nil
}

// unavailable wraps a collaborator failure, keeping the original message and
// never double-wrapping an already typed error.
func unavailable(symbol string, err error) error {
	var unavail *DataUnavailableError
	if errors.As(err, &unavail) {
		return err
	}
	return &DataUnavailableError{Symbol: symbol, Err: err}
}

// PairReport holds both legs of a dual-symbol run. Each leg keeps its own
// error so that one symbol failing never suppresses the other's report; the
// comparison is only available when both legs succeeded.
type PairReport struct {
	SymbolA, SymbolB string
	A, B             *Report
	ErrA, ErrB       error
	Comparison       *ComparisonOutcome
}

// RunPair executes the pipeline for two symbols under the same plan. The two
// legs are independent and run concurrently.
func RunPair(provider HistoryProvider, symbolA, symbolB string, config ProjectionConfig) *PairReport {
	pair := &PairReport{SymbolA: symbolA, SymbolB: symbolB}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		pair.A, pair.ErrA = Run(provider, symbolA, config)
	}()
	go func() {
		defer wg.Done()
		pair.B, pair.ErrB = Run(provider, symbolB, config)
	}()
	wg.Wait()

	if pair.ErrA == nil && pair.ErrB == nil {
		outcome := Compare(pair.A.Projection, pair.B.Projection)
		pair.Comparison = &outcome
	}
	return pair
}
