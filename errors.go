package etfcast

import "fmt"

// The pipeline fails with one of four terminal error kinds. Each carries the
// offending symbol or parameter so callers can report failures distinctly,
// which matters in dual-symbol mode where one leg may fail while the other
// still reports.

// DataUnavailableError reports that the market-data collaborator failed or
// returned nothing usable for a symbol. It wraps the original fetch error.
type DataUnavailableError struct {
	Symbol string
	Err    error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("%s: market history unavailable: %v", e.Symbol, e.Err)
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }

// NoHistoryError reports an empty price history for a symbol.
type NoHistoryError struct {
	Symbol string
}

func (e *NoHistoryError) Error() string {
	return fmt.Sprintf("%s: no price history", e.Symbol)
}

// InvalidPriceError reports a zero or negative price, which makes growth
// rate and share count computations undefined. It is never coerced to zero.
type InvalidPriceError struct {
	Symbol string
	Price  float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("%s: invalid price %g, must be strictly positive", e.Symbol, e.Price)
}

// InvalidConfigError reports an unusable contribution plan.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid projection plan: %s", e.Reason)
}
