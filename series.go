package etfcast

import (
	"iter"

	"github.com/etnz/etfcast/date"
)

// PriceSeries is a read-only chronological series of daily closing prices
// for one security. It is immutable once built.
type PriceSeries struct {
	symbol string
	hist   *date.History
}

// NewPriceSeries wraps a fetched price history into a read-only series.
// Every price must be strictly positive, otherwise it returns an
// InvalidPriceError. An empty history is accepted here and rejected later
// by Extract.
func NewPriceSeries(symbol string, hist *date.History) (PriceSeries, error) {
	if hist == nil {
		hist = new(date.History)
	}
	for _, price := range hist.Values() {
		if price <= 0 {
			return PriceSeries{}, &InvalidPriceError{Symbol: symbol, Price: price}
		}
	}
	return PriceSeries{symbol: symbol, hist: hist}, nil
}

// Symbol returns the security identifier of the series.
func (s PriceSeries) Symbol() string { return s.symbol }

// Len returns the number of price observations.
func (s PriceSeries) Len() int {
	if s.hist == nil {
		return 0
	}
	return s.hist.Len()
}

// First returns the earliest observation.
func (s PriceSeries) First() (date.Date, float64) { return s.hist.First() }

// Latest returns the most recent observation.
func (s PriceSeries) Latest() (date.Date, float64) { return s.hist.Latest() }

// Values iterates over all observations in chronological order.
func (s PriceSeries) Values() iter.Seq2[date.Date, float64] { return s.hist.Values() }

// SpanDays returns the number of whole days covered by the series.
func (s PriceSeries) SpanDays() int { return s.hist.Span() }

// Mean returns the average price over the whole series.
func (s PriceSeries) Mean() float64 { return s.hist.Mean() }

// MeanByYear returns the average price per calendar year.
func (s PriceSeries) MeanByYear() map[int]float64 { return s.hist.MeanByYear() }

// DividendSeries is a read-only chronological series of per-share cash
// distributions for one security. It may be empty and is immutable once
// built.
type DividendSeries struct {
	symbol string
	hist   *date.History
}

// NewDividendSeries wraps a fetched distribution history into a read-only
// series. Negative amounts are rejected with an InvalidPriceError since a
// negative distribution has no meaning here.
func NewDividendSeries(symbol string, hist *date.History) (DividendSeries, error) {
	if hist == nil {
		hist = new(date.History)
	}
	for _, amount := range hist.Values() {
		if amount < 0 {
			return DividendSeries{}, &InvalidPriceError{Symbol: symbol, Price: amount}
		}
	}
	return DividendSeries{symbol: symbol, hist: hist}, nil
}

// Symbol returns the security identifier of the series.
func (s DividendSeries) Symbol() string { return s.symbol }

// Len returns the number of distribution records.
func (s DividendSeries) Len() int {
	if s.hist == nil {
		return 0
	}
	return s.hist.Len()
}

// Values iterates over all distributions in chronological order.
func (s DividendSeries) Values() iter.Seq2[date.Date, float64] { return s.hist.Values() }

// Sum returns the total of all recorded distributions.
func (s DividendSeries) Sum() float64 { return s.hist.Sum() }

// SumByYear returns the total distributions per calendar year.
func (s DividendSeries) SumByYear() map[int]float64 { return s.hist.SumByYear() }
