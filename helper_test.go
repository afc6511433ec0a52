package etfcast

import (
	"testing"

	"github.com/etnz/etfcast/date"
)

// history builds a date.History from date-string/value pairs.
func history(t *testing.T, points map[string]float64) *date.History {
	t.Helper()
	h := new(date.History)
	for str, v := range points {
		h.Append(date.MustParse(str), v)
	}
	return h
}

// testPrices builds a valid PriceSeries for tests.
func testPrices(t *testing.T, symbol string, points map[string]float64) PriceSeries {
	t.Helper()
	s, err := NewPriceSeries(symbol, history(t, points))
	if err != nil {
		t.Fatalf("NewPriceSeries() error = %v", err)
	}
	return s
}

// testDividends builds a valid DividendSeries for tests.
func testDividends(t *testing.T, symbol string, points map[string]float64) DividendSeries {
	t.Helper()
	s, err := NewDividendSeries(symbol, history(t, points))
	if err != nil {
		t.Fatalf("NewDividendSeries() error = %v", err)
	}
	return s
}

// noDividends is an empty distribution history.
func noDividends(t *testing.T, symbol string) DividendSeries {
	t.Helper()
	return testDividends(t, symbol, nil)
}

// abs is a float helper for tolerance comparisons.
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
