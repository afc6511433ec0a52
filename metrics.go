package etfcast

import (
	"math"

	"github.com/etnz/etfcast/date"
)

const (
	daysPerYear = 365.25
	// minYears is the floor applied to the observed span so that a security
	// listed for less than a few days does not divide by zero.
	minYears = 0.01
)

// HistoricalMetrics is the compact statistical summary of a security's past,
// derived once from its full price and distribution history and never
// mutated afterwards.
type HistoricalMetrics struct {
	Symbol      string
	GrowthRate  float64 // annualized price growth (CAGR), as a fraction
	YieldRate   float64 // annualized distribution yield, as a fraction
	Years       float64 // observed span in years, floor-clamped to minYears
	LatestPrice float64
	FirstDate   date.Date
	LastDate    date.Date
	// ShortHistory flags a span under one year: annualized figures are then
	// extrapolated from a sub-annual sample and can be extreme.
	ShortHistory bool
}

// Growth returns the annualized growth rate as a display percentage.
func (m HistoricalMetrics) Growth() Percent { return Percent(m.GrowthRate * 100) }

// Yield returns the annualized yield rate as a display percentage.
func (m HistoricalMetrics) Yield() Percent { return Percent(m.YieldRate * 100) }

// Extract derives HistoricalMetrics from a security's history.
//
// The growth rate is a single-observation CAGR over the entire available
// span: it reconciles only the first and last closes, so for a short span it
// annualizes short-term moves into very large figures. That is the intended
// behavior, flagged through ShortHistory rather than smoothed away.
//
// The yield rate is the mean, over calendar years having both distribution
// and price data, of that year's total distributions over that year's
// average price. When no calendar year has both (span under a reporting
// boundary), it falls back to a coarse linear annualization:
// total distributions over mean price, scaled by 1/years.
//
// It fails with a NoHistoryError when the price series is empty, and with an
// InvalidPriceError when the latest close is not strictly positive.
func Extract(prices PriceSeries, dividends DividendSeries) (HistoricalMetrics, error) {
	if prices.Len() == 0 {
		return HistoricalMetrics{}, &NoHistoryError{Symbol: prices.Symbol()}
	}

	firstDate, firstPrice := prices.First()
	lastDate, lastPrice := prices.Latest()
	if lastPrice <= 0 {
		return HistoricalMetrics{}, &InvalidPriceError{Symbol: prices.Symbol(), Price: lastPrice}
	}

	years := float64(prices.SpanDays()) / daysPerYear
	short := years < 1
	if years < minYears {
		years = minYears
	}

	var growth float64
	if firstPrice > 0 {
		growth = math.Pow(lastPrice/firstPrice, 1/years) - 1
	}

	return HistoricalMetrics{
		Symbol:       prices.Symbol(),
		GrowthRate:   growth,
		YieldRate:    annualYield(prices, dividends, years),
		Years:        years,
		LatestPrice:  lastPrice,
		FirstDate:    firstDate,
		LastDate:     lastDate,
		ShortHistory: short,
	}, nil
}

// annualYield computes the annualized distribution yield, see Extract.
func annualYield(prices PriceSeries, dividends DividendSeries, years float64) float64 {
	if dividends.Len() == 0 {
		return 0
	}

	yearlyDivs := dividends.SumByYear()
	yearlyPrices := prices.MeanByYear()

	var sum float64
	var n int
	for year, div := range yearlyDivs {
		if price, ok := yearlyPrices[year]; ok {
			sum += div / price
			n++
		}
	}
	if n > 0 {
		return sum / float64(n)
	}

	// No calendar year holds both distributions and prices: estimate from
	// the aggregate period yield, linearly scaled to a full year.
	return dividends.Sum() / prices.Mean() * (1 / years)
}
