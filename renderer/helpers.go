// Package renderer builds the user-facing markdown and CSV reports from the
// core value objects. All rounding and currency formatting happens here, at
// the presentation boundary, never inside the simulator.
package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatMoney renders a monetary value in the display currency, rounded to
// the currency's fraction.
func formatMoney(v float64, currency string) string {
	cur := money.New(0, currency).Currency()
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// formatPrice renders a per-share price with two decimals.
func formatPrice(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// formatShares renders a share count in whole units.
func formatShares(v float64) string {
	return decimal.NewFromFloat(v).Round(0).StringFixed(0)
}

// formatYears renders an elapsed span of years.
func formatYears(v float64) string {
	return fmt.Sprintf("%.2f years", v)
}
