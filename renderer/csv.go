package renderer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etnz/etfcast"
)

// csvHeader is the flat-table column set for a serialized projection.
var csvHeader = []string{
	"symbol", "growth_pct", "yield_pct", "year", "month",
	"cost", "assets", "profit", "shares", "avg_cost", "dividends",
}

// ProjectionCSV serializes the monthly trajectory as a flat CSV table.
// Currency and price fields are rounded to two decimals, share counts to
// whole units.
func ProjectionCSV(w io.Writer, r etfcast.ProjectionResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	growth := fmt.Sprintf("%.2f", r.Metrics.GrowthRate*100)
	yield := fmt.Sprintf("%.2f", r.Metrics.YieldRate*100)
	for _, s := range r.Snapshots {
		record := []string{
			r.Symbol,
			growth,
			yield,
			fmt.Sprintf("%d", s.Year),
			fmt.Sprintf("%d", s.Month),
			formatPrice(s.Cost),
			formatPrice(s.Assets),
			formatPrice(s.Profit),
			formatShares(s.Shares),
			formatPrice(s.AvgCost),
			formatPrice(s.Distributions),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
