package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/etfcast"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders the projected trajectory of one plan: a final
// summary, yearly milestones, and optionally the full monthly table.
func ProjectionMarkdown(r etfcast.ProjectionResult, currency string, monthly bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	final := r.Final()

	doc.H1(fmt.Sprintf("%d-year projection for %s", r.Config.Years, r.Symbol))

	summary := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Outcome", "Value"},
		Rows: [][]string{
			{"Projected assets", formatMoney(final.Assets, currency)},
			{"Invested capital", formatMoney(final.Cost, currency)},
			{"Net profit", formatMoney(final.Profit, currency)},
			{"Total return", r.ROI().SignedString()},
			{"Distributions received", formatMoney(final.Distributions, currency)},
			{"Cash wallet", formatMoney(final.Cash, currency)},
			{"Shares held", formatShares(final.Shares)},
			{"Average cost per share", formatPrice(final.AvgCost)},
			{"Projected price", formatPrice(final.Price)},
		},
	}
	doc.Table(summary)

	doc.H2("Yearly milestones")
	doc.Table(snapshotTable(yearEnds(r.Snapshots)))

	if monthly {
		doc.H2("Monthly detail")
		doc.Table(snapshotTable(r.Snapshots))
	}

	return doc.String()
}

// yearEnds keeps the last snapshot of each simulated year.
func yearEnds(snapshots []etfcast.Snapshot) []etfcast.Snapshot {
	ends := make([]etfcast.Snapshot, 0, len(snapshots)/12+1)
	for _, s := range snapshots {
		if s.Month%12 == 0 {
			ends = append(ends, s)
		}
	}
	return ends
}

func snapshotTable(snapshots []etfcast.Snapshot) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Year", "Month", "Cost", "Assets", "Profit", "Shares", "Avg Cost", "Dividends"},
		Rows:   make([][]string, 0, len(snapshots)),
	}
	for _, s := range snapshots {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", s.Year),
			fmt.Sprintf("%d", s.Month),
			formatPrice(s.Cost),
			formatPrice(s.Assets),
			formatPrice(s.Profit),
			formatShares(s.Shares),
			formatPrice(s.AvgCost),
			formatPrice(s.Distributions),
		})
	}
	return table
}
