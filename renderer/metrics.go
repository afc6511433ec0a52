package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/etfcast"
	md "github.com/nao1215/markdown"
)

// shortHistoryWarning explains why annualized figures from a sub-year span
// should be taken with caution.
const shortHistoryWarning = "Listed for less than one year: the annualized growth rate is " +
	"extrapolated from a very short sample (a single month's move can be magnified twelvefold). " +
	"Interpret the projection carefully."

// MetricsMarkdown renders the historical profile of one security.
func MetricsMarkdown(m etfcast.HistoricalMetrics, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s historical profile", m.Symbol))
	doc.PlainText(fmt.Sprintf("Data span: %s ~ %s (%s)", m.FirstDate, m.LastDate, formatYears(m.Years)))

	if m.ShortHistory {
		doc.Blockquote(shortHistoryWarning)
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Indicator", "Value"},
		Rows: [][]string{
			{"Annualized growth (CAGR)", m.Growth().SignedString()},
			{"Annualized yield", m.Yield().String()},
			{"Latest price", formatPrice(m.LatestPrice)},
		},
	}
	doc.Table(table)

	return doc.String()
}
