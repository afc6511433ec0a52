package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/etfcast"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders a diagnostic view of the raw history feeding the
// metrics: overall span and the tail of both series.
func HistoryMarkdown(prices etfcast.PriceSeries, dividends etfcast.DividendSeries, tail int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", prices.Symbol()))

	first, _ := prices.First()
	last, _ := prices.Latest()
	doc.PlainText(fmt.Sprintf("%d closes from %s to %s, %d distributions.",
		prices.Len(), first, last, dividends.Len()))

	priceTable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Close"},
		Rows:      [][]string{},
	}
	skip := prices.Len() - tail
	i := 0
	for on, price := range prices.Values() {
		if i >= skip {
			priceTable.Rows = append(priceTable.Rows, []string{on.String(), formatPrice(price)})
		}
		i++
	}
	doc.H2("Latest closes")
	doc.Table(priceTable)

	if dividends.Len() > 0 {
		divTable := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Date", "Amount"},
			Rows:      [][]string{},
		}
		skip = dividends.Len() - tail
		i = 0
		for on, amount := range dividends.Values() {
			if i >= skip {
				divTable.Rows = append(divTable.Rows, []string{on.String(), formatPrice(amount)})
			}
			i++
		}
		doc.H2("Latest distributions")
		doc.Table(divTable)
	}

	return doc.String()
}
