package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/etnz/etfcast"
	md "github.com/nao1215/markdown"
)

// CompareMarkdown renders the winner/margin banner of a dual-symbol run,
// or a "comparison unavailable" notice when one leg failed.
func CompareMarkdown(pair *etfcast.PairReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s vs %s", pair.SymbolA, pair.SymbolB))

	if pair.Comparison == nil {
		doc.PlainText("Comparison unavailable:")
		if pair.ErrA != nil {
			doc.BulletList(fmt.Sprintf("%s: %v", pair.SymbolA, pair.ErrA))
		}
		if pair.ErrB != nil {
			doc.BulletList(fmt.Sprintf("%s: %v", pair.SymbolB, pair.ErrB))
		}
		return doc.String()
	}

	outcome := *pair.Comparison
	if outcome.Tie() {
		doc.PlainText("Dead heat: both plans end with exactly the same asset value.")
	} else {
		doc.PlainText(fmt.Sprintf("**%s** wins by %s.",
			outcome.Winner, formatMoney(math.Abs(outcome.Difference), currency)))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Outcome", pair.SymbolA, pair.SymbolB},
		Rows: [][]string{
			{"Projected assets", formatMoney(outcome.FinalA.Assets, currency), formatMoney(outcome.FinalB.Assets, currency)},
			{"Invested capital", formatMoney(outcome.FinalA.Cost, currency), formatMoney(outcome.FinalB.Cost, currency)},
			{"Net profit", formatMoney(outcome.FinalA.Profit, currency), formatMoney(outcome.FinalB.Profit, currency)},
			{"Distributions", formatMoney(outcome.FinalA.Distributions, currency), formatMoney(outcome.FinalB.Distributions, currency)},
			{"Shares held", formatShares(outcome.FinalA.Shares), formatShares(outcome.FinalB.Shares)},
		},
	}
	doc.Table(table)

	return doc.String()
}
