package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/etfcast"
	"github.com/etnz/etfcast/renderer"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	symbol string
	tail   int
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "show the raw market history for a symbol" }
func (*fetchCmd) Usage() string {
	return `efc fetch -s <symbol> [-n <rows>]

  Fetches and displays the price and distribution history that would feed
  the historical metrics. Useful to diagnose surprising projections.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol to fetch (e.g. 0050.TW)")
	f.IntVar(&c.tail, "n", 10, "Number of most recent rows to display")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "the -s symbol flag is required")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	provider := newProvider(cfg)
	rawPrices, err := provider.PriceHistory(c.symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices for %s: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}
	rawDividends, err := provider.DividendHistory(c.symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching distributions for %s: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}

	prices, err := etfcast.NewPriceSeries(c.symbol, rawPrices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	dividends, err := etfcast.NewDividendSeries(c.symbol, rawDividends)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(prices, dividends, c.tail))
	return subcommands.ExitSuccess
}
