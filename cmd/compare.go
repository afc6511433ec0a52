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

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	symbolA string
	symbolB string
	planFlags
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare two securities under the same plan" }
func (*compareCmd) Usage() string {
	return `efc compare -a <symbol> -b <symbol> [-lump <amount>] [-monthly <amount>] [-years <n>] [-reinvest]

  Projects the same contribution plan on two securities independently and
  reports which one ends with the greater asset value. A failure on one
  symbol does not prevent the other's report.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbolA, "a", "", "First symbol")
	f.StringVar(&c.symbolB, "b", "", "Second symbol")
	c.planFlags.SetFlags(f)
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbolA == "" || c.symbolB == "" {
		fmt.Fprintln(os.Stderr, "both -a and -b symbol flags are required")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	pair := etfcast.RunPair(newProvider(cfg), c.symbolA, c.symbolB, c.plan(cfg, f))

	rec := newRecorder(cfg)
	defer rec.Close()

	currency := cfg.Display.Currency
	for _, leg := range []struct {
		symbol string
		report *etfcast.Report
		err    error
	}{
		{c.symbolA, pair.A, pair.ErrA},
		{c.symbolB, pair.B, pair.ErrB},
	} {
		if leg.err != nil {
			fmt.Fprintf(os.Stderr, "Error for %s: %v\n", leg.symbol, leg.err)
			continue
		}
		record(rec, leg.report)
		printMarkdown(renderer.MetricsMarkdown(leg.report.Metrics, currency))
		printMarkdown(renderer.ProjectionMarkdown(leg.report.Projection, currency, false))
	}

	printMarkdown(renderer.CompareMarkdown(pair, currency))

	if pair.ErrA != nil && pair.ErrB != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
