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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	symbol string
	table  bool
	planFlags
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project future wealth for one security" }
func (*projectCmd) Usage() string {
	return `efc project -s <symbol> [-lump <amount>] [-monthly <amount>] [-years <n>] [-reinvest]

  Derives the historical growth and yield of a security from its full listed
  history and projects the value of a contribution plan month by month.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol to analyze (e.g. 0050.TW)")
	f.BoolVar(&c.table, "table", false, "Include the full monthly table in the report")
	c.planFlags.SetFlags(f)
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "the -s symbol flag is required")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := etfcast.Run(newProvider(cfg), c.symbol, c.plan(cfg, f))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := newRecorder(cfg)
	defer rec.Close()
	record(rec, report)

	currency := cfg.Display.Currency
	printMarkdown(renderer.MetricsMarkdown(report.Metrics, currency))
	printMarkdown(renderer.ProjectionMarkdown(report.Projection, currency, c.table))

	return subcommands.ExitSuccess
}
