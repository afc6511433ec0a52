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

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	symbol string
	output string
	planFlags
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the monthly projection table as CSV" }
func (*exportCmd) Usage() string {
	return `efc export -s <symbol> [-o <file>] [-lump <amount>] [-monthly <amount>] [-years <n>] [-reinvest]

  Runs the projection and writes the full monthly table as CSV, to stdout by
  default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol to analyze (e.g. 0050.TW)")
	f.StringVar(&c.output, "o", "", "Output file. Writes to stdout when empty.")
	c.planFlags.SetFlags(f)
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := renderer.ProjectionCSV(out, report.Projection); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d monthly rows to %s\n", len(report.Projection.Snapshots), c.output)
	}
	return subcommands.ExitSuccess
}
