// Package cmd implements the CLI application to project future wealth from
// a security's history.
package cmd

import (
	"flag"
	"log"

	"github.com/etnz/etfcast"
	"github.com/etnz/etfcast/config"
	"github.com/etnz/etfcast/recorder"
	"github.com/etnz/etfcast/yahoo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "projections")
	c.Register(&compareCmd{}, "projections")
	c.Register(&exportCmd{}, "projections")

	c.Register(&fetchCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "efc.yaml", "Path to the efc configuration file (YAML)")

// loadConfig loads and validates the application configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newProvider builds the market-data collaborator from the configuration.
func newProvider(cfg *config.Config) *yahoo.Provider {
	return yahoo.New(cfg.Fetch.Proxy, *cfg.Fetch.Cache)
}

// newRecorder builds the run recorder; without a configured database it is
// a no-op, and an unopenable database degrades to a no-op as well.
func newRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.Noop{}
	}
	r, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("warning: run recording disabled: %v", err)
		return recorder.Noop{}
	}
	return r
}

// record stores a run; recording failures never fail the run itself.
func record(rec recorder.Recorder, report *etfcast.Report) {
	if err := rec.RecordRun(report); err != nil {
		log.Printf("warning: recording run failed (ignored): %v", err)
	}
}

// planFlags are the contribution-plan flags shared by the projection
// commands. Values explicitly set on the command line override the
// configuration file.
type planFlags struct {
	lump     float64
	monthly  float64
	years    int
	reinvest bool
}

func (p *planFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.lump, "lump", 0, "One-time contribution applied before the first month. Defaults from config.")
	f.Float64Var(&p.monthly, "monthly", 0, "Recurring monthly contribution. Defaults from config.")
	f.IntVar(&p.years, "years", 0, "Investment horizon in years (1-40). Defaults from config.")
	f.BoolVar(&p.reinvest, "reinvest", true, "Reinvest distributions into more shares. Defaults from config.")
}

// plan merges the configuration defaults with the flags the user actually
// set on this invocation.
func (p *planFlags) plan(cfg *config.Config, f *flag.FlagSet) etfcast.ProjectionConfig {
	c := etfcast.ProjectionConfig{
		LumpSum:  cfg.Plan.LumpSum,
		Monthly:  cfg.Plan.Monthly,
		Years:    cfg.Plan.Years,
		Reinvest: *cfg.Plan.Reinvest,
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "lump":
			c.LumpSum = p.lump
		case "monthly":
			c.Monthly = p.monthly
		case "years":
			c.Years = p.years
		case "reinvest":
			c.Reinvest = p.reinvest
		}
	})
	return c
}
