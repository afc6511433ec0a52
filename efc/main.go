package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/etfcast/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion, active only when invoked by the completion hook.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"project": {},
			"compare": {},
			"export":  {},
			"fetch":   {},
			"topic":   {},
		},
	}
	completion.Complete("efc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
