package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fincast/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs and exits before anything else when the shell
	// asks for it.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// An unknown subcommand falls through to an fcast-<name> extension in
	// the PATH before failing.
	if flag.NArg() > 0 {
		name := flag.Arg(0)
		known := false
		commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
			if c.Name() == name {
				known = true
			}
		})
		if !known {
			if ran, code := cmd.RunExtension(name, flag.Args()[1:]); ran {
				os.Exit(code)
			}
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers the shell completion for fcast.
func completion() {
	amountFlags := map[string]complete.Predictor{
		"current": predict.Something,
		"monthly": predict.Something,
		"years":   predict.Something,
		"rate":    predict.Something,
	}
	fcast := &complete.Command{
		Sub: map[string]*complete.Command{
			"project":     {Flags: amountFlags},
			"periods":     {Flags: amountFlags},
			"scenarios":   {Flags: amountFlags},
			"contribution": {Flags: map[string]complete.Predictor{
				"current": predict.Something, "target": predict.Something,
				"years": predict.Something, "rate": predict.Something,
			}},
			"years":       {Flags: amountFlags},
			"fi":          {Flags: amountFlags},
			"sensitivity": {Flags: amountFlags},
			"compare":     {Flags: amountFlags},
			"breakeven":   {Flags: amountFlags},
			"timing":      {Flags: amountFlags},
			"rate": {Flags: map[string]complete.Predictor{
				"op": predict.Set{
					"monthly-to-aer", "aer-to-monthly",
					"continuous-to-aer", "aer-to-continuous",
					"effective", "nominal",
				},
				"value": predict.Something, "periods": predict.Something,
			}},
			"goal":        {},
			"goal-add":    {},
			"goal-import": {Flags: map[string]complete.Predictor{"file": predict.Files("*.json")}},
			"topic":       {},
			"assist":      {},
		},
		Flags: map[string]complete.Predictor{
			"currency":   predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
			"goals-file": predict.Files("*.jsonl"),
			"redis":      predict.Something,
			"v":          predict.Nothing,
		},
	}
	fcast.Complete("fcast")
}
