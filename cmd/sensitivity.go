package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincast/renderer"
	"github.com/google/subcommands"
)

// sensitivityCmd holds the flags for the 'sensitivity' subcommand.
type sensitivityCmd struct {
	current string
	monthly string
	years   int
	rate    string
}

func (*sensitivityCmd) Name() string { return "sensitivity" }
func (*sensitivityCmd) Synopsis() string {
	return "show how the final value moves with the contribution"
}
func (*sensitivityCmd) Usage() string {
	return `fcast sensitivity -current <amount> -monthly <amount> -years <n> [-rate <rate>]

  Re-run the projection at fixed offsets (+/- 50, 100, 200) around the
  base monthly contribution.
`
}

func (c *sensitivityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "current", "0", "Current portfolio value")
	f.StringVar(&c.monthly, "monthly", "0", "Base monthly contribution")
	f.IntVar(&c.years, "years", 10, "Projection horizon in years")
	f.StringVar(&c.rate, "rate", "7%", "Annual growth rate (fraction or percentage)")
}

func (c *sensitivityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	current, err := parseAmount(c.current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	monthly, err := parseAmount(c.monthly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := parseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := NewPlanner().Sensitivity(current, monthly, c.years, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderSensitivity(&renderer.SensitivityView{Currency: *defaultCurrency, SensitivityAnalysis: a}))
	return subcommands.ExitSuccess
}
