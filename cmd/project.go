package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincast/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	current string
	monthly string
	years   int
	rate    string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project portfolio growth at a fixed annual rate" }
func (*projectCmd) Usage() string {
	return `fcast project -current <amount> [-monthly <amount>] -years <n> [-rate <rate>]

  Project the portfolio value at the given horizon, compounding at the
  annual rate with optional monthly contributions.

Usage Examples:
# 100k growing for 10 years at the default 7%
$ fcast project -current 100000 -years 10

# with 500 a month at 5%
$ fcast project -current 100000 -monthly 500 -years 10 -rate 5%

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "current", "0", "Current portfolio value")
	f.StringVar(&c.monthly, "monthly", "0", "Monthly contribution")
	f.IntVar(&c.years, "years", 10, "Projection horizon in years")
	f.StringVar(&c.rate, "rate", "7%", "Annual growth rate (fraction or percentage)")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	proj, err := NewPlanner().ProjectGrowth(current, monthly, c.years, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderProjection(renderer.NewProjectionView(*defaultCurrency, proj)))
	return subcommands.ExitSuccess
}
