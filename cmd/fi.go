package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincast/renderer"
	"github.com/google/subcommands"
)

// fiCmd holds the flags for the 'fi' subcommand.
type fiCmd struct {
	current  string
	monthly  string
	expenses string
	rate     string
}

func (*fiCmd) Name() string     { return "fi" }
func (*fiCmd) Synopsis() string { return "estimate the years to financial independence" }
func (*fiCmd) Usage() string {
	return `fcast fi -current <amount> [-monthly <amount>] -expenses <amount> [-rate <rate>]

  Estimate the years until the portfolio covers 25x annual expenses, per
  the 4% safe-withdrawal rule.
`
}

func (c *fiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "current", "0", "Current portfolio value")
	f.StringVar(&c.monthly, "monthly", "0", "Monthly contribution")
	f.StringVar(&c.expenses, "expenses", "0", "Annual expenses")
	f.StringVar(&c.rate, "rate", "7%", "Annual growth rate (fraction or percentage)")
}

func (c *fiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	expenses, err := parseAmount(c.expenses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := parseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	t, err := NewPlanner().FITimeline(current, monthly, expenses, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderFI(renderer.NewFIView(*defaultCurrency, t)))
	return subcommands.ExitSuccess
}
