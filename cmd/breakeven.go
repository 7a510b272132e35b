package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincast/renderer"
	"github.com/google/subcommands"
)

// breakevenCmd holds the flags for the 'breakeven' subcommand.
type breakevenCmd struct {
	current   string
	inflation string
	years     int
	rate      string
}

func (*breakevenCmd) Name() string     { return "breakeven" }
func (*breakevenCmd) Synopsis() string { return "find the contribution that keeps up with inflation" }
func (*breakevenCmd) Usage() string {
	return `fcast breakeven -current <amount> [-inflation <rate>] -years <n> [-rate <rate>]

  Compute the inflation-adjusted value of the portfolio at the horizon and
  search for the monthly contribution preserving its purchasing power.
`
}

func (c *breakevenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "current", "0", "Current portfolio value")
	f.StringVar(&c.inflation, "inflation", "3%", "Annual inflation rate")
	f.IntVar(&c.years, "years", 10, "Horizon in years")
	f.StringVar(&c.rate, "rate", "7%", "Annual growth rate (fraction or percentage)")
}

func (c *breakevenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	current, err := parseAmount(c.current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	inflation, err := parseRate(c.inflation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := parseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := NewPlanner().InflationBreakeven(current, inflation, c.years, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderBreakeven(&renderer.BreakevenView{Currency: *defaultCurrency, BreakevenAnalysis: b}))
	return subcommands.ExitSuccess
}
