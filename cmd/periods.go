package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincast/renderer"
	"github.com/google/subcommands"
)

// periodsCmd holds the flags for the 'periods' subcommand.
type periodsCmd struct {
	current string
	monthly string
	periods string
	rate    string
}

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "project growth over several horizons at once" }
func (*periodsCmd) Usage() string {
	return `fcast periods -current <amount> [-monthly <amount>] [-periods 5,10,20] [-rate <rate>]

  Project the same inputs over several horizons, with a first-years
  breakdown and the annualized growth per horizon. Invalid horizons are
  skipped, not fatal.
`
}

func (c *periodsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "current", "0", "Current portfolio value")
	f.StringVar(&c.monthly, "monthly", "0", "Monthly contribution")
	f.StringVar(&c.periods, "periods", "5,10,20,30", "Comma-separated horizons in years")
	f.StringVar(&c.rate, "rate", "7%", "Annual growth rate (fraction or percentage)")
}

func (c *periodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	periods, err := parseYearsList(c.periods)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	m, err := NewPlanner().ProjectMultiPeriod(current, monthly, rate, periods)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if m.Incomplete() && *Verbose {
		fmt.Fprintf(os.Stderr, "Warning: skipped horizons %v\n", m.Failed)
	}

	printMarkdown(renderer.RenderMultiPeriod(&renderer.MultiPeriodView{Currency: *defaultCurrency, MultiPeriodProjection: m}))
	return subcommands.ExitSuccess
}
