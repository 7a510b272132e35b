package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincast/renderer"
	"github.com/google/subcommands"
)

// contributionCmd holds the flags for the 'contribution' subcommand.
type contributionCmd struct {
	current string
	target  string
	years   int
	rate    string
}

func (*contributionCmd) Name() string { return "contribution" }
func (*contributionCmd) Synopsis() string {
	return "find the monthly contribution required to reach a target"
}
func (*contributionCmd) Usage() string {
	return `fcast contribution -current <amount> -target <amount> -years <n> [-rate <rate>]

  Search for the monthly contribution growing the current value to the
  target within the horizon. The horizon is capped at 50 years.
`
}

func (c *contributionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "current", "0", "Current portfolio value")
	f.StringVar(&c.target, "target", "0", "Target value")
	f.IntVar(&c.years, "years", 10, "Horizon in years (1 to 50)")
	f.StringVar(&c.rate, "rate", "7%", "Annual growth rate (fraction or percentage)")
}

func (c *contributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	current, err := parseAmount(c.current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	target, err := parseAmount(c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := parseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	monthly, err := NewPlanner().RequiredContribution(current, target, c.years, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	v := renderer.NewContributionView(*defaultCurrency, current, target, c.years, rate, monthly)
	printMarkdown(renderer.RenderContribution(v))
	return subcommands.ExitSuccess
}
