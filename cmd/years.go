package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincast/renderer"
	"github.com/google/subcommands"
)

// yearsCmd holds the flags for the 'years' subcommand.
type yearsCmd struct {
	current string
	monthly string
	target  string
	rate    string
}

func (*yearsCmd) Name() string     { return "years" }
func (*yearsCmd) Synopsis() string { return "find the years needed to reach a target" }
func (*yearsCmd) Usage() string {
	return `fcast years -current <amount> [-monthly <amount>] -target <amount> [-rate <rate>]

  Search for the smallest whole number of years at which the plan reaches
  the target. The search is bounded at 100 years: an unreachable target
  reports the bound instead of running forever.
`
}

func (c *yearsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "current", "0", "Current portfolio value")
	f.StringVar(&c.monthly, "monthly", "0", "Monthly contribution")
	f.StringVar(&c.target, "target", "0", "Target value")
	f.StringVar(&c.rate, "rate", "7%", "Annual growth rate (fraction or percentage)")
}

func (c *yearsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	planner := NewPlanner()
	years, err := planner.RequiredYears(current, monthly, target, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// the search reports its bound for an unreachable target; confirm by
	// projecting at the found horizon
	capped := false
	if proj, err := planner.ProjectGrowth(current, monthly, years, rate); err == nil {
		capped = proj.Value.LessThan(target)
	}

	v := &renderer.YearsView{
		Currency: *defaultCurrency,
		Current:  current,
		Monthly:  monthly,
		Target:   target,
		Rate:     rate,
		Years:    years,
		Capped:   capped,
	}
	printMarkdown(renderer.RenderYears(v))
	return subcommands.ExitSuccess
}
