package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fincast"
	"github.com/etnz/fincast/renderer"
	"github.com/google/subcommands"
)

// scenariosCmd holds the flags for the 'scenarios' subcommand.
type scenariosCmd struct {
	current string
	monthly string
	years   int
	custom  string
}

func (*scenariosCmd) Name() string     { return "scenarios" }
func (*scenariosCmd) Synopsis() string { return "project under pessimistic, realistic and optimistic rates" }
func (*scenariosCmd) Usage() string {
	return `fcast scenarios -current <amount> [-monthly <amount>] -years <n> [-custom name:rate,...]

  Project the same inputs under the standard 5%/7%/10% scenario triple and
  their 20/60/20 weighted average, or under a custom named set.

Usage Examples:
# the standard triple
$ fcast scenarios -current 100000 -monthly 500 -years 10

# a custom set (no weighted average)
$ fcast scenarios -current 100000 -years 10 -custom cautious:3%,bold:12%

`
}

func (c *scenariosCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "current", "0", "Current portfolio value")
	f.StringVar(&c.monthly, "monthly", "0", "Monthly contribution")
	f.IntVar(&c.years, "years", 10, "Projection horizon in years")
	f.StringVar(&c.custom, "custom", "", "Custom scenarios as name:rate pairs, comma separated")
}

func (c *scenariosCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	p := NewPlanner()
	var a *fincast.ScenarioAnalysis
	weighted := c.custom == ""
	if weighted {
		a, err = p.Scenarios(current, monthly, c.years)
	} else {
		var scenarios []fincast.Scenario
		scenarios, err = parseScenarios(c.custom)
		if err == nil {
			a, err = p.CustomScenarios(current, monthly, c.years, scenarios)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if a.Incomplete() && *Verbose {
		fmt.Fprintf(os.Stderr, "Warning: dropped scenarios %v\n", a.Failed)
	}

	printMarkdown(renderer.RenderScenarios(renderer.NewScenarioView(*defaultCurrency, a, weighted)))
	return subcommands.ExitSuccess
}

// parseScenarios parses "name:rate,name:rate" into named scenarios.
func parseScenarios(s string) ([]fincast.Scenario, error) {
	var scenarios []fincast.Scenario
	for _, pair := range strings.Split(s, ",") {
		name, rateStr, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid scenario %q, want name:rate", pair)
		}
		rate, err := parseRate(rateStr)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", name, err)
		}
		scenarios = append(scenarios, fincast.Scenario{Name: name, Rate: rate})
	}
	return scenarios, nil
}
