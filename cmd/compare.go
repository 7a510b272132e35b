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

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	current    string
	target     string
	years      int
	rate       string
	strategies string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "rank candidate contributions against a target" }
func (*compareCmd) Usage() string {
	return `fcast compare -current <amount> -target <amount> -years <n> -strategies name:amount,... [-rate <rate>]

  Project each named candidate contribution and pick the cheapest one
  meeting the target.

Usage Examples:
$ fcast compare -current 50000 -target 300000 -years 15 -strategies minimal:100,steady:600,aggressive:1500

`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "current", "0", "Current portfolio value")
	f.StringVar(&c.target, "target", "0", "Target value")
	f.IntVar(&c.years, "years", 10, "Horizon in years")
	f.StringVar(&c.rate, "rate", "7%", "Annual growth rate (fraction or percentage)")
	f.StringVar(&c.strategies, "strategies", "", "Candidates as name:amount pairs, comma separated")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	candidates, err := parseStrategies(c.strategies)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	comparison, err := NewPlanner().CompareStrategies(current, target, c.years, rate, candidates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	v := &renderer.ComparisonView{Currency: *defaultCurrency, Rate: rate, StrategyComparison: comparison}
	printMarkdown(renderer.RenderComparison(v))
	return subcommands.ExitSuccess
}

// parseStrategies parses "name:amount,name:amount" into named candidates.
func parseStrategies(s string) ([]fincast.Strategy, error) {
	if s == "" {
		return nil, fmt.Errorf("no strategies given, want -strategies name:amount,...")
	}
	var candidates []fincast.Strategy
	for _, pair := range strings.Split(s, ",") {
		name, amountStr, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid strategy %q, want name:amount", pair)
		}
		amount, err := parseAmount(amountStr)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: %w", name, err)
		}
		candidates = append(candidates, fincast.Strategy{Name: name, Contribution: amount})
	}
	return candidates, nil
}
