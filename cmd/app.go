// Package cmd implements the CLI application to project and plan savings.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fincast"
	"github.com/etnz/fincast/rediscache"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "projections")
	c.Register(&periodsCmd{}, "projections")
	c.Register(&scenariosCmd{}, "projections")

	c.Register(&contributionCmd{}, "searches")
	c.Register(&yearsCmd{}, "searches")
	c.Register(&fiCmd{}, "searches")

	c.Register(&sensitivityCmd{}, "analyses")
	c.Register(&compareCmd{}, "analyses")
	c.Register(&breakevenCmd{}, "analyses")
	c.Register(&timingCmd{}, "analyses")
	c.Register(&rateCmd{}, "analyses")

	c.Register(&goalCmd{}, "goals")
	c.Register(&goalAddCmd{}, "goals")
	c.Register(&goalImportCmd{}, "goals")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&AssistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaultCurrency = flag.String("currency", "USD", "Display currency for reports")
var goalsFile = flag.String("goals-file", "goals.jsonl", "Path to the goals file (JSONL format)")
var redisAddr = flag.String("redis", "", "Redis address (host:port) for the projection cache, empty disables it")
var Verbose = flag.Bool("v", false, "Print verbose logs")

// NewPlanner builds the planner, wiring the Redis cache when one is
// configured and reachable. An unreachable cache degrades to no cache.
func NewPlanner() *fincast.Planner {
	p := &fincast.Planner{}
	if *redisAddr == "" {
		return p
	}
	c := rediscache.New(*redisAddr)
	if err := c.Ping(); err != nil {
		log.Printf("warning: projection cache unavailable at %q: %v", *redisAddr, err)
		return p
	}
	p.Cache = c
	return p
}

// parseAmount parses a monetary flag value.
func parseAmount(s string) (fincast.Amount, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return fincast.Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return fincast.A(d), nil
}

// parseRate parses a rate flag value, either as a fraction ("0.07") or a
// percentage ("7%").
func parseRate(s string) (fincast.Rate, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		d, err := decimal.NewFromString(p)
		if err != nil {
			return fincast.Rate{}, fmt.Errorf("invalid rate %q: %w", s, err)
		}
		return fincast.R(d.Shift(-2)), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fincast.Rate{}, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	return fincast.R(d), nil
}

// parseYearsList parses a comma-separated list of horizons ("5,10,20").
func parseYearsList(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		var y int
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d", &y); err != nil {
			return nil, fmt.Errorf("invalid horizon %q: %w", part, err)
		}
		years = append(years, y)
	}
	return years, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
