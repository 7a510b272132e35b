package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/fincast"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		currency string
		amount   fincast.Amount
		want     string
	}{
		{"USD", fincast.A(1234.56), "$1,234.56"},
		{"USD", fincast.A(0), "$0.00"},
		{"EUR", fincast.A(1000000), "\u20ac1,000,000.00"},
	}
	for _, tt := range tests {
		if got := Format(tt.currency, tt.amount); got != tt.want {
			t.Errorf("Format(%s, %s) = %q, want %q", tt.currency, tt.amount, got, tt.want)
		}
	}
}

func TestSignedFormat(t *testing.T) {
	if got := SignedFormat("USD", fincast.A(0)); got != "-" {
		t.Errorf("zero should render as %q, got %q", "-", got)
	}
	if got := SignedFormat("USD", fincast.A(50)); !strings.HasPrefix(got, "+") {
		t.Errorf("positive delta should carry its sign, got %q", got)
	}
}

func TestRenderProjection(t *testing.T) {
	var p fincast.Planner
	proj, err := p.ProjectGrowth(fincast.A(100000), fincast.A(500), 10, fincast.R(0.07))
	if err != nil {
		t.Fatal(err)
	}
	out := RenderProjection(NewProjectionView("USD", proj))
	for _, want := range []string{"# Projection", "10 years", "7.00%", "$100,000.00", "Future value"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "error") {
		t.Errorf("template error leaked into the output:\n%s", out)
	}
}

func TestRenderMultiPeriod(t *testing.T) {
	var p fincast.Planner
	m, err := p.ProjectMultiPeriod(fincast.A(100000), fincast.A(500), fincast.R(0.07), []int{5, 10, 400})
	if err != nil {
		t.Fatal(err)
	}
	out := RenderMultiPeriod(&MultiPeriodView{Currency: "USD", MultiPeriodProjection: m})
	for _, want := range []string{"# Growth Over Time", "## First Years", "5y", "10y", "Skipped horizons: 400y"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestRenderScenarios(t *testing.T) {
	var p fincast.Planner
	a, err := p.Scenarios(fincast.A(100000), fincast.A(500), 10)
	if err != nil {
		t.Fatal(err)
	}
	out := RenderScenarios(NewScenarioView("USD", a, true))
	for _, want := range []string{"pessimistic", "realistic", "optimistic", "Weighted average"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}

	// a custom set renders without the weighted average
	custom, err := p.CustomScenarios(fincast.A(100000), fincast.A(500), 10, []fincast.Scenario{{Name: "flat", Rate: fincast.R(0)}})
	if err != nil {
		t.Fatal(err)
	}
	out = RenderScenarios(NewScenarioView("USD", custom, false))
	if strings.Contains(out, "Weighted average") {
		t.Errorf("custom scenarios should not render a weighted average:\n%s", out)
	}
}

func TestRenderFI(t *testing.T) {
	var p fincast.Planner
	ft, err := p.FITimeline(fincast.A(500000), fincast.A(2000), fincast.A(40000), fincast.R(0.07))
	if err != nil {
		t.Fatal(err)
	}
	out := RenderFI(NewFIView("USD", ft))
	for _, want := range []string{"# Financial Independence", "$1,000,000.00", "Years to FI", "| Target met | yes |"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestRenderComparison(t *testing.T) {
	var p fincast.Planner
	c, err := p.CompareStrategies(fincast.A(50000), fincast.A(300000), 15, fincast.R(0.07), []fincast.Strategy{
		{Name: "steady", Contribution: fincast.A(600)},
		{Name: "minimal", Contribution: fincast.A(100)},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := RenderComparison(&ComparisonView{Currency: "USD", Rate: fincast.R(0.07), StrategyComparison: c})
	if !strings.Contains(out, "Best: **steady**") {
		t.Errorf("output misses the best strategy:\n%s", out)
	}
}

func TestRenderGoals(t *testing.T) {
	var p fincast.Planner
	asOf := fincast.NewDate(2026, time.January, 1)
	g := fincast.Goal{
		Name:       "house",
		Target:     fincast.A(60000),
		Current:    fincast.A(30000),
		Monthly:    fincast.A(500),
		TargetDate: fincast.NewDate(2031, time.January, 1),
	}
	r, err := p.GoalProgress(g, fincast.R(0.05), asOf)
	if err != nil {
		t.Fatal(err)
	}
	out := RenderGoals(NewGoalsView("EUR", fincast.R(0.05), []fincast.GoalReport{r}))
	for _, want := range []string{"## house", "50.00% funded", "| On track | yes |"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}
