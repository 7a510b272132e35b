package renderer

import "github.com/etnz/fincast"

// Views bind a planner result to the presentation details the engine does
// not know about, chiefly the display currency.

// ProjectionView is the data behind the single projection report.
type ProjectionView struct {
	Currency string
	fincast.Projection
	Growth      fincast.Amount
	Contributed fincast.Amount
}

// NewProjectionView wraps a projection for rendering.
func NewProjectionView(currency string, p fincast.Projection) *ProjectionView {
	return &ProjectionView{
		Currency:    currency,
		Projection:  p,
		Growth:      p.Growth(),
		Contributed: p.Contribution.MulInt(12 * int64(p.Years)),
	}
}

// MultiPeriodView is the data behind the growth-over-time report.
type MultiPeriodView struct {
	Currency string
	*fincast.MultiPeriodProjection
}

// ScenarioView is the data behind the scenario report. Weighted is false
// for custom scenario sets, which carry no weighted average.
type ScenarioView struct {
	Currency string
	Weighted bool
	*fincast.ScenarioAnalysis
}

// NewScenarioView wraps a scenario analysis for rendering.
func NewScenarioView(currency string, a *fincast.ScenarioAnalysis, weighted bool) *ScenarioView {
	return &ScenarioView{Currency: currency, ScenarioAnalysis: a, Weighted: weighted}
}

// FIView is the data behind the financial independence report.
type FIView struct {
	Currency string
	*fincast.FITimeline
	Achieved bool
}

// NewFIView wraps an FI timeline for rendering.
func NewFIView(currency string, t *fincast.FITimeline) *FIView {
	return &FIView{Currency: currency, FITimeline: t, Achieved: t.Achieved()}
}

// ContributionView is the data behind the required contribution report.
type ContributionView struct {
	Currency string
	Current  fincast.Amount
	Target   fincast.Amount
	Years    int
	Rate     fincast.Rate
	Monthly  fincast.Amount
	Annual   fincast.Amount
}

// NewContributionView wraps a required contribution result for rendering.
func NewContributionView(currency string, current, target fincast.Amount, years int, rate fincast.Rate, monthly fincast.Amount) *ContributionView {
	return &ContributionView{
		Currency: currency,
		Current:  current,
		Target:   target,
		Years:    years,
		Rate:     rate,
		Monthly:  monthly,
		Annual:   fincast.MonthlyToAnnual(monthly),
	}
}

// YearsView is the data behind the years-to-target report.
type YearsView struct {
	Currency string
	Current  fincast.Amount
	Monthly  fincast.Amount
	Target   fincast.Amount
	Rate     fincast.Rate
	Years    int
	// Capped is true when the target stays out of reach within the search
	// bound and Years is the bound itself.
	Capped bool
}

// SensitivityView is the data behind the sensitivity report.
type SensitivityView struct {
	Currency string
	*fincast.SensitivityAnalysis
}

// ComparisonView is the data behind the strategy comparison report.
type ComparisonView struct {
	Currency string
	Rate     fincast.Rate
	*fincast.StrategyComparison
}

// BreakevenView is the data behind the inflation breakeven report.
type BreakevenView struct {
	Currency string
	*fincast.BreakevenAnalysis
}

// TimingView is the data behind the lump sum versus DCA report.
type TimingView struct {
	Currency string
	*fincast.TimingAnalysis
	MonthlyDCA fincast.Amount
}

// GoalEntry is one goal's progress in the goals report.
type GoalEntry struct {
	Currency string
	fincast.GoalReport
}

// GoalsView is the data behind the goals report.
type GoalsView struct {
	Currency string
	Rate     fincast.Rate
	Entries  []GoalEntry
}

// NewGoalsView wraps goal reports for rendering.
func NewGoalsView(currency string, rate fincast.Rate, reports []fincast.GoalReport) *GoalsView {
	v := &GoalsView{Currency: currency, Rate: rate}
	for _, r := range reports {
		v.Entries = append(v.Entries, GoalEntry{Currency: currency, GoalReport: r})
	}
	return v
}
