package fincast

import (
	"encoding/json"
	"fmt"
)

// Goal is a named saving target: reach Target by TargetDate, starting from
// Current and contributing Monthly along the way. TargetDate is optional;
// a goal without one is tracked by funding level only.
type Goal struct {
	Name       string
	Target     Amount
	Current    Amount
	Monthly    Amount
	TargetDate Date
}

// Validate checks the goal fields against the engine's input domain.
func (g Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal has no name")
	}
	if !g.Target.IsPositive() {
		return fmt.Errorf("goal %q: target %s: %w", g.Name, g.Target, ErrNegativeValue)
	}
	if g.Current.IsNegative() {
		return fmt.Errorf("goal %q: current %s: %w", g.Name, g.Current, ErrNegativeCurrent)
	}
	if g.Monthly.IsNegative() {
		return fmt.Errorf("goal %q: monthly %s: %w", g.Name, g.Monthly, ErrNegativeContribution)
	}
	return nil
}

// Funded returns the share of the target already covered.
func (g Goal) Funded() Percent {
	if g.Target.IsZero() {
		return Percent(0)
	}
	ratio, err := g.Current.Ratio(g.Target)
	if err != nil {
		return Percent(0)
	}
	return ToPercent(ratio)
}

// MarshalJSON keeps a stable field order so goal files diff cleanly.
func (g Goal) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("name", g.Name).
		Append("target", g.Target).
		Append("current", g.Current).
		Optional("monthly", g.Monthly)
	if !g.TargetDate.IsZero() {
		w.Append("by", g.TargetDate)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a goal from its persisted form.
func (g *Goal) UnmarshalJSON(b []byte) error {
	var jg struct {
		Name    string `json:"name"`
		Target  Amount `json:"target"`
		Current Amount `json:"current"`
		Monthly Amount `json:"monthly"`
		By      Date   `json:"by"`
	}
	if err := json.Unmarshal(b, &jg); err != nil {
		return err
	}
	*g = Goal{
		Name:       jg.Name,
		Target:     jg.Target,
		Current:    jg.Current,
		Monthly:    jg.Monthly,
		TargetDate: jg.By,
	}
	return nil
}

// GoalReport is the full progress picture for one goal at a given rate.
type GoalReport struct {
	Goal            Goal
	Funded          Percent
	Years           int    // horizon to the target date, 0 without one
	ProjectedValue  Amount // projection of the current plan over Years
	OnTrack         bool   // projection meets the target
	Gap             Amount // target minus projection, floored at 0
	RequiredMonthly Amount // contribution that would close the gap
}

// GoalProgress projects the goal's current plan to its target date and, when
// the plan falls short, searches for the contribution that would close the
// gap. asOf anchors the horizon; a goal without a target date only reports
// its funding level.
func (p *Planner) GoalProgress(g Goal, rate Rate, asOf Date) (GoalReport, error) {
	if err := g.Validate(); err != nil {
		return GoalReport{}, err
	}
	r := GoalReport{Goal: g, Funded: g.Funded()}
	if g.TargetDate.IsZero() {
		r.OnTrack = g.Current.GreaterThanOrEqual(g.Target)
		return r, nil
	}

	r.Years = asOf.YearsUntil(g.TargetDate)
	proj, err := p.ProjectGrowth(g.Current, g.Monthly, r.Years, rate)
	if err != nil {
		return GoalReport{}, fmt.Errorf("goal %q: %w", g.Name, err)
	}
	r.ProjectedValue = proj.Value
	r.OnTrack = proj.Value.GreaterThanOrEqual(g.Target)
	if r.OnTrack {
		return r, nil
	}
	r.Gap = g.Target.Sub(proj.Value)

	// the contribution search has a narrower horizon domain than the projection
	if r.Years >= 1 && r.Years <= maxContributionYears {
		required, err := p.RequiredContribution(g.Current, g.Target, r.Years, rate)
		if err != nil {
			return GoalReport{}, fmt.Errorf("goal %q: %w", g.Name, err)
		}
		r.RequiredMonthly = required
	}
	return r, nil
}
