package fincast

import "fmt"

// fiMultiple converts annual expenses into the financial-independence
// target, per the 4% safe-withdrawal rule.
const fiMultiple = 25

// FITimeline is the road to financial independence: the point where the
// portfolio covers 25x annual expenses.
type FITimeline struct {
	AnnualExpenses Amount `json:"annual_expenses"`
	Target         Amount `json:"target"`
	Current        Amount `json:"current"`
	Contribution   Amount `json:"monthly_contribution"`
	Rate           Rate   `json:"rate"`
	YearsToFI      int    `json:"years_to_fi"`
	// ProjectedValue is the confirming projection at the discovered
	// horizon, or the current value when independence is already reached.
	ProjectedValue Amount `json:"projected_value"`
}

// Achieved reports whether the projected value actually meets the target.
// It is false only when the target is out of reach within the search bound.
func (t *FITimeline) Achieved() bool {
	return t.ProjectedValue.GreaterThanOrEqual(t.Target)
}

// FITimeline computes the years to financial independence. A portfolio
// already at or above 25x expenses short-circuits to zero years, no search
// performed; otherwise the years search runs and the projection at the
// discovered horizon is recomputed to confirm.
func (p *Planner) FITimeline(current, contribution, annualExpenses Amount, rate Rate) (*FITimeline, error) {
	if annualExpenses.IsNegative() {
		return nil, fmt.Errorf("fi timeline: %w: expenses %s", ErrNegativeValue, annualExpenses)
	}
	target := annualExpenses.MulInt(fiMultiple)
	t := &FITimeline{
		AnnualExpenses: annualExpenses,
		Target:         target,
		Current:        current,
		Contribution:   contribution,
		Rate:           rate,
	}
	if current.GreaterThanOrEqual(target) {
		t.YearsToFI = 0
		t.ProjectedValue = current
		return t, nil
	}

	years, err := p.RequiredYears(current, contribution, target, rate)
	if err != nil {
		return nil, fmt.Errorf("fi timeline: %w", err)
	}
	value, err := p.compound(current, rate, years, contribution)
	if err != nil {
		return nil, fmt.Errorf("fi timeline: %w", err)
	}
	t.YearsToFI = years
	t.ProjectedValue = value
	return t, nil
}
