package fincast

import (
	"errors"
	"testing"
)

func TestPlanner_Sensitivity(t *testing.T) {
	var p Planner
	a, err := p.Sensitivity(A(50000), A(300), 10, R(0.07))
	if err != nil {
		t.Fatalf("Sensitivity() error = %v", err)
	}
	// -200 and -50 and +... all apply, only -... below zero are skipped;
	// base 300 keeps every offset non-negative
	if len(a.Rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(a.Rows))
	}
	// more contribution, more value: deltas are ordered with the offsets
	for i := 1; i < len(a.Rows); i++ {
		if !a.Rows[i].Value.GreaterThan(a.Rows[i-1].Value) {
			t.Errorf("row %d value %s not above row %d value %s", i, a.Rows[i].Value, i-1, a.Rows[i-1].Value)
		}
	}
	// the delta of the base-equivalent row is the value change vs base
	for _, row := range a.Rows {
		want := row.Value.Sub(a.Base.Value)
		if !row.Delta.Equal(want) {
			t.Errorf("row %s: delta %s, want %s", row.Contribution, row.Delta, want)
		}
	}
}

func TestPlanner_Sensitivity_SkipsNegativeContributions(t *testing.T) {
	var p Planner
	a, err := p.Sensitivity(A(50000), A(100), 10, R(0.07))
	if err != nil {
		t.Fatalf("Sensitivity() error = %v", err)
	}
	// offsets -200 pushes below zero and is skipped, -100 lands exactly on zero
	if len(a.Rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(a.Rows))
	}
	if !a.Rows[0].Contribution.IsZero() {
		t.Errorf("first row contribution %s, want 0", a.Rows[0].Contribution)
	}
}

func TestPlanner_CompareStrategies(t *testing.T) {
	var p Planner
	candidates := []Strategy{
		{Name: "aggressive", Contribution: A(1500)},
		{Name: "minimal", Contribution: A(100)},
		{Name: "steady", Contribution: A(600)},
	}
	c, err := p.CompareStrategies(A(50000), A(300000), 15, R(0.07), candidates)
	if err != nil {
		t.Fatalf("CompareStrategies() error = %v", err)
	}
	if len(c.Outcomes) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(c.Outcomes))
	}
	// ordered by ascending contribution
	if c.Outcomes[0].Name != "minimal" || c.Outcomes[2].Name != "aggressive" {
		t.Errorf("unexpected order: %s, %s, %s", c.Outcomes[0].Name, c.Outcomes[1].Name, c.Outcomes[2].Name)
	}
	if c.Best == nil {
		t.Fatal("no best strategy found")
	}
	// steady is the cheapest candidate that reaches 300000
	if c.Best.Name != "steady" {
		t.Errorf("best = %q, want steady", c.Best.Name)
	}
	for _, o := range c.Outcomes {
		if o.MeetsTarget != o.Value.GreaterThanOrEqual(A(300000)) {
			t.Errorf("%s: MeetsTarget inconsistent with value %s", o.Name, o.Value)
		}
	}
}

func TestPlanner_CompareStrategies_NoneMeets(t *testing.T) {
	var p Planner
	c, err := p.CompareStrategies(A(1000), A(10000000), 5, R(0.05), []Strategy{
		{Name: "only", Contribution: A(100)},
	})
	if err != nil {
		t.Fatalf("CompareStrategies() error = %v", err)
	}
	if c.Best != nil {
		t.Errorf("best = %v, want nil when no candidate meets the target", c.Best)
	}
	if !c.Outcomes[0].Surplus.IsNegative() {
		t.Errorf("missed target should have a negative surplus, got %s", c.Outcomes[0].Surplus)
	}
}

func TestPlanner_CompareStrategies_Empty(t *testing.T) {
	var p Planner
	if _, err := p.CompareStrategies(A(1000), A(10000), 5, R(0.05), nil); err == nil {
		t.Fatal("expected an error for an empty candidate list")
	}
}

func TestPlanner_InflationBreakeven(t *testing.T) {
	var p Planner
	b, err := p.InflationBreakeven(A(100000), R(0.03), 10, R(0.07))
	if err != nil {
		t.Fatalf("InflationBreakeven() error = %v", err)
	}
	// adjusted target = 100000 * 1.03^10
	within(t, b.AdjustedTarget, A(134391.64), "0.01")
	// growth alone already outruns 3% inflation at 7%: no contribution needed
	if !b.RequiredMonthly.IsZero() {
		t.Errorf("required monthly %s, want 0 when growth beats inflation", b.RequiredMonthly)
	}
}

func TestPlanner_InflationBreakeven_GrowthBelowInflation(t *testing.T) {
	var p Planner
	b, err := p.InflationBreakeven(A(100000), R(0.05), 10, R(0.02))
	if err != nil {
		t.Fatalf("InflationBreakeven() error = %v", err)
	}
	if !b.RequiredMonthly.IsPositive() {
		t.Fatalf("required monthly %s, want positive when inflation outruns growth", b.RequiredMonthly)
	}
	// the found contribution actually closes the gap
	fv, err := CompoundWithAER(A(100000), R(0.02), 10, b.RequiredMonthly)
	if err != nil {
		t.Fatal(err)
	}
	tol := b.AdjustedTarget.mulDec(newDecimal(0.005))
	if fv.Sub(b.AdjustedTarget).Decimal().Abs().GreaterThan(tol.Decimal()) {
		t.Errorf("projection %s misses adjusted target %s", fv, b.AdjustedTarget)
	}
}

func TestPlanner_CompareTiming(t *testing.T) {
	var p Planner
	a, err := p.CompareTiming(A(120000), 5, R(0.07), R(0.15))
	if err != nil {
		t.Fatalf("CompareTiming() error = %v", err)
	}
	// with a positive rate the lump sum is in the market longer
	if !a.LumpSum.Expected.GreaterThan(a.DCA.Expected) {
		t.Errorf("lump sum %s should beat DCA %s at a positive rate", a.LumpSum.Expected, a.DCA.Expected)
	}
	// band: expected +/- 2 sigma
	sigma := a.LumpSum.Expected.mulDec(newDecimal(0.15))
	within(t, a.LumpSum.Best, a.LumpSum.Expected.Add(sigma.MulInt(2)), "0.01")
	within(t, a.LumpSum.Worst, a.LumpSum.Expected.Sub(sigma.MulInt(2)), "0.01")
}

func TestPlanner_CompareTiming_WorstClampedAtZero(t *testing.T) {
	var p Planner
	a, err := p.CompareTiming(A(10000), 3, R(0.05), R(0.6))
	if err != nil {
		t.Fatalf("CompareTiming() error = %v", err)
	}
	// 2 sigma at 60% volatility overwhelms the expected value
	if !a.LumpSum.Worst.IsZero() || !a.DCA.Worst.IsZero() {
		t.Errorf("worst cases %s / %s, want both clamped at 0", a.LumpSum.Worst, a.DCA.Worst)
	}
}

func TestPlanner_CompareTiming_Validation(t *testing.T) {
	var p Planner
	if _, err := p.CompareTiming(A(-1), 5, R(0.07), R(0.1)); !errors.Is(err, ErrNegativeValue) {
		t.Errorf("got %v, want ErrNegativeValue", err)
	}
	if _, err := p.CompareTiming(A(1000), 0, R(0.07), R(0.1)); !errors.Is(err, ErrInvalidYears) {
		t.Errorf("got %v, want ErrInvalidYears", err)
	}
}
