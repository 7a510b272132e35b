package fincast

import (
	"errors"
	"slices"
	"testing"
)

func TestPlanner_ProjectGrowth(t *testing.T) {
	var p Planner
	proj, err := p.ProjectGrowth(A(100000), A(0), 10, R(0.07))
	if err != nil {
		t.Fatalf("ProjectGrowth() error = %v", err)
	}
	within(t, proj.Value, A(196715.14), "0.01")
	within(t, proj.Growth(), A(96715.14), "0.01")
}

func TestPlanner_ProjectGrowth_Validation(t *testing.T) {
	var p Planner
	tests := []struct {
		name         string
		current      Amount
		contribution Amount
		years        int
		rate         Rate
		want         error
	}{
		{"negative current", A(-1), A(0), 10, R(0.07), ErrNegativeCurrent},
		{"negative contribution", A(1000), A(-1), 10, R(0.07), ErrNegativeContribution},
		{"years below range", A(1000), A(0), -1, R(0.07), ErrInvalidYears},
		{"years above range", A(1000), A(0), 101, R(0.07), ErrInvalidYears},
		{"rate above band", A(1000), A(0), 10, R(0.51), ErrUnrealisticRate},
		{"rate below band", A(1000), A(0), 10, R(-0.51), ErrUnrealisticRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.ProjectGrowth(tt.current, tt.contribution, tt.years, tt.rate); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlanner_ProjectGrowth_MonotonicInRate(t *testing.T) {
	var p Planner
	prev := Amount{}
	for _, r := range []float64{0.01, 0.03, 0.05, 0.07, 0.10, 0.15} {
		proj, err := p.ProjectGrowth(A(50000), A(250), 15, R(r))
		if err != nil {
			t.Fatalf("ProjectGrowth(rate=%v) error = %v", r, err)
		}
		if !proj.Value.GreaterThan(prev) {
			t.Errorf("value at rate %v (%s) not above previous (%s)", r, proj.Value, prev)
		}
		prev = proj.Value
	}
}

func TestPlanner_ProjectMultiPeriod(t *testing.T) {
	var p Planner
	m, err := p.ProjectMultiPeriod(A(100000), A(500), R(0.07), []int{5, 10, 20})
	if err != nil {
		t.Fatalf("ProjectMultiPeriod() error = %v", err)
	}
	if len(m.Periods) != 3 {
		t.Fatalf("got %d periods, want 3", len(m.Periods))
	}
	if m.Incomplete() {
		t.Errorf("unexpected failed periods: %v", m.Failed)
	}
	if len(m.Breakdown) != 5 {
		t.Fatalf("got %d breakdown years, want 5", len(m.Breakdown))
	}
	for _, step := range m.Breakdown {
		// growth is exactly what the value does not owe to the inputs
		want := step.Value.Sub(A(100000)).Sub(A(500).MulInt(12 * int64(step.Year)))
		if !step.Growth.Equal(want) {
			t.Errorf("year %d: growth %s, want %s", step.Year, step.Growth, want)
		}
	}
	// CAGR with contributions exceeds the raw rate, and stays plausible
	for _, pp := range m.Periods {
		if !pp.CAGR.GreaterThan(R(0.07)) || !pp.CAGR.LessThan(R(0.5)) {
			t.Errorf("%d years: implausible CAGR %s", pp.Years, pp.CAGR)
		}
	}
}

func TestPlanner_ProjectMultiPeriod_SkipsFailedPeriods(t *testing.T) {
	var p Planner
	m, err := p.ProjectMultiPeriod(A(100000), A(0), R(0.07), []int{5, -3, 10, 400})
	if err != nil {
		t.Fatalf("ProjectMultiPeriod() error = %v", err)
	}
	if len(m.Periods) != 2 {
		t.Errorf("got %d periods, want 2", len(m.Periods))
	}
	if !m.Incomplete() {
		t.Error("batch with invalid horizons should be incomplete")
	}
	if !slices.Equal(m.Failed, []int{-3, 400}) {
		t.Errorf("Failed = %v, want [-3 400]", m.Failed)
	}
}

func TestCAGR(t *testing.T) {
	tests := []struct {
		name    string
		initial Amount
		final   Amount
		years   int
		want    Rate
	}{
		{"seven percent decade", A(100000), A(196715.1357289565), 10, R(0.07)},
		{"flat", A(5000), A(5000), 7, R(0)},
		{"zero years", A(100), A(900), 0, R(0)},
		{"zero initial", A(0), A(900), 10, R(0)},
		{"decline", A(1000), A(500), 5, R(-0.1294)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CAGR(tt.initial, tt.final, tt.years)
			if err != nil {
				t.Fatalf("CAGR() error = %v", err)
			}
			rateWithin(t, got, tt.want, "0.0001")
		})
	}
}

// mapCache is the in-memory Cache used by tests.
type mapCache map[string]string

func (c mapCache) Get(key string) (string, bool) { v, ok := c[key]; return v, ok }
func (c mapCache) Set(key, value string) error   { c[key] = value; return nil }

func TestPlanner_CompoundUsesCache(t *testing.T) {
	cache := mapCache{}
	p := Planner{Cache: cache}

	first, err := p.ProjectGrowth(A(100000), A(500), 10, R(0.07))
	if err != nil {
		t.Fatalf("ProjectGrowth() error = %v", err)
	}
	if len(cache) != 1 {
		t.Fatalf("cache has %d entries, want 1", len(cache))
	}

	// a cached value is trusted verbatim
	for k := range cache {
		cache[k] = "42"
	}
	second, err := p.ProjectGrowth(A(100000), A(500), 10, R(0.07))
	if err != nil {
		t.Fatalf("ProjectGrowth() error = %v", err)
	}
	if !second.Value.Equal(A(42)) {
		t.Errorf("cached value not used: got %s", second.Value)
	}
	if second.Value.Equal(first.Value) {
		t.Error("expected the poisoned cache entry to be visible")
	}
}

func TestPlanner_CorruptCacheEntryRecomputed(t *testing.T) {
	cache := mapCache{}
	p := Planner{Cache: cache}
	direct, err := CompoundWithAER(A(100000), R(0.07), 10, A(500))
	if err != nil {
		t.Fatal(err)
	}

	proj, err := p.ProjectGrowth(A(100000), A(500), 10, R(0.07))
	if err != nil {
		t.Fatal(err)
	}
	for k := range cache {
		cache[k] = "not a number"
	}
	again, err := p.ProjectGrowth(A(100000), A(500), 10, R(0.07))
	if err != nil {
		t.Fatalf("ProjectGrowth() with corrupt cache error = %v", err)
	}
	if !again.Value.Equal(direct) || !proj.Value.Equal(direct) {
		t.Errorf("corrupt entry should be recomputed: got %s, want %s", again.Value, direct)
	}
}
