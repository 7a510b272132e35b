package fincast

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// within reports whether a and b agree within tol.
func within(t *testing.T, got, want Amount, tol string) {
	t.Helper()
	if got.Sub(want).Decimal().Abs().GreaterThan(decimal.RequireFromString(tol)) {
		t.Errorf("got %s, want %s (tolerance %s)", got, want, tol)
	}
}

func rateWithin(t *testing.T, got, want Rate, tol string) {
	t.Helper()
	if got.Decimal().Sub(want.Decimal()).Abs().GreaterThan(decimal.RequireFromString(tol)) {
		t.Errorf("got %s, want %s (tolerance %s)", got, want, tol)
	}
}

func TestMonthlyToAER_RoundTrip(t *testing.T) {
	for _, r := range []float64{-0.3, -0.1, -0.01, 0, 0.005, 0.07, 0.3} {
		aer, err := MonthlyToAER(R(r))
		if err != nil {
			t.Fatalf("MonthlyToAER(%v) error = %v", r, err)
		}
		back, err := AERToMonthly(aer)
		if err != nil {
			t.Fatalf("AERToMonthly error = %v", err)
		}
		rateWithin(t, back, R(r), "0.0000000001")
	}
}

func TestContinuous_RoundTrip(t *testing.T) {
	for _, r := range []float64{-0.3, -0.05, 0, 0.07, 0.3} {
		aer, err := ContinuousToAER(R(r))
		if err != nil {
			t.Fatalf("ContinuousToAER(%v) error = %v", r, err)
		}
		back, err := AERToContinuous(aer)
		if err != nil {
			t.Fatalf("AERToContinuous error = %v", err)
		}
		rateWithin(t, back, R(r), "0.0000000001")
	}
}

func TestContinuousToAER(t *testing.T) {
	got, err := ContinuousToAER(R(0.07))
	if err != nil {
		t.Fatal(err)
	}
	rateWithin(t, got, R(0.0725081812542164), "0.0000000001")
}

func TestAERToContinuous(t *testing.T) {
	got, err := AERToContinuous(R(0.07))
	if err != nil {
		t.Fatal(err)
	}
	rateWithin(t, got, R(0.0676586484738148), "0.0000000001")
}

func TestMonthlyToAER_InvalidRate(t *testing.T) {
	if _, err := MonthlyToAER(R(-1)); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("MonthlyToAER(-1): got %v, want ErrInvalidRate", err)
	}
	if _, err := AERToMonthly(R(-1.5)); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("AERToMonthly(-1.5): got %v, want ErrInvalidRate", err)
	}
}

func TestEffectiveRate(t *testing.T) {
	tests := []struct {
		name    string
		nominal Rate
		periods int
		want    Rate
	}{
		{"identity at one period", R(0.12), 1, R(0.12)},
		{"monthly compounding", R(0.12), 12, R(0.1268250301319697)},
		{"quarterly compounding", R(0.08), 4, R(0.08243216)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EffectiveRate(tt.nominal, tt.periods)
			if err != nil {
				t.Fatalf("EffectiveRate() error = %v", err)
			}
			rateWithin(t, got, tt.want, "0.0000000001")
		})
	}
}

func TestNominalRate_InvertsEffective(t *testing.T) {
	for _, periods := range []int{1, 4, 12, 365} {
		eff, err := EffectiveRate(R(0.12), periods)
		if err != nil {
			t.Fatalf("EffectiveRate error = %v", err)
		}
		nom, err := NominalRate(eff, periods)
		if err != nil {
			t.Fatalf("NominalRate error = %v", err)
		}
		rateWithin(t, nom, R(0.12), "0.0000000001")
	}
}

func TestEffectiveRate_InvalidPeriods(t *testing.T) {
	if _, err := EffectiveRate(R(0.05), 0); !errors.Is(err, ErrInvalidPeriods) {
		t.Errorf("got %v, want ErrInvalidPeriods", err)
	}
	if _, err := NominalRate(R(0.05), -4); !errors.Is(err, ErrInvalidPeriods) {
		t.Errorf("got %v, want ErrInvalidPeriods", err)
	}
}

func TestCompoundWithAER_ZeroHorizon(t *testing.T) {
	// years=0 returns the principal untouched, whatever the other inputs
	for _, tt := range []struct {
		principal float64
		rate      float64
		monthly   float64
	}{
		{100000, 0.07, 500},
		{0, 0.10, 1000},
		{42.42, -0.2, 0},
	} {
		got, err := CompoundWithAER(A(tt.principal), R(tt.rate), 0, A(tt.monthly))
		if err != nil {
			t.Fatalf("CompoundWithAER() error = %v", err)
		}
		if !got.Equal(A(tt.principal)) {
			t.Errorf("zero horizon: got %s, want %v", got, tt.principal)
		}
	}
}

func TestCompoundWithAER_ZeroRate(t *testing.T) {
	// straight-line sum, exact
	got, err := CompoundWithAER(A(100000), R(0), 10, A(500))
	if err != nil {
		t.Fatalf("CompoundWithAER() error = %v", err)
	}
	if !got.Equal(A(160000)) {
		t.Errorf("zero rate: got %s, want 160000", got)
	}
}

func TestCompoundWithAER_GrowthOnly(t *testing.T) {
	// contribution-free growth compounds annually: 7% a year is exactly 7%
	got, err := CompoundWithAER(A(100000), R(0.07), 10, A(0))
	if err != nil {
		t.Fatalf("CompoundWithAER() error = %v", err)
	}
	within(t, got, A(196715.14), "0.01")
}

func TestCompoundWithAER_WithContributions(t *testing.T) {
	// monthly annuity path, rounded to cents
	got, err := CompoundWithAER(A(100000), R(0.07), 10, A(1000))
	if err != nil {
		t.Fatalf("CompoundWithAER() error = %v", err)
	}
	within(t, got, A(367766.87), "0.01")
}

func TestCompoundWithAER_BranchAsymmetry(t *testing.T) {
	// the annual-compounding branch and the monthly-annuity branch disagree
	// by design: adding a token contribution switches the whole projection
	// to monthly compounding
	growthOnly, err := CompoundWithAER(A(100000), R(0.07), 10, A(0))
	if err != nil {
		t.Fatal(err)
	}
	withToken, err := CompoundWithAER(A(100000), R(0.07), 10, A(0.01))
	if err != nil {
		t.Fatal(err)
	}
	if withToken.LessThanOrEqual(growthOnly) {
		t.Errorf("token contribution should not lower the projection: %s <= %s", withToken, growthOnly)
	}
}

func TestCompoundWithAER_Validation(t *testing.T) {
	tests := []struct {
		name      string
		principal Amount
		rate      Rate
		years     int
		monthly   Amount
		want      error
	}{
		{"negative years", A(1000), R(0.05), -1, A(0), ErrInvalidYears},
		{"rate at -1", A(1000), R(-1), 5, A(0), ErrInvalidRate},
		{"negative principal", A(-1), R(0.05), 5, A(0), ErrNegativeValue},
		{"negative contribution", A(1000), R(0.05), 5, A(-10), ErrNegativeContribution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CompoundWithAER(tt.principal, tt.rate, tt.years, tt.monthly); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFutureValueWithRegularDeposits(t *testing.T) {
	// 3000 a quarter and 12000 a year both normalize to 1000 a month
	monthly, err := FutureValueWithRegularDeposits(A(100000), A(1000), R(0.07), 10, Monthly)
	if err != nil {
		t.Fatal(err)
	}
	quarterly, err := FutureValueWithRegularDeposits(A(100000), A(3000), R(0.07), 10, Quarterly)
	if err != nil {
		t.Fatal(err)
	}
	annual, err := FutureValueWithRegularDeposits(A(100000), A(12000), R(0.07), 10, Annual)
	if err != nil {
		t.Fatal(err)
	}
	if !monthly.Equal(quarterly) || !monthly.Equal(annual) {
		t.Errorf("normalized deposits disagree: monthly %s, quarterly %s, annual %s", monthly, quarterly, annual)
	}
}

func TestSafeDivide(t *testing.T) {
	v, err := SafeDivide(decimal.NewFromInt(10), decimal.NewFromInt(4))
	if err != nil {
		t.Fatalf("SafeDivide() error = %v", err)
	}
	if !v.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("SafeDivide(10, 4) = %s, want 2.5", v)
	}
	if _, err := SafeDivide(decimal.NewFromInt(1), decimal.Zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("SafeDivide(1, 0): got %v, want ErrDivisionByZero", err)
	}
}
