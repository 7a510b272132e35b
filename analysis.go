package fincast

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Comparative analyses composed from the projection and search engines.

// sensitivityDeltas are the fixed dollar offsets applied around the base
// monthly contribution.
var sensitivityDeltas = []int64{-200, -100, -50, 50, 100, 200}

// SensitivityRow is one re-projection at an offset contribution.
type SensitivityRow struct {
	Contribution Amount `json:"monthly_contribution"`
	Value        Amount `json:"value"`
	// Delta is the change in final value relative to the base projection.
	Delta Amount `json:"delta"`
}

// SensitivityAnalysis shows how the final value moves with the monthly
// contribution.
type SensitivityAnalysis struct {
	Base Projection       `json:"base"`
	Rows []SensitivityRow `json:"rows"`
}

// Sensitivity re-runs the projection at fixed dollar offsets around the
// base contribution. Offsets that would push the contribution negative are
// skipped.
func (p *Planner) Sensitivity(current, base Amount, years int, rate Rate) (*SensitivityAnalysis, error) {
	baseProj, err := p.ProjectGrowth(current, base, years, rate)
	if err != nil {
		return nil, fmt.Errorf("sensitivity: %w", err)
	}
	a := &SensitivityAnalysis{Base: baseProj}
	for _, delta := range sensitivityDeltas {
		contribution := base.Add(A(delta))
		if contribution.IsNegative() {
			continue
		}
		proj, err := p.ProjectGrowth(current, contribution, years, rate)
		if err != nil {
			return nil, fmt.Errorf("sensitivity at %+d: %w", delta, err)
		}
		a.Rows = append(a.Rows, SensitivityRow{
			Contribution: contribution,
			Value:        proj.Value,
			Delta:        proj.Value.Sub(baseProj.Value),
		})
	}
	return a, nil
}

// Strategy is a named candidate monthly contribution.
type Strategy struct {
	Name         string `json:"name"`
	Contribution Amount `json:"monthly_contribution"`
}

// StrategyOutcome is a projected candidate, with its standing against the
// target.
type StrategyOutcome struct {
	Strategy
	Value       Amount `json:"value"`
	MeetsTarget bool   `json:"meets_target"`
	// Surplus is value - target; negative when the target is missed.
	Surplus Amount `json:"surplus"`
}

// StrategyComparison ranks candidate contributions against a target.
type StrategyComparison struct {
	Target   Amount            `json:"target"`
	Years    int               `json:"years"`
	Outcomes []StrategyOutcome `json:"outcomes"`
	// Best is the cheapest candidate that meets the target, nil when none
	// does.
	Best *StrategyOutcome `json:"best,omitempty"`
}

// CompareStrategies projects each named candidate contribution and picks the
// cheapest one that meets the target. Outcomes are ordered by ascending
// contribution.
func (p *Planner) CompareStrategies(current, target Amount, years int, rate Rate, candidates []Strategy) (*StrategyComparison, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("compare strategies: no candidates")
	}
	c := &StrategyComparison{Target: target, Years: years}
	for _, s := range candidates {
		proj, err := p.ProjectGrowth(current, s.Contribution, years, rate)
		if err != nil {
			return nil, fmt.Errorf("compare strategies, candidate %q: %w", s.Name, err)
		}
		c.Outcomes = append(c.Outcomes, StrategyOutcome{
			Strategy:    s,
			Value:       proj.Value,
			MeetsTarget: proj.Value.GreaterThanOrEqual(target),
			Surplus:     proj.Value.Sub(target),
		})
	}
	sort.SliceStable(c.Outcomes, func(i, j int) bool {
		return c.Outcomes[i].Contribution.LessThan(c.Outcomes[j].Contribution)
	})
	for i := range c.Outcomes {
		if c.Outcomes[i].MeetsTarget {
			c.Best = &c.Outcomes[i]
			break
		}
	}
	return c, nil
}

// BreakevenAnalysis is the contribution needed to keep up with inflation.
type BreakevenAnalysis struct {
	Current         Amount `json:"current"`
	Inflation       Rate   `json:"inflation"`
	Growth          Rate   `json:"growth"`
	Years           int    `json:"years"`
	AdjustedTarget  Amount `json:"adjusted_target"`
	RequiredMonthly Amount `json:"required_monthly"`
}

// InflationBreakeven computes the inflation-adjusted target
// current*(1+inflation)^years and searches for the monthly contribution
// that reaches it under the growth rate.
func (p *Planner) InflationBreakeven(current Amount, inflation Rate, years int, growth Rate) (*BreakevenAnalysis, error) {
	if err := inflation.Validate(); err != nil {
		return nil, fmt.Errorf("inflation breakeven: %w", err)
	}
	// the adjusted target is a contribution-free compounding of the
	// current value under the inflation rate
	target, err := CompoundWithAER(current, inflation, years, A(0))
	if err != nil {
		return nil, fmt.Errorf("inflation breakeven: %w", err)
	}
	required, err := p.RequiredContribution(current, target, years, growth)
	if err != nil {
		return nil, fmt.Errorf("inflation breakeven: %w", err)
	}
	return &BreakevenAnalysis{
		Current:         current,
		Inflation:       inflation,
		Growth:          growth,
		Years:           years,
		AdjustedTarget:  target,
		RequiredMonthly: required,
	}, nil
}

// TimingOutcome is an expected value with its volatility band.
type TimingOutcome struct {
	Expected Amount `json:"expected"`
	// Best and Worst are expected +/- 2 sigma, sigma = expected * volatility.
	// Worst is clamped at zero.
	Best  Amount `json:"best"`
	Worst Amount `json:"worst"`
}

// TimingAnalysis contrasts investing a sum at once against spreading it.
type TimingAnalysis struct {
	Total      Amount        `json:"total"`
	Years      int           `json:"years"`
	Rate       Rate          `json:"rate"`
	Volatility Rate          `json:"volatility"`
	LumpSum    TimingOutcome `json:"lump_sum"`
	DCA        TimingOutcome `json:"dca"`
}

// CompareTiming models lump-sum vs dollar-cost-averaging deployment of the
// same total: the lump sum is a contribution-free projection, DCA spreads
// the total over equal monthly contributions. Each expected value carries a
// +/- 2 sigma band with sigma = value * volatility.
func (p *Planner) CompareTiming(total Amount, years int, rate Rate, volatility Rate) (*TimingAnalysis, error) {
	if total.IsNegative() {
		return nil, fmt.Errorf("compare timing: %w: %s", ErrNegativeValue, total)
	}
	if years < 1 || years > maxProjectionYears {
		return nil, fmt.Errorf("compare timing: %w: %d", ErrInvalidYears, years)
	}
	if volatility.IsNegative() {
		return nil, fmt.Errorf("compare timing: %w: volatility %s", ErrNegativeValue, volatility)
	}

	lump, err := p.ProjectGrowth(total, A(0), years, rate)
	if err != nil {
		return nil, fmt.Errorf("compare timing: %w", err)
	}
	monthly, err := total.divDec(decimal.NewFromInt(int64(years) * 12))
	if err != nil {
		return nil, fmt.Errorf("compare timing: %w", err)
	}
	dca, err := p.ProjectGrowth(A(0), monthly, years, rate)
	if err != nil {
		return nil, fmt.Errorf("compare timing: %w", err)
	}

	return &TimingAnalysis{
		Total:      total,
		Years:      years,
		Rate:       rate,
		Volatility: volatility,
		LumpSum:    band(lump.Value, volatility),
		DCA:        band(dca.Value, volatility),
	}, nil
}

// band layers the +/- 2 sigma volatility band on an expected value.
func band(expected Amount, volatility Rate) TimingOutcome {
	sigma := expected.mulDec(volatility.Decimal())
	worst := expected.Sub(sigma.MulInt(2))
	if worst.IsNegative() {
		worst = A(0)
	}
	return TimingOutcome{
		Expected: expected,
		Best:     expected.Add(sigma.MulInt(2)),
		Worst:    worst,
	}
}
