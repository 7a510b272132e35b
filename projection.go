package fincast

import (
	"fmt"

	"github.com/etnz/fincast/dmath"
	"github.com/shopspring/decimal"
)

// maxProjectionYears bounds the horizon accepted by projections.
const maxProjectionYears = 100

// breakdownYears is the length of the per-year decomposition included in
// multi-period projections.
const breakdownYears = 5

// Planner is the stateless projection and optimization engine. It combines
// the rate-conversion formulas with bounded searches and comparative
// analyses over immutable inputs.
//
// The zero value is ready to use. An optional Cache memoizes repeated
// projections in batch operations.
type Planner struct {
	Cache Cache
}

// Projection is the result of a single-horizon growth projection.
type Projection struct {
	Current      Amount `json:"current"`
	Contribution Amount `json:"monthly_contribution"`
	Years        int    `json:"years"`
	Rate         Rate   `json:"rate"`
	Value        Amount `json:"value"`
}

// Growth returns the part of the final value not explained by the inputs.
func (p Projection) Growth() Amount {
	return p.Value.Sub(p.Current).Sub(p.Contribution.MulInt(12 * int64(p.Years)))
}

// ProjectGrowth validates the inputs and projects the portfolio value at the
// given horizon. Failures are named: ErrNegativeCurrent,
// ErrNegativeContribution, ErrInvalidYears, ErrUnrealisticRate.
func (p *Planner) ProjectGrowth(current, contribution Amount, years int, rate Rate) (Projection, error) {
	if err := validateProjection(current, contribution, years, rate); err != nil {
		return Projection{}, err
	}
	value, err := p.compound(current, rate, years, contribution)
	if err != nil {
		return Projection{}, err
	}
	return Projection{
		Current:      current,
		Contribution: contribution,
		Years:        years,
		Rate:         rate,
		Value:        value,
	}, nil
}

func validateProjection(current, contribution Amount, years int, rate Rate) error {
	if current.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeCurrent, current)
	}
	if contribution.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeContribution, contribution)
	}
	if years < 0 || years > maxProjectionYears {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidYears, years, maxProjectionYears)
	}
	if !rate.InRealisticBand() {
		return fmt.Errorf("%w: %s", ErrUnrealisticRate, rate)
	}
	return nil
}

// compound delegates to CompoundWithAER through the optional cache.
func (p *Planner) compound(current Amount, rate Rate, years int, contribution Amount) (Amount, error) {
	if p.Cache == nil {
		return CompoundWithAER(current, rate, years, contribution)
	}
	key := fmt.Sprintf("fv|%s|%s|%d|%s", current, contribution, years, rate)
	if s, ok := p.Cache.Get(key); ok {
		if v, err := decimal.NewFromString(s); err == nil {
			return Amount{value: v}, nil
		}
		// a corrupt entry is ignored and overwritten
	}
	value, err := CompoundWithAER(current, rate, years, contribution)
	if err != nil {
		return Amount{}, err
	}
	if err := p.Cache.Set(key, value.String()); err != nil {
		// the cache is best-effort, the computed value is still good
		return value, nil
	}
	return value, nil
}

// YearStep decomposes the projected value at the end of one year.
type YearStep struct {
	Year          int    `json:"year"`
	Value         Amount `json:"portfolio_value"`
	Contributions Amount `json:"total_contributions"`
	Growth        Amount `json:"growth_amount"`
}

// PeriodProjection is the value and annualized growth for one horizon of a
// multi-period batch.
type PeriodProjection struct {
	Years int    `json:"years"`
	Value Amount `json:"value"`
	CAGR  Rate   `json:"cagr"`
}

// MultiPeriodProjection projects the same inputs over several horizons.
type MultiPeriodProjection struct {
	Current      Amount             `json:"current"`
	Contribution Amount             `json:"monthly_contribution"`
	Rate         Rate               `json:"rate"`
	Periods      []PeriodProjection `json:"periods"`
	Breakdown    []YearStep         `json:"yearly_breakdown"`
	// Failed lists the horizons whose projection failed. The batch keeps
	// the successful entries instead of aborting.
	Failed []int `json:"failed,omitempty"`
}

// Incomplete reports whether some horizons were skipped.
func (m *MultiPeriodProjection) Incomplete() bool { return len(m.Failed) > 0 }

// ProjectMultiPeriod projects the inputs over each requested horizon, with a
// first-years breakdown and a CAGR per horizon. A horizon whose projection
// fails is recorded in Failed and skipped, the batch never aborts wholesale.
func (p *Planner) ProjectMultiPeriod(current, contribution Amount, rate Rate, periods []int) (*MultiPeriodProjection, error) {
	// shared inputs are validated once; per-horizon failures are skipped.
	if err := validateProjection(current, contribution, 0, rate); err != nil {
		return nil, err
	}

	m := &MultiPeriodProjection{
		Current:      current,
		Contribution: contribution,
		Rate:         rate,
	}
	for _, years := range periods {
		proj, err := p.ProjectGrowth(current, contribution, years, rate)
		if err != nil {
			m.Failed = append(m.Failed, years)
			continue
		}
		cagr, err := CAGR(current, proj.Value, years)
		if err != nil {
			m.Failed = append(m.Failed, years)
			continue
		}
		m.Periods = append(m.Periods, PeriodProjection{Years: years, Value: proj.Value, CAGR: cagr})
	}

	for year := 1; year <= breakdownYears; year++ {
		value, err := p.compound(current, rate, year, contribution)
		if err != nil {
			// shared inputs already validated, a failure here is unexpected
			return nil, err
		}
		contributed := contribution.MulInt(12 * int64(year))
		m.Breakdown = append(m.Breakdown, YearStep{
			Year:          year,
			Value:         value,
			Contributions: contributed,
			Growth:        value.Sub(current).Sub(contributed),
		})
	}
	return m, nil
}

// CAGR returns the constant annual rate growing initial to final over the
// given years: (final/initial)^(1/years) - 1.
//
// The degenerate inputs years=0 and initial=0 yield exactly 0, never an
// error or an infinity: there is no meaningful annualized rate to report.
func CAGR(initial, final Amount, years int) (Rate, error) {
	if years == 0 || initial.IsZero() {
		return R(0), nil
	}
	if years < 0 {
		return Rate{}, fmt.Errorf("CAGR: %w: %d", ErrInvalidYears, years)
	}
	ratio, err := final.Ratio(initial)
	if err != nil {
		return Rate{}, err
	}
	root, err := dmath.NthRoot(ratio, years)
	if err != nil {
		return Rate{}, fmt.Errorf("CAGR over %d years: %w", years, err)
	}
	return R(root.Sub(one)), nil
}
