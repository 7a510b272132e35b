package fincast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bounded bisection over the projection engine. Both searches assume the
// projected value is non-decreasing in the search variable; that holds for
// the realistic rate band and is a precondition, not something the search
// verifies. Every search terminates within its iteration cap and returns
// the bracket midpoint on exhaustion: a search never times out.

const (
	// contributionIterations caps the contribution bisection.
	contributionIterations = 40

	// maxContributionYears bounds the horizon accepted by the
	// contribution search.
	maxContributionYears = 50

	// maxSearchYears is the upper bracket of the years search.
	maxSearchYears = 100
)

// contributionTolerance accepts a bracket midpoint whose projection lands
// within this fraction of the target (0.25%).
var contributionTolerance = decimal.NewFromFloat(0.0025)

// searchBounds describes one bounded bisection. The bracket only ever
// narrows: lower <= upper holds across iterations.
type searchBounds struct {
	lower, upper  decimal.Decimal
	maxIterations int
	tolerance     decimal.Decimal
}

func (b searchBounds) mid() decimal.Decimal {
	return b.lower.Add(b.upper).DivRound(decimal.NewFromInt(2), divPrecision)
}

// RequiredContribution finds the monthly contribution that grows current to
// target over the given years at the given rate.
//
// The search brackets [0, 2*(target-current)/years/12], a deliberately loose
// ceiling, and accepts a midpoint whose projection lands within 0.25% of the
// target. After 40 iterations the current midpoint is returned as-is. The
// result is rounded to cents.
func (p *Planner) RequiredContribution(current, target Amount, years int, rate Rate) (Amount, error) {
	if current.IsNegative() {
		return Amount{}, fmt.Errorf("required contribution: %w: %s", ErrNegativeCurrent, current)
	}
	if target.IsNegative() {
		return Amount{}, fmt.Errorf("required contribution: %w: target %s", ErrNegativeValue, target)
	}
	if years < 1 || years > maxContributionYears {
		return Amount{}, fmt.Errorf("required contribution: %w: %d not in [1, %d]", ErrInvalidYears, years, maxContributionYears)
	}
	if !rate.InRealisticBand() {
		return Amount{}, fmt.Errorf("required contribution: %w: %s", ErrUnrealisticRate, rate)
	}
	if current.GreaterThanOrEqual(target) {
		return A(0), nil
	}

	gap := target.Sub(current)
	months := decimal.NewFromInt(int64(years) * 12)
	ceiling := gap.Decimal().Mul(decimal.NewFromInt(2)).DivRound(months, divPrecision)
	bounds := searchBounds{
		lower:         decimal.Zero,
		upper:         ceiling,
		maxIterations: contributionIterations,
		tolerance:     target.Decimal().Mul(contributionTolerance),
	}

	for range bounds.maxIterations {
		mid := bounds.mid()
		fv, err := p.compound(current, rate, years, Amount{value: mid})
		if err != nil {
			return Amount{}, err
		}
		if fv.Sub(target).Decimal().Abs().LessThanOrEqual(bounds.tolerance) {
			return Amount{value: mid}.Round2(), nil
		}
		if fv.LessThan(target) {
			bounds.lower = mid
		} else {
			bounds.upper = mid
		}
	}
	return Amount{value: bounds.mid()}.Round2(), nil
}

// RequiredYears finds the smallest horizon in [1, 100] whose projection
// meets or exceeds the target, bisecting on the integer horizon. The upper
// bound of the final bracket is returned so the target is met rather than
// approached from below. A target out of reach at 100 years returns 100:
// the search is total, callers confirm with a projection.
func (p *Planner) RequiredYears(current, contribution, target Amount, rate Rate) (int, error) {
	if current.IsNegative() {
		return 0, fmt.Errorf("required years: %w: %s", ErrNegativeCurrent, current)
	}
	if contribution.IsNegative() {
		return 0, fmt.Errorf("required years: %w: %s", ErrNegativeContribution, contribution)
	}
	if target.IsNegative() {
		return 0, fmt.Errorf("required years: %w: target %s", ErrNegativeValue, target)
	}
	if !rate.InRealisticBand() {
		return 0, fmt.Errorf("required years: %w: %s", ErrUnrealisticRate, rate)
	}
	if current.GreaterThanOrEqual(target) {
		return 0, nil
	}

	// invariant: the answer is in (lower, upper]; the bracket halves every
	// step so termination is guaranteed without an iteration cap.
	lower, upper := 0, maxSearchYears
	for upper-lower > 1 {
		mid := (lower + upper) / 2
		fv, err := p.compound(current, rate, mid, contribution)
		if err != nil {
			return 0, err
		}
		if fv.GreaterThanOrEqual(target) {
			upper = mid
		} else {
			lower = mid
		}
	}
	return upper, nil
}
