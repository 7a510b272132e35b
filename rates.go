package fincast

import (
	"fmt"

	"github.com/etnz/fincast/dmath"
	"github.com/shopspring/decimal"
)

// This file implements the conversions between the interest-rate conventions
// used by the projection engine: monthly, nominal, periodic, continuous, and
// the Annual Equivalent Rate (AER), plus the compound-growth-with-contributions
// formula every projection delegates to.

// MonthlyToAER converts a monthly growth rate to its annual equivalent:
// (1+r)^12 - 1.
func MonthlyToAER(monthly Rate) (Rate, error) {
	if err := monthly.Validate(); err != nil {
		return Rate{}, fmt.Errorf("monthly to AER: %w", err)
	}
	f, err := dmath.PowInt(monthly.onePlus(), 12)
	if err != nil {
		return Rate{}, err
	}
	return R(f.Sub(one)), nil
}

// AERToMonthly converts an annual equivalent rate to the monthly rate that
// compounds to it: (1+a)^(1/12) - 1.
func AERToMonthly(aer Rate) (Rate, error) {
	if err := aer.Validate(); err != nil {
		return Rate{}, fmt.Errorf("AER to monthly: %w", err)
	}
	root, err := dmath.NthRoot(aer.onePlus(), 12)
	if err != nil {
		return Rate{}, err
	}
	return R(root.Sub(one)), nil
}

// EffectiveRate converts a nominal annual rate compounded 'periods' times a
// year to the effective annual rate: (1 + nominal/periods)^periods - 1.
// periods=1 is the identity.
func EffectiveRate(nominal Rate, periods int) (Rate, error) {
	if periods <= 0 {
		return Rate{}, fmt.Errorf("effective rate: %w: %d", ErrInvalidPeriods, periods)
	}
	if periods == 1 {
		return nominal, nil
	}
	per := nominal.value.DivRound(decimal.NewFromInt(int64(periods)), divPrecision)
	f, err := dmath.PowInt(one.Add(per), periods)
	if err != nil {
		return Rate{}, err
	}
	return R(f.Sub(one)), nil
}

// NominalRate converts an effective annual rate back to the nominal rate
// compounded 'periods' times a year: periods x ((1+effective)^(1/periods) - 1).
// periods=1 is the identity.
func NominalRate(effective Rate, periods int) (Rate, error) {
	if periods <= 0 {
		return Rate{}, fmt.Errorf("nominal rate: %w: %d", ErrInvalidPeriods, periods)
	}
	if periods == 1 {
		return effective, nil
	}
	if err := effective.Validate(); err != nil {
		return Rate{}, fmt.Errorf("nominal rate: %w", err)
	}
	root, err := dmath.NthRoot(effective.onePlus(), periods)
	if err != nil {
		return Rate{}, err
	}
	return R(root.Sub(one).Mul(decimal.NewFromInt(int64(periods)))), nil
}

// ContinuousToAER converts a continuously compounded rate to its annual
// equivalent: e^r - 1.
func ContinuousToAER(continuous Rate) (Rate, error) {
	e, err := dmath.Exp(continuous.value)
	if err != nil {
		return Rate{}, err
	}
	return R(e.Sub(one)), nil
}

// AERToContinuous converts an annual equivalent rate to the continuously
// compounded rate: ln(1+a).
func AERToContinuous(aer Rate) (Rate, error) {
	if err := aer.Validate(); err != nil {
		return Rate{}, fmt.Errorf("AER to continuous: %w", err)
	}
	l, err := dmath.Ln(aer.onePlus())
	if err != nil {
		return Rate{}, err
	}
	return R(l), nil
}

// CompoundWithAER computes the future value of a principal growing at an
// annual equivalent rate with an optional monthly contribution.
//
// The branching is deliberate and load-bearing, not an optimization:
//   - years=0 returns the principal unchanged, contributions included none.
//   - aer=0 is the straight-line sum principal + monthly*12*years, exact.
//   - no contribution compounds annually at full precision, so that a 7%
//     AER over a year is exactly 7%, with no monthly conversion drift.
//   - otherwise the AER is converted to a monthly rate and the standard
//     annuity formula applies; this result is rounded to 2 decimal places.
//
// Switching any branch to the uniform monthly formula changes results for
// contribution-free projections, which callers depend on.
func CompoundWithAER(principal Amount, aer Rate, years int, monthly Amount) (Amount, error) {
	if years < 0 {
		return Amount{}, fmt.Errorf("compound: %w: %d", ErrInvalidYears, years)
	}
	if err := aer.Validate(); err != nil {
		return Amount{}, fmt.Errorf("compound: %w", err)
	}
	if principal.IsNegative() {
		return Amount{}, fmt.Errorf("compound: %w: principal %s", ErrNegativeValue, principal)
	}
	if monthly.IsNegative() {
		return Amount{}, fmt.Errorf("compound: %w: %s", ErrNegativeContribution, monthly)
	}

	if years == 0 {
		return principal, nil
	}
	if aer.IsZero() {
		return principal.Add(monthly.MulInt(12 * int64(years))), nil
	}
	if monthly.IsZero() {
		f, err := dmath.PowInt(aer.onePlus(), years)
		if err != nil {
			return Amount{}, err
		}
		return principal.mulDec(f), nil
	}

	mr, err := AERToMonthly(aer)
	if err != nil {
		return Amount{}, err
	}
	g, err := dmath.PowInt(mr.onePlus(), 12*years)
	if err != nil {
		return Amount{}, err
	}
	// FV = P*(1+mr)^months + C*((1+mr)^months - 1)/mr
	annuity := g.Sub(one).DivRound(mr.value, divPrecision)
	fv := principal.mulDec(g).Add(monthly.mulDec(annuity))
	return fv.Round2(), nil
}

// FutureValueWithRegularDeposits projects a principal with deposits made at
// the given frequency. Quarterly and annual deposits are normalized to their
// monthly equivalent before delegating to CompoundWithAER.
func FutureValueWithRegularDeposits(principal, deposit Amount, aer Rate, years int, freq Frequency) (Amount, error) {
	if deposit.IsNegative() {
		return Amount{}, fmt.Errorf("deposits: %w: %s", ErrNegativeContribution, deposit)
	}
	perMonth := decimal.NewFromInt(12 / freq.PerYear())
	monthly, err := deposit.divDec(perMonth)
	if err != nil {
		return Amount{}, err
	}
	return CompoundWithAER(principal, aer, years, monthly)
}
