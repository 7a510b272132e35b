// Package dmath provides the decimal-precision numerical primitives behind
// the rate conversion and projection engines: integer powers, nth roots,
// exponential and natural logarithm.
//
// Everything stays in decimal arithmetic. The only float64 involved is the
// seed of the nth-root Newton iteration; the iteration itself refines the
// seed in decimal, so the float round-trip never bounds the final precision.
package dmath

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrUndefinedRoot reports an even root of a negative value, or a
	// non-positive root degree.
	ErrUndefinedRoot = errors.New("undefined root")

	// ErrUndefinedLog reports a logarithm of a non-positive value.
	ErrUndefinedLog = errors.New("logarithm undefined for non-positive values")

	// ErrDivisionByZero reports a zero raised to a negative exponent.
	ErrDivisionByZero = errors.New("division by zero")
)

// precision is the number of decimal digits carried by internal divisions
// and series expansions.
const precision = 28

// maxNewtonIter caps the nth-root refinement. Newton converges
// quadratically for any positive radicand, so the cap is a backstop: when
// exhausted the last iterate is returned, not an error.
const maxNewtonIter = 32

// convergence is the step size under which the Newton iteration stops.
var convergence = decimal.New(1, -25)

var one = decimal.NewFromInt(1)

// PowInt raises base to an integer exponent. Negative exponents invert the
// positive-exponent result; 0^negative is a division by zero.
func PowInt(base decimal.Decimal, n int) (decimal.Decimal, error) {
	if base.IsZero() && n < 0 {
		return decimal.Zero, fmt.Errorf("0^%d: %w", n, ErrDivisionByZero)
	}
	v, err := base.PowInt32(int32(n))
	if err != nil {
		return decimal.Zero, fmt.Errorf("pow(%s, %d): %w", base, n, err)
	}
	return v, nil
}

// NthRoot computes value^(1/n) for n >= 1 by Newton-Raphson iteration in
// decimal arithmetic.
//
// Odd roots of negative values are the negated root of the absolute value;
// even roots of negative values return ErrUndefinedRoot. The root of zero is
// zero. There is no bracketing interval to escape: the iteration is valid
// for any positive radicand, typical financial ratios in [0.1, 10] converge
// in a handful of steps.
func NthRoot(value decimal.Decimal, n int) (decimal.Decimal, error) {
	if n <= 0 {
		return decimal.Zero, fmt.Errorf("%w: degree %d", ErrUndefinedRoot, n)
	}
	if n == 1 || value.IsZero() {
		return value, nil
	}
	if value.IsNegative() {
		if n%2 == 0 {
			return decimal.Zero, fmt.Errorf("%w: even root of %s", ErrUndefinedRoot, value)
		}
		root, err := NthRoot(value.Neg(), n)
		return root.Neg(), err
	}

	x := newtonSeed(value, n)
	nd := decimal.NewFromInt(int64(n))
	nMinus1 := decimal.NewFromInt(int64(n - 1))

	// x' = ((n-1)x + value/x^(n-1)) / n
	for range maxNewtonIter {
		xPow, err := PowInt(x, n-1)
		if err != nil {
			return decimal.Zero, err
		}
		if xPow.IsZero() {
			// degenerate iterate, restart from 1
			x = one
			continue
		}
		next := nMinus1.Mul(x).Add(value.DivRound(xPow, precision)).DivRound(nd, precision)
		if next.Sub(x).Abs().LessThanOrEqual(convergence) {
			return next, nil
		}
		x = next
	}
	// iteration cap reached, return the last iterate
	return x, nil
}

// newtonSeed picks the starting point of the iteration. A float64 estimate
// is close enough to make convergence near-immediate; a non-finite or
// non-positive estimate falls back to 1.
func newtonSeed(value decimal.Decimal, n int) decimal.Decimal {
	f := math.Pow(value.InexactFloat64(), 1/float64(n))
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return one
	}
	return decimal.NewFromFloat(f)
}

// Exp computes e^x in decimal arithmetic.
func Exp(x decimal.Decimal) (decimal.Decimal, error) {
	v, err := x.ExpTaylor(precision)
	if err != nil {
		return decimal.Zero, fmt.Errorf("exp(%s): %w", x, err)
	}
	return v, nil
}

// Ln computes the natural logarithm of x. A non-positive x is a domain
// error, never a silent NaN.
func Ln(x decimal.Decimal) (decimal.Decimal, error) {
	if !x.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: ln(%s)", ErrUndefinedLog, x)
	}
	v, err := x.Ln(precision)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ln(%s): %w", x, err)
	}
	return v, nil
}
