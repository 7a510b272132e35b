package fincast

import "errors"

// Validation and arithmetic failures are returned to the immediate caller,
// wrapped with context where useful. Batch operations never abort on a
// sub-failure: they skip the entry and mark the result incomplete.
var (
	// ErrInvalidRate reports a rate at or below -100% per compounding period.
	ErrInvalidRate = errors.New("rate must be greater than -1")

	// ErrNegativeCurrent reports a negative current portfolio value.
	ErrNegativeCurrent = errors.New("current value cannot be negative")

	// ErrNegativeContribution reports a negative contribution amount.
	ErrNegativeContribution = errors.New("contribution cannot be negative")

	// ErrNegativeValue reports a negative amount where a balance is expected.
	ErrNegativeValue = errors.New("amount cannot be negative")

	// ErrInvalidYears reports a horizon outside the accepted range for the call.
	ErrInvalidYears = errors.New("years out of range")

	// ErrUnrealisticRate reports a growth rate outside the sanity band.
	ErrUnrealisticRate = errors.New("growth rate outside realistic band")

	// ErrDivisionByZero reports a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidPeriods reports a non-positive compounding period count.
	ErrInvalidPeriods = errors.New("periods must be positive")
)
