package fincast

import "github.com/shopspring/decimal"

// Amount represents a monetary value with arbitrary decimal precision.
// It carries no currency: the engine is currency-agnostic, formatting is the
// renderer's concern.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// MulInt scales the amount by an integer factor (e.g. months in a year).
func (a Amount) MulInt(n int64) Amount {
	return Amount{value: a.value.Mul(decimal.NewFromInt(n))}
}

// mulDec scales the amount by a raw decimal factor, e.g. a growth factor.
func (a Amount) mulDec(f decimal.Decimal) Amount {
	return Amount{value: a.value.Mul(f)}
}

// divDec divides the amount by a raw decimal at full working precision.
func (a Amount) divDec(f decimal.Decimal) (Amount, error) {
	v, err := SafeDivide(a.value, f)
	return Amount{value: v}, err
}

// Ratio returns a/b as a raw decimal, or ErrDivisionByZero when b is zero.
func (a Amount) Ratio(b Amount) (decimal.Decimal, error) {
	return SafeDivide(a.value, b.value)
}

func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) LessThanOrEqual(b Amount) bool    { return a.value.LessThanOrEqual(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }

// Round2 rounds to 2 decimal places. Used only at documented call sites:
// results of the contribution annuity path and display boundaries.
func (a Amount) Round2() Amount { return Amount{value: a.value.Round(2)} }

// String returns the full-precision decimal representation.
func (a Amount) String() string { return a.value.String() }

// StringFixed2 returns the value rounded to cents, for reports.
func (a Amount) StringFixed2() string { return a.value.StringFixed(2) }

// Deprecated: AsFloat should not be used in calculations, the purpose is to
// keep them exact. It remains for seeding float-backed approximations.
func (a Amount) AsFloat() float64 { return a.value.InexactFloat64() }

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

// MonthlyToAnnual scales a per-month amount to its per-year figure.
func MonthlyToAnnual(a Amount) Amount { return a.MulInt(12) }

// AnnualToMonthly scales a per-year amount to its per-month figure, at full
// working precision.
func AnnualToMonthly(a Amount) Amount {
	return Amount{value: a.value.DivRound(twelve, divPrecision)}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.value.UnmarshalJSON(b)
}
