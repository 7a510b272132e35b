package fincast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rate is a fractional growth rate per period or per year (0.07 means 7%).
// A rate must stay above -1: a position cannot lose more than 100% in one
// compounding period.
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// realisticBand is the sanity band (|rate| <= 50% a year) enforced by the
// projection entry points.
var realisticBand = decimal.NewFromFloat(0.5)

// Decimal returns the underlying decimal value.
func (r Rate) Decimal() decimal.Decimal { return r.value }

// Validate returns ErrInvalidRate when the rate is at or below -1.
func (r Rate) Validate() error {
	if r.value.LessThanOrEqual(one.Neg()) {
		return fmt.Errorf("%w: got %s", ErrInvalidRate, r.value)
	}
	return nil
}

// InRealisticBand reports whether |rate| is within the projection sanity band.
func (r Rate) InRealisticBand() bool {
	return r.value.Abs().LessThanOrEqual(realisticBand)
}

// onePlus returns 1+r, the growth factor for one period.
func (r Rate) onePlus() decimal.Decimal { return one.Add(r.value) }

func (r Rate) Equal(q Rate) bool       { return r.value.Equal(q.value) }
func (r Rate) LessThan(q Rate) bool    { return r.value.LessThan(q.value) }
func (r Rate) GreaterThan(q Rate) bool { return r.value.GreaterThan(q.value) }
func (r Rate) IsZero() bool            { return r.value.IsZero() }
func (r Rate) IsNegative() bool        { return r.value.IsNegative() }

// Percent converts the fraction to its display form (0.07 -> 7.00%).
func (r Rate) Percent() Percent {
	return Percent(r.value.Mul(hundred).InexactFloat64())
}

// String returns the full-precision fractional representation.
func (r Rate) String() string { return r.value.String() }

func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}

func (r *Rate) UnmarshalJSON(b []byte) error {
	return r.value.UnmarshalJSON(b)
}

// ToPercent converts a raw decimal ratio to its display form.
func ToPercent(ratio decimal.Decimal) Percent {
	return Percent(ratio.Mul(hundred).InexactFloat64())
}

// Percent is a display-only percentage value.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
