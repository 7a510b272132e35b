package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/etnz/fincast"
)

// Format renders an amount in the given currency, with the currency's own
// grapheme, fraction and thousands separator.
func Format(currency string, a fincast.Amount) string {
	// to get a never nil currency we call the Money constructor
	cur := *money.New(0, currency).Currency()
	dec := a.Decimal().Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedFormat renders an amount with an explicit sign. Zero renders as "-".
func SignedFormat(currency string, a fincast.Amount) string {
	if a.IsZero() {
		return "-"
	}
	if a.IsPositive() {
		return "+" + Format(currency, a)
	}
	return Format(currency, a)
}
