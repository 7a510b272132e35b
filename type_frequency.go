package fincast

import (
	"fmt"
	"strings"
)

// Frequency is how often a regular deposit is made.
type Frequency int

const (
	Monthly Frequency = iota
	Quarterly
	Annual
)

func (f Frequency) String() string {
	switch f {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Annual:
		return "annual"
	default:
		panic(fmt.Sprintf("unknown frequency %d", f))
	}
}

// PerYear returns the number of deposits made in one year.
func (f Frequency) PerYear() int64 {
	switch f {
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Annual:
		return 1
	default:
		panic(fmt.Sprintf("unknown frequency %d", f))
	}
}

func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(s) {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "annual", "annually", "year", "yearly":
		return Annual, nil
	default:
		return Monthly, fmt.Errorf("unknown frequency %q", s)
	}
}
