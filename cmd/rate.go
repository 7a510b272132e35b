package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincast"
	"github.com/google/subcommands"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	op      string
	value   string
	periods int
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "convert between rate conventions" }
func (*rateCmd) Usage() string {
	return `fcast rate -op <conversion> -value <rate> [-periods <n>]

  Convert a rate between conventions. Conversions:
    monthly-to-aer      effective monthly rate to annual equivalent rate
    aer-to-monthly      annual equivalent rate to effective monthly rate
    continuous-to-aer   continuously compounded rate to annual equivalent
    aer-to-continuous   annual equivalent rate to continuously compounded
    effective           nominal rate to effective, compounding -periods times a year
    nominal             effective rate to nominal, compounding -periods times a year

Usage Examples:
$ fcast rate -op monthly-to-aer -value 0.565%
$ fcast rate -op effective -value 12% -periods 12

`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.op, "op", "aer-to-monthly", "Conversion to perform")
	f.StringVar(&c.value, "value", "0", "Rate to convert (fraction or percentage)")
	f.IntVar(&c.periods, "periods", 12, "Compounding periods per year, for effective/nominal")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := parseRate(c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var out fincast.Rate
	switch c.op {
	case "monthly-to-aer":
		out, err = fincast.MonthlyToAER(in)
	case "aer-to-monthly":
		out, err = fincast.AERToMonthly(in)
	case "continuous-to-aer":
		out, err = fincast.ContinuousToAER(in)
	case "aer-to-continuous":
		out, err = fincast.AERToContinuous(in)
	case "effective":
		out, err = fincast.EffectiveRate(in, c.periods)
	case "nominal":
		out, err = fincast.NominalRate(in, c.periods)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown conversion %q\n", c.op)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(fmt.Sprintf("%s(%s) = **%s** (%s)\n", c.op, in.Percent(), out.Percent(), out))
	return subcommands.ExitSuccess
}
