package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincast"
	"github.com/etnz/fincast/renderer"
	"github.com/google/subcommands"
)

// timingCmd holds the flags for the 'timing' subcommand.
type timingCmd struct {
	total      string
	years      int
	rate       string
	volatility string
}

func (*timingCmd) Name() string     { return "timing" }
func (*timingCmd) Synopsis() string { return "compare lump-sum and dollar-cost-averaged deployment" }
func (*timingCmd) Usage() string {
	return `fcast timing -total <amount> -years <n> [-rate <rate>] [-volatility <rate>]

  Contrast investing a sum at once against spreading it over equal
  monthly contributions, each with a +/- 2 sigma volatility band.
`
}

func (c *timingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.total, "total", "0", "Total amount to deploy")
	f.IntVar(&c.years, "years", 5, "Deployment horizon in years")
	f.StringVar(&c.rate, "rate", "7%", "Annual growth rate (fraction or percentage)")
	f.StringVar(&c.volatility, "volatility", "15%", "Annual volatility used for the bands")
}

func (c *timingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	total, err := parseAmount(c.total)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := parseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	volatility, err := parseRate(c.volatility)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := NewPlanner().CompareTiming(total, c.years, rate, volatility)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	v := &renderer.TimingView{
		Currency:       *defaultCurrency,
		TimingAnalysis: a,
		MonthlyDCA:     dcaMonthly(a),
	}
	printMarkdown(renderer.RenderTiming(v))
	return subcommands.ExitSuccess
}

// dcaMonthly recomputes the equal monthly deployment shown in the report.
func dcaMonthly(a *fincast.TimingAnalysis) fincast.Amount {
	if a.Years == 0 {
		return fincast.A(0)
	}
	// display only, cents are enough
	ratio, err := a.Total.Ratio(fincast.A(int64(a.Years) * 12))
	if err != nil {
		return fincast.A(0)
	}
	return fincast.A(ratio).Round2()
}
