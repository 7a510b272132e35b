package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/fincast"
	"github.com/etnz/fincast/renderer"
	"github.com/google/subcommands"
)

// DecodeGoalsFile reads the goals from the app goals file. A missing file is
// an empty goal list, not an error.
func DecodeGoalsFile() ([]fincast.Goal, error) {
	f, err := os.Open(*goalsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open goals file %q: %w", *goalsFile, err)
	}
	defer f.Close()
	return fincast.DecodeGoals(f)
}

// AppendGoal appends a single goal to the app goals file.
func AppendGoal(g fincast.Goal) error {
	f, err := os.OpenFile(*goalsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open goals file %q: %w", *goalsFile, err)
	}
	defer f.Close()
	return fincast.EncodeGoal(f, g)
}

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	rate string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "report progress on the saved goals" }
func (*goalCmd) Usage() string {
	return `fcast goal [-rate <rate>]

  Project every goal in the goals file to its target date and report the
  funding level, the projected value and, when the plan falls short, the
  contribution that would close the gap.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rate, "rate", "7%", "Assumed annual growth rate")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := parseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	goals, err := DecodeGoalsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(goals) == 0 {
		fmt.Fprintf(os.Stderr, "No goals in %q. Add one with 'fcast goal-add'.\n", *goalsFile)
		return subcommands.ExitSuccess
	}

	planner := NewPlanner()
	today := fincast.Today()
	var reports []fincast.GoalReport
	for _, g := range goals {
		r, err := planner.GoalProgress(g, rate, today)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		reports = append(reports, r)
	}

	printMarkdown(renderer.RenderGoals(renderer.NewGoalsView(*defaultCurrency, rate, reports)))
	return subcommands.ExitSuccess
}

// goalAddCmd holds the flags for the 'goal-add' subcommand.
type goalAddCmd struct {
	name    string
	target  string
	current string
	monthly string
	by      string
}

func (*goalAddCmd) Name() string     { return "goal-add" }
func (*goalAddCmd) Synopsis() string { return "append a goal to the goals file" }
func (*goalAddCmd) Usage() string {
	return `fcast goal-add -name <name> -target <amount> [-current <amount>] [-monthly <amount>] [-by <date>]

Usage Examples:
$ fcast goal-add -name house -target 60000 -current 15000 -monthly 400 -by 2030-06-01

`
}

func (c *goalAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name")
	f.StringVar(&c.target, "target", "0", "Target value")
	f.StringVar(&c.current, "current", "0", "Current value")
	f.StringVar(&c.monthly, "monthly", "0", "Monthly contribution")
	f.StringVar(&c.by, "by", "", "Target date (ISO-8601)")
}

func (c *goalAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g := fincast.Goal{Name: c.name}
	var err error
	if g.Target, err = parseAmount(c.target); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if g.Current, err = parseAmount(c.current); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if g.Monthly, err = parseAmount(c.monthly); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.by != "" {
		if g.TargetDate, err = fincast.ParseDate(c.by); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if err := g.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := AppendGoal(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended goal %q to %s\n", g.Name, *goalsFile)
	return subcommands.ExitSuccess
}

// goalImportCmd holds the flags for the 'goal-import' subcommand.
type goalImportCmd struct {
	file    string
	items   string
	name    string
	target  string
	current string
	monthly string
	by      string
}

func (*goalImportCmd) Name() string     { return "goal-import" }
func (*goalImportCmd) Synopsis() string { return "import goals from a third-party JSON export" }
func (*goalImportCmd) Usage() string {
	return `fcast goal-import -file <export.json> -items <jsonpath> -name <jsonpath> -target <jsonpath> -current <jsonpath> [-monthly <jsonpath>] [-by <jsonpath>]

  Map an arbitrary JSON export onto goals with jsonpath expressions and
  append them to the goals file.

Usage Examples:
$ fcast goal-import -file pots.json -items '$.savings_pots' -name '$.label' -target '$.goal_amount' -current '$.balance'

`
}

func (c *goalImportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON export to import from")
	f.StringVar(&c.items, "items", "", "jsonpath selecting the list of goal records")
	f.StringVar(&c.name, "name", "$.name", "jsonpath to the goal name, within a record")
	f.StringVar(&c.target, "target", "$.target", "jsonpath to the target value, within a record")
	f.StringVar(&c.current, "current", "$.current", "jsonpath to the current value, within a record")
	f.StringVar(&c.monthly, "monthly", "", "jsonpath to the monthly contribution, optional")
	f.StringVar(&c.by, "by", "", "jsonpath to the target date, optional")
}

func (c *goalImportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %q: %v\n", c.file, err)
		return subcommands.ExitUsageError
	}
	defer in.Close()

	goals, err := fincast.ImportGoals(in, fincast.GoalImportSpec{
		Items:   c.items,
		Name:    c.name,
		Target:  c.target,
		Current: c.current,
		Monthly: c.monthly,
		By:      c.by,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, g := range goals {
		if err := AppendGoal(g); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Successfully imported %d goals into %s\n", len(goals), *goalsFile)
	return subcommands.ExitSuccess
}
