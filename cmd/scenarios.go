package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/growth"
	"github.com/etnz/growth/renderer"
	"github.com/google/subcommands"
)

// scenariosCmd holds the flags for the 'scenarios' subcommand.
type scenariosCmd struct {
	planFlags
	labels bool
	json   bool
	query  string
}

func (*scenariosCmd) Name() string { return "scenarios" }
func (*scenariosCmd) Synopsis() string {
	return "compare projections at a lower, the expected and a higher return"
}
func (*scenariosCmd) Usage() string {
	return `grow scenarios [-plan <file>] [-rate <percent>] [-labels] [-json | -q <jsonpath>]

  Projects the plan at its rate minus 3% (never below 0%), at its rate, and
  at its rate plus 3%.

  With -labels, scenarios are keyed by label: scenarios sharing a label
  collapse into one entry.

`
}

func (c *scenariosCmd) SetFlags(f *flag.FlagSet) {
	c.planFlags.SetFlags(f)
	f.BoolVar(&c.labels, "labels", false, "Key the scenarios by label.")
	f.BoolVar(&c.json, "json", false, "Print the scenarios as JSON.")
	f.StringVar(&c.query, "q", "", "Print the result of a JSONPath query on the JSON scenarios.")
}

func (c *scenariosCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := c.Plan(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading plan: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := plan.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in plan:\n%v\n", err)
		return subcommands.ExitUsageError
	}

	freq, known := growth.LookupFrequency(plan.Frequency)
	if !known {
		newLogger().Info("unknown compounding frequency, compounding annually", "frequency", plan.Frequency)
	}
	set := growth.Scenarios(plan.Initial, plan.Contribution, plan.Rate, plan.Years, freq.PeriodsPerYear())
	if err := set.CheckFinite(); err != nil {
		fmt.Fprintf(os.Stderr, "Error projecting scenarios: %v\n", err)
		return subcommands.ExitFailure
	}

	var data any = set
	if c.labels {
		data = set.ByLabel()
	}

	switch {
	case c.query != "":
		err = printQuery(os.Stdout, data, c.query)
	case c.json:
		err = printJSON(os.Stdout, data)
	case c.labels:
		byLabel := set.ByLabel()
		labels := make([]string, 0, len(byLabel))
		for l := range byLabel {
			labels = append(labels, l)
		}
		slices.Sort(labels)
		for _, l := range labels {
			series := byLabel[l]
			final := plan.Initial
			if len(series) > 0 {
				final = series[len(series)-1]
			}
			fmt.Printf("%s\t%s\n", l, growth.M(final, plan.Currency))
		}
	default:
		printMarkdown(renderer.ScenariosMarkdown(set, plan.Currency))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error printing scenarios: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
