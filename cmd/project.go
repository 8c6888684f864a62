package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/growth"
	"github.com/etnz/growth/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	planFlags
	table bool
	json  bool
	query string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the growth of an investment" }
func (*projectCmd) Usage() string {
	return `grow project [-plan <file>] [-initial <amount>] [-contribution <amount>] [-rate <percent>] [-years <n>] [-frequency <label>] [-goal <amount>]

  Projects the value of an investment with regular contributions, and reports
  its volatility, the goal status and the comparison with a lower and a higher
  return.

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.planFlags.SetFlags(f)
	f.BoolVar(&c.table, "table", false, "Print the value at the end of every period.")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON.")
	f.StringVar(&c.query, "q", "", "Print the result of a JSONPath query on the JSON report.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := c.Plan(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading plan: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := growth.NewReport(newLogger(), plan)
	if errors.Is(err, growth.ErrInvalidInput) {
		fmt.Fprintf(os.Stderr, "Error in plan:\n%v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error projecting plan: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.query != "":
		err = printQuery(os.Stdout, report, c.query)
	case c.json:
		err = printJSON(os.Stdout, report)
	default:
		printMarkdown(renderer.ReportMarkdown(report, renderer.ReportOptions{Breakdown: c.table}))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error printing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
