package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/growth"
	"github.com/etnz/growth/date"
)

// planFlags holds the flags describing a Plan, shared by the subcommands
// that run projections.
type planFlags struct {
	file         string
	initial      float64
	contribution float64
	rate         float64
	years        int
	frequency    string
	goal         float64
	start        string
}

func (p *planFlags) SetFlags(f *flag.FlagSet) {
	d := growth.DefaultPlan()
	f.StringVar(&p.file, "plan", "", "YAML plan file. Flags given on the command line override its values.")
	f.Float64Var(&p.initial, "initial", d.Initial, "Initial investment.")
	f.Float64Var(&p.contribution, "contribution", d.Contribution, "Contribution added every period.")
	f.Float64Var(&p.rate, "rate", d.Rate, "Expected annual return, in percent.")
	f.IntVar(&p.years, "years", d.Years, "Duration of the investment, in years.")
	f.StringVar(&p.frequency, "frequency", d.Frequency, "Compounding frequency: "+strings.Join(growth.FrequencyLabels(), ", ")+".")
	f.Float64Var(&p.goal, "goal", d.Goal, "Target value, 0 to disable the goal check.")
	f.StringVar(&p.start, "start", "", "First day of the first period (YYYY-MM-DD). Defaults to today.")
}

// Plan builds the plan: the defaults, then the plan file if any, then the
// flags explicitly set on f.
func (p *planFlags) Plan(f *flag.FlagSet) (growth.Plan, error) {
	plan := growth.DefaultPlan()
	plan.Currency = config.Currency

	if p.file != "" {
		r, err := os.Open(p.file)
		if err != nil {
			return plan, err
		}
		defer r.Close()
		if err := plan.Decode(r); err != nil {
			return plan, fmt.Errorf("plan %q: %w", p.file, err)
		}
	}

	var err error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "initial":
			plan.Initial = p.initial
		case "contribution":
			plan.Contribution = p.contribution
		case "rate":
			plan.Rate = p.rate
		case "years":
			plan.Years = p.years
		case "frequency":
			plan.Frequency = growth.NormalizeFrequency(p.frequency)
		case "goal":
			plan.Goal = p.goal
		case "start":
			plan.Start, err = date.Parse(p.start)
		}
	})
	return plan, err
}
