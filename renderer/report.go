// Package renderer turns growth reports into markdown documents.
package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/etnz/growth"
	md "github.com/nao1215/markdown"
)

// ReportOptions holds configuration for rendering a report.
type ReportOptions struct {
	Breakdown bool // Render the period by period breakdown table.
}

// ReportMarkdown renders a full report: estimated value, goal, volatility and
// scenario comparison.
func ReportMarkdown(r *growth.Report, opts ReportOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Growth")
	doc.PlainText(fmt.Sprintf("Estimated Value After %s: %s",
		years(r.Plan.Years), md.Bold(r.Final().String())))

	if g, ok := r.Goal(); ok {
		if g.Reached {
			doc.PlainText(fmt.Sprintf("🎉 Congratulations! You will achieve your investment goal of %s.", md.Bold(g.Target.String())))
		} else {
			doc.PlainText(fmt.Sprintf("⚠️ You will not reach your investment goal of %s, %s short. Consider increasing contributions or duration.",
				md.Bold(g.Target.String()), g.Gap.String()))
		}
	}

	doc.H2("Parameters")
	contributed := r.Contributed()
	gain := r.Final().Sub(contributed)
	gainLabel := "Total Growth"
	if gain.IsNegative() {
		gainLabel = "Total Loss"
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Initial Investment", growth.M(r.Plan.Initial, r.Plan.Currency).String()},
			{"Contribution per Period", growth.M(r.Plan.Contribution, r.Plan.Currency).String()},
			{"Annual Return Rate", growth.Percent(r.Plan.Rate).String()},
			{"Compounding", fmt.Sprintf("%s (%d per year)", r.Frequency, r.Frequency.PeriodsPerYear())},
			{"Periods", strconv.Itoa(len(r.Projection.Series))},
			{"Total Contributed", contributed.String()},
			{gainLabel, gain.SignedString()},
		},
	})

	doc.H2("Risk & Volatility Analysis")
	doc.PlainText(volatilityText(r.Volatility()))

	doc.H2("Scenario Comparison")
	doc.Table(scenarioTable(r.Scenarios, r.Plan.Currency))

	if opts.Breakdown {
		doc.H2("Breakdown")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Period", "Date", "Value", "Contributed", "Growth"},
			Rows:      [][]string{},
		}
		for _, row := range r.Breakdown() {
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(row.Period),
				row.Date.String(),
				row.Value.String(),
				row.Contributed.String(),
				row.Growth.SignedString(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// ScenariosMarkdown renders a scenario comparison on its own.
func ScenariosMarkdown(set growth.ScenarioSet, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Scenario Comparison with ±%v%% Deviation", growth.ScenarioSpread))
	doc.Table(scenarioTable(set, currency))
	return doc.String()
}

func scenarioTable(set growth.ScenarioSet, currency string) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Scenario", "Annual Rate", "Rate vs Base", "Final Value", "Value vs Base"},
		Rows:      [][]string{},
	}
	base, _ := set.Get(growth.Base)
	baseFinal := growth.M(base.Final, currency).Round()
	for _, s := range set {
		final := growth.M(s.Final, currency).Round()
		table.Rows = append(table.Rows, []string{
			s.Label(),
			growth.Percent(s.Rate).String(),
			growth.Percent(s.Rate - base.Rate).SignedString(),
			final.String(),
			final.Sub(baseFinal).SignedString(),
		})
	}
	return table
}

// volatilityText describes a volatility, or why it is not available.
func volatilityText(vol float64, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("Estimated Volatility (Standard Deviation): %s", md.Bold(growth.FractionToPercent(vol).String()))
	case errors.Is(err, growth.ErrNotEnoughData):
		return "⚠️ Not enough data for volatility analysis."
	default:
		return fmt.Sprintf("⚠️ Volatility is undefined: %v.", err)
	}
}

// VolatilityMarkdown renders the outcome of growth.Volatility.
func VolatilityMarkdown(vol float64, err error) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Risk & Volatility Analysis")
	doc.PlainText(volatilityText(vol, err))
	return doc.String()
}

func years(n int) string {
	if n == 1 {
		return "1 Year"
	}
	return fmt.Sprintf("%d Years", n)
}
