package growth

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/growth/date"
	"github.com/go-logr/logr"
)

// ErrOverflow is returned when a projection grows beyond the float64 range.
var ErrOverflow = errors.New("value out of range")

// checkFinite returns an error wrapping ErrOverflow if v is infinite or NaN.
func checkFinite(what string, v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("%w: %s final value is %v", ErrOverflow, what, v)
	}
	return nil
}

// Report gathers everything computed for a Plan: the projection, its
// volatility, the goal status and the scenario comparison.
type Report struct {
	Plan       Plan
	Frequency  Frequency
	Projection Projection
	Scenarios  ScenarioSet

	volatility    float64
	volatilityErr error
}

// NewReport validates the plan and runs the projection, volatility and
// scenario calculations. log receives traces around each calculation.
func NewReport(log logr.Logger, p Plan) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Start.IsZero() {
		p.Start = date.Today()
	}

	freq, known := LookupFrequency(p.Frequency)
	if !known {
		log.Info("unknown compounding frequency, compounding annually", "frequency", p.Frequency)
	}
	ppy := freq.PeriodsPerYear()
	log.V(1).Info("plan",
		"initial", p.Initial,
		"contribution", p.Contribution,
		"rate", p.Rate,
		"years", p.Years,
		"frequency", freq.String(),
		"goal", p.Goal)

	r := &Report{Plan: p, Frequency: freq}

	r.Projection = Project(p.Initial, p.Contribution, p.Rate, p.Years, p.Frequency)
	log.V(1).Info("projection",
		"periodicRate", PeriodicRate(p.Rate, ppy),
		"periods", len(r.Projection.Series),
		"final", r.Projection.Final)
	if err := checkFinite("projection", r.Projection.Final); err != nil {
		return nil, err
	}

	r.volatility, r.volatilityErr = Volatility(r.Projection.Series, ppy)
	if r.volatilityErr != nil {
		log.V(1).Info("no volatility data available", "reason", r.volatilityErr.Error())
	} else {
		log.V(1).Info("volatility", "value", r.volatility)
	}

	r.Scenarios = Scenarios(p.Initial, p.Contribution, p.Rate, p.Years, ppy)
	for _, s := range r.Scenarios {
		log.V(1).Info("scenario", "kind", s.Kind.String(), "rate", s.Rate, "final", s.Final)
	}
	if err := r.Scenarios.CheckFinite(); err != nil {
		return nil, err
	}
	return r, nil
}

// Volatility returns the annualized volatility of the projection, or the
// reason why it is undefined (see growth.Volatility).
func (r *Report) Volatility() (float64, error) { return r.volatility, r.volatilityErr }

// money converts a float in the plan currency.
func (r *Report) money(v float64) Money { return M(v, r.Plan.Currency) }

// Final returns the value at the end of the plan.
func (r *Report) Final() Money { return r.money(r.Projection.Final) }

// Contributed returns the total amount invested by the end of the plan.
func (r *Report) Contributed() Money { return r.contributed(len(r.Projection.Series)) }

func (r *Report) contributed(periods int) Money {
	return r.money(r.Plan.Initial).Add(r.money(r.Plan.Contribution).MulInt(periods))
}

// Goal describes how the final value compares with the plan goal.
type Goal struct {
	Target  Money
	Reached bool
	Gap     Money // missing amount, zero when reached
}

// Goal returns the goal status. ok is false when the plan has no goal.
func (r *Report) Goal() (g Goal, ok bool) {
	if r.Plan.Goal == 0 {
		return Goal{}, false
	}
	target := r.money(r.Plan.Goal)
	final := r.Final().Round()
	g = Goal{Target: target, Reached: !final.LessThan(target)}
	if !g.Reached {
		g.Gap = target.Sub(final)
	} else {
		g.Gap = M(0, r.Plan.Currency)
	}
	return g, true
}

// BreakdownRow is the state of the plan at the end of a period.
type BreakdownRow struct {
	Period      int // 1 based
	Date        date.Date
	Value       Money
	Contributed Money
	Growth      Money // Value minus Contributed
}

// Breakdown returns one row per projected period.
func (r *Report) Breakdown() []BreakdownRow {
	ppy := r.Frequency.PeriodsPerYear()
	rows := make([]BreakdownRow, 0, len(r.Projection.Series))
	for i, v := range r.Projection.Series {
		period := i + 1
		value := r.money(v)
		contributed := r.contributed(period)
		rows = append(rows, BreakdownRow{
			Period:      period,
			Date:        r.Plan.Start.PeriodEnd(ppy, period),
			Value:       value,
			Contributed: contributed,
			Growth:      value.Sub(contributed),
		})
	}
	return rows
}

// MarshalJSON writes the report with a stable field order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("plan", r.Plan)
	w.Append("periodsPerYear", r.Frequency.PeriodsPerYear())
	w.Append("periodicRate", PeriodicRate(r.Plan.Rate, r.Frequency.PeriodsPerYear()))
	w.Append("periods", len(r.Projection.Series))
	w.Append("final", r.Final().Round())
	w.Append("contributed", r.Contributed())
	if g, ok := r.Goal(); ok {
		var gw jsonObjectWriter
		gw.Append("target", g.Target)
		gw.Append("reached", g.Reached)
		gw.Append("gap", g.Gap)
		w.Append("goal", &gw)
	}
	switch vol, err := r.Volatility(); {
	case err == nil:
		w.Append("volatility", vol)
	case errors.Is(err, ErrNotEnoughData), errors.Is(err, ErrZeroValue):
		w.Append("volatilityError", err.Error())
	default:
		return nil, fmt.Errorf("unexpected volatility error: %w", err)
	}
	w.Append("scenarios", r.Scenarios)
	w.Append("series", r.Projection.Series)
	return w.MarshalJSON()
}
