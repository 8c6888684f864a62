package growth

import (
	"math"
	"strconv"
)

// ScenarioSpread is the annual rate deviation, in percent, between the base
// scenario and its neighbours.
const ScenarioSpread = 3.0

// ScenarioKind identifies a scenario within a ScenarioSet.
type ScenarioKind int

const (
	Low ScenarioKind = iota
	Base
	High
)

func (k ScenarioKind) String() string {
	switch k {
	case Low:
		return "low"
	case Base:
		return "base"
	case High:
		return "high"
	default:
		return "scenario"
	}
}

// Scenario is a projection run at a given annual rate.
type Scenario struct {
	Kind   ScenarioKind
	Rate   float64 // annual rate in percent
	Final  float64
	Series []float64
}

// Label names the scenario after its rate, like "5% Return" or "2.5% Return".
func (s Scenario) Label() string {
	return strconv.FormatFloat(s.Rate, 'f', -1, 64) + "% Return"
}

// ScenarioSet holds the Low, Base and High scenarios in that order.
type ScenarioSet []Scenario

// Scenarios projects the plan three times: at the annual rate minus
// ScenarioSpread (floored at 0%), at the rate, and at the rate plus
// ScenarioSpread.
func Scenarios(initial, contribution, annualRatePercent float64, years, periodsPerYear int) ScenarioSet {
	rates := [...]float64{
		Low:  math.Max(0, annualRatePercent-ScenarioSpread),
		Base: annualRatePercent,
		High: annualRatePercent + ScenarioSpread,
	}
	set := make(ScenarioSet, 0, len(rates))
	for kind, rate := range rates {
		p := ProjectPeriods(initial, contribution, rate, years, periodsPerYear)
		set = append(set, Scenario{Kind: ScenarioKind(kind), Rate: rate, Final: p.Final, Series: p.Series})
	}
	return set
}

// Get returns the scenario of the given kind.
func (s ScenarioSet) Get(kind ScenarioKind) (Scenario, bool) {
	for _, sc := range s {
		if sc.Kind == kind {
			return sc, true
		}
	}
	return Scenario{}, false
}

// CheckFinite returns an error wrapping ErrOverflow for the first scenario
// whose final value is infinite or NaN.
func (s ScenarioSet) CheckFinite() error {
	for _, sc := range s {
		if err := checkFinite(sc.Kind.String()+" scenario", sc.Final); err != nil {
			return err
		}
	}
	return nil
}

// ByLabel returns the series keyed by scenario label.
//
// Scenarios sharing a label collapse into a single entry, the latest scenario
// wins. It happens whenever the low rate is floored to the base or high rate:
// a 0% base rate (low and base at 0%) or a -3% base rate (low and high at
// 0%).
func (s ScenarioSet) ByLabel() map[string][]float64 {
	m := make(map[string][]float64, len(s))
	for _, sc := range s {
		m[sc.Label()] = sc.Series
	}
	return m
}

// MarshalJSON writes the scenario with its label.
func (s Scenario) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", s.Kind.String())
	w.Append("label", s.Label())
	w.Append("rate", s.Rate)
	w.Append("final", s.Final)
	w.Append("series", s.Series)
	return w.MarshalJSON()
}
