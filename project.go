package growth

// Projection is the outcome of compounding a value over a number of periods.
//
// Series[i] is the value at the end of period i+1. Final is the last value of
// Series, or the initial value when no period was run.
type Projection struct {
	Final  float64
	Series []float64
}

// Project compounds initial over years of periods defined by the frequency
// label (see ParseFrequency, unknown labels compound annually).
//
// Each period, the contribution is added before the period's growth applies,
// so it earns that period's return. The annual rate is a percentage and is
// not bounded: negative and very large rates are valid.
func Project(initial, contribution, annualRatePercent float64, years int, frequency string) Projection {
	return ProjectPeriods(initial, contribution, annualRatePercent, years, ParseFrequency(frequency).PeriodsPerYear())
}

// ProjectPeriods is like Project with an explicit number of periods per year.
func ProjectPeriods(initial, contribution, annualRatePercent float64, years, periodsPerYear int) Projection {
	count := years * periodsPerYear
	if count <= 0 {
		return Projection{Final: initial, Series: []float64{}}
	}
	rate := PeriodicRate(annualRatePercent, periodsPerYear)

	series := make([]float64, 0, count)
	value := initial
	for i := 0; i < count; i++ {
		// keep this exact form: (value+contribution)*(1+rate) rounds differently.
		value = value*(1+rate) + contribution*(1+rate)
		series = append(series, value)
	}
	return Projection{Final: value, Series: series}
}

// PeriodicRate converts an annual percentage into a fractional per period rate.
func PeriodicRate(annualRatePercent float64, periodsPerYear int) float64 {
	return (annualRatePercent / 100) / float64(periodsPerYear)
}
