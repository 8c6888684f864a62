package growth

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNotEnoughData is returned when a series is too short to measure a
	// dispersion of returns.
	ErrNotEnoughData = errors.New("not enough data for volatility analysis")
	// ErrZeroValue is returned when a series holds a zero value that a
	// return would be divided by.
	ErrZeroValue = errors.New("zero value in series")
)

// Returns computes the period over period fractional changes of series.
// It has one element less than series, and none for a series of less than two values.
func Returns(series []float64) ([]float64, error) {
	if len(series) < 2 {
		return []float64{}, nil
	}
	changes := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		prev := series[i-1]
		if prev == 0 {
			return nil, fmt.Errorf("period %d: %w", i, ErrZeroValue)
		}
		changes = append(changes, (series[i]-prev)/prev)
	}
	return changes, nil
}

// Volatility returns the annualized standard deviation of the period over
// period returns of series: the sample standard deviation of the returns
// scaled by the square root of periodsPerYear.
//
// It returns ErrNotEnoughData when there are less than two returns to
// compare, this is distinct from a zero volatility.
func Volatility(series []float64, periodsPerYear int) (float64, error) {
	if len(series) < 3 {
		return 0, ErrNotEnoughData
	}
	changes, err := Returns(series)
	if err != nil {
		return 0, err
	}
	// stat.StdDev uses the unbiased n-1 estimator.
	return stat.StdDev(changes, nil) * math.Sqrt(float64(periodsPerYear)), nil
}
