package growth

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestVolatility_IncreasingSeries(t *testing.T) {
	got, err := Volatility([]float64{1000, 1050, 1100, 1150, 1200}, 12)
	if err != nil {
		t.Fatalf("Volatility() unexpected error: %v", err)
	}
	if got <= 0 {
		t.Errorf("Volatility() = %v, want a positive volatility for an increasing series", got)
	}
}

func TestVolatility_Value(t *testing.T) {
	// returns are 10% and -10%: mean 0, sample variance (0.01+0.01)/1.
	got, err := Volatility([]float64{100, 110, 99}, 4)
	if err != nil {
		t.Fatalf("Volatility() unexpected error: %v", err)
	}
	want := math.Sqrt(0.02) * 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Volatility() = %v, want %v", got, want)
	}
}

func TestVolatility_ConstantReturnsIsZero(t *testing.T) {
	got, err := Volatility([]float64{100, 200, 400, 800}, 12)
	if err != nil {
		t.Fatalf("Volatility() unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("Volatility() = %v, want 0 for a constant return", got)
	}
}

func TestVolatility_ScalesWithSquareRootOfTime(t *testing.T) {
	series := []float64{1000, 1010, 1030, 1035, 1070}
	yearly, err := Volatility(series, 1)
	if err != nil {
		t.Fatalf("Volatility() unexpected error: %v", err)
	}
	daily, err := Volatility(series, 365)
	if err != nil {
		t.Fatalf("Volatility() unexpected error: %v", err)
	}
	if want := yearly * math.Sqrt(365); math.Abs(daily-want) > 1e-12 {
		t.Errorf("Volatility(365) = %v, want %v", daily, want)
	}
}

func TestVolatility_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		series []float64
		want   error
	}{
		{"nil series", nil, ErrNotEnoughData},
		{"empty series", []float64{}, ErrNotEnoughData},
		{"single value", []float64{1000}, ErrNotEnoughData},
		{"single return", []float64{1000, 1100}, ErrNotEnoughData},
		{"zero value", []float64{1000, 0, 100}, ErrZeroValue},
		{"all zeros", []float64{0, 0, 0}, ErrZeroValue},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Volatility(tc.series, 12)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Volatility() error = %v, want %v", err, tc.want)
			}
			if got != 0 {
				t.Errorf("Volatility() = %v, want 0 alongside an error", got)
			}
		})
	}
}

func TestVolatility_OfProjection(t *testing.T) {
	p := Project(1000, 100, 5, 10, "Monthly")
	got, err := Volatility(p.Series, 12)
	if err != nil {
		t.Fatalf("Volatility() unexpected error: %v", err)
	}
	if got <= 0 {
		t.Errorf("Volatility() = %v, want a positive volatility", got)
	}
}

func TestReturns(t *testing.T) {
	got, err := Returns([]float64{100, 110, 99})
	if err != nil {
		t.Fatalf("Returns() unexpected error: %v", err)
	}
	want := []float64{0.1, -0.1}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Returns() mismatch (-want +got):\n%s", diff)
	}
}
