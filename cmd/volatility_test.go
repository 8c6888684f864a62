package cmd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadSeries(t *testing.T) {
	got, err := readSeries(strings.NewReader("1000 1100\n1210\t-5.5\n"))
	if err != nil {
		t.Fatalf("readSeries() error: %v", err)
	}
	want := []float64{1000, 1100, 1210, -5.5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readSeries() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSeries_Empty(t *testing.T) {
	got, err := readSeries(strings.NewReader(""))
	if err != nil {
		t.Fatalf("readSeries() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("readSeries() = %v, want empty", got)
	}
}

func TestParseSeries_Error(t *testing.T) {
	_, err := parseSeries([]string{"1", "two", "3"})
	if err == nil {
		t.Fatal("parseSeries() want error, got nil")
	}
	if !strings.Contains(err.Error(), "value #2") {
		t.Errorf("parseSeries() error = %q, want it to name value #2", err)
	}
}
