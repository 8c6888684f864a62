package cmd

import (
	"strings"
	"testing"

	"github.com/etnz/growth"
)

func TestPrintQuery(t *testing.T) {
	doc := map[string]any{
		"periods": 3650,
		"big":     1e6,
		"rate":    0.05,
		"label":   "5% Return",
		"reached": false,
		"missing": nil,
		"goal":    map[string]any{"target": "50000"},
		"series":  []float64{1, 2.5},
	}
	tests := []struct {
		path string
		want string
	}{
		{"$.periods", "3650\n"},
		{"$.big", "1000000\n"},
		{"$.rate", "0.05\n"},
		{"$.label", "5% Return\n"},
		{"$.reached", "false\n"},
		{"$.missing", "null\n"},
		{"$.goal", "{\"target\":\"50000\"}\n"},
		{"$.series", "1\n2.5\n"},
		{"$.series[1]", "2.5\n"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			var b strings.Builder
			if err := printQuery(&b, doc, tc.path); err != nil {
				t.Fatalf("printQuery(%q) error: %v", tc.path, err)
			}
			if got := b.String(); got != tc.want {
				t.Errorf("printQuery(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestPrintQuery_Scenarios(t *testing.T) {
	set := growth.Scenarios(1000, 100, 5, 10, 12)
	var b strings.Builder
	if err := printQuery(&b, set, "$[*].label"); err != nil {
		t.Fatalf("printQuery() error: %v", err)
	}
	want := "2% Return\n5% Return\n8% Return\n"
	if got := b.String(); got != want {
		t.Errorf("printQuery() = %q, want %q", got, want)
	}
}

func TestPrintQuery_Error(t *testing.T) {
	var b strings.Builder
	if err := printQuery(&b, map[string]any{}, "$.unknown"); err == nil {
		t.Error("printQuery() on an unknown key: want error, got nil")
	}
}
