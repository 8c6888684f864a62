package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/growth"
	"github.com/etnz/growth/date"
	"github.com/google/go-cmp/cmp"
)

func parsePlan(t *testing.T, args ...string) (growth.Plan, error) {
	t.Helper()
	var p planFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	p.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Parse(%q) error: %v", args, err)
	}
	return p.Plan(f)
}

func TestPlanFlags(t *testing.T) {
	config = Config{Currency: "EUR"}
	t.Cleanup(func() { config = Config{} })

	tests := []struct {
		name string
		args []string
		want func(p *growth.Plan)
	}{
		{
			name: "defaults",
			want: func(p *growth.Plan) {},
		},
		{
			name: "set flags override",
			args: []string{"-initial", "0", "-rate", "7.5", "-years", "3", "-goal", "0"},
			want: func(p *growth.Plan) {
				p.Initial = 0
				p.Rate = 7.5
				p.Years = 3
				p.Goal = 0
			},
		},
		{
			name: "frequency is normalized",
			args: []string{"-frequency", "semi"},
			want: func(p *growth.Plan) { p.Frequency = "Semi-Annually" },
		},
		{
			name: "start",
			args: []string{"-start", "2025-01-01"},
			want: func(p *growth.Plan) { p.Start = date.MustParse("2025-01-01") },
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := growth.DefaultPlan()
			want.Currency = "EUR"
			tc.want(&want)

			got, err := parsePlan(t, tc.args...)
			if err != nil {
				t.Fatalf("Plan() error: %v", err)
			}
			if diff := cmp.Diff(want, got, cmp.AllowUnexported(date.Date{})); diff != "" {
				t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlanFlags_File(t *testing.T) {
	config = Config{Currency: "EUR"}
	t.Cleanup(func() { config = Config{} })

	file := filepath.Join(t.TempDir(), "plan.yaml")
	content := "rate: 3\nyears: 2\nfrequency: quarterly\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := parsePlan(t, "-plan", file, "-years", "4")
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	want := growth.DefaultPlan()
	want.Currency = "EUR"
	want.Rate = 3
	want.Years = 4
	want.Frequency = "Quarterly"
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanFlags_Errors(t *testing.T) {
	if _, err := parsePlan(t, "-plan", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Plan() with a missing file: want error, got nil")
	}
	if _, err := parsePlan(t, "-start", "tomorrow-ish"); err == nil {
		t.Error("Plan() with an invalid start: want error, got nil")
	}
}
