package growth

import (
	"errors"
	"fmt"
	"io"

	"github.com/etnz/growth/date"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is wrapped by every Plan validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Plan holds the parameters of an investment growth calculation.
//
// The projection core accepts any number; Validate restricts plans to the
// range a user can actually ask for.
type Plan struct {
	Initial      float64   `yaml:"initial" json:"initial"`           // initial lump sum
	Contribution float64   `yaml:"contribution" json:"contribution"` // added every period
	Rate         float64   `yaml:"rate" json:"rate"`                 // expected annual return, in percent
	Years        int       `yaml:"years" json:"years"`
	Frequency    string    `yaml:"frequency" json:"frequency"` // compounding frequency label
	Goal         float64   `yaml:"goal,omitempty" json:"goal,omitempty"`
	Currency     string    `yaml:"currency,omitempty" json:"currency,omitempty"`
	Start        date.Date `yaml:"start,omitempty" json:"start,omitempty"` // first day of the first period
}

// DefaultPlan returns the plan used when nothing is specified.
func DefaultPlan() Plan {
	return Plan{
		Initial:      1000,
		Contribution: 100,
		Rate:         5,
		Years:        10,
		Frequency:    Monthly.String(),
		Goal:         50000,
		Currency:     DefaultCurrency,
	}
}

// DecodePlan reads a YAML (or JSON) plan from r. Fields absent from r keep
// their DefaultPlan value.
func DecodePlan(r io.Reader) (Plan, error) {
	p := DefaultPlan()
	err := p.Decode(r)
	return p, err
}

// Decode reads a YAML (or JSON) plan from r over p: fields absent from r are
// left untouched. An empty input is not an error.
func (p *Plan) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("cannot decode plan: %w", err)
	}
	p.Frequency = NormalizeFrequency(p.Frequency)
	return nil
}

// CompoundingFrequency returns the compounding frequency of the plan, unknown labels
// compound annually.
func (p Plan) CompoundingFrequency() Frequency { return ParseFrequency(p.Frequency) }

// Validate checks that the plan describes a calculation a user can ask for.
// All failures are returned, joined, each wrapping ErrInvalidInput.
func (p Plan) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...))
	}
	if p.Initial < 0 {
		invalid("initial investment must not be negative, got %v", p.Initial)
	}
	if p.Years < 0 {
		invalid("duration must not be negative, got %d years", p.Years)
	}
	if p.Goal < 0 {
		invalid("goal must not be negative, got %v", p.Goal)
	}
	if p.Currency != "" && !KnownCurrency(p.Currency) {
		invalid("unknown currency %q", p.Currency)
	}
	return errors.Join(errs...)
}
