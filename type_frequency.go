package growth

import "strings"

// Frequency is a compounding frequency, valued as the number of compounding
// periods in a year.
type Frequency int

const (
	Annually     Frequency = 1
	SemiAnnually Frequency = 2
	Quarterly    Frequency = 4
	Monthly      Frequency = 12
	Daily        Frequency = 365
)

// Frequencies lists the supported frequencies, from the least to the most frequent.
var Frequencies = []Frequency{Annually, SemiAnnually, Quarterly, Monthly, Daily}

// PeriodsPerYear returns the number of compounding periods in a year.
func (f Frequency) PeriodsPerYear() int { return int(f) }

func (f Frequency) String() string {
	switch f {
	case Annually:
		return "Annually"
	case SemiAnnually:
		return "Semi-Annually"
	case Quarterly:
		return "Quarterly"
	case Monthly:
		return "Monthly"
	case Daily:
		return "Daily"
	default:
		return "Periodic"
	}
}

// LookupFrequency returns the frequency for a label like "Monthly".
// Labels are matched exactly; ok is false for anything else.
func LookupFrequency(label string) (f Frequency, ok bool) {
	for _, f := range Frequencies {
		if f.String() == label {
			return f, true
		}
	}
	return Annually, false
}

// ParseFrequency is like LookupFrequency but falls back to Annually on an
// unknown label instead of failing.
func ParseFrequency(label string) Frequency {
	f, _ := LookupFrequency(label)
	return f
}

// FrequencyLabels returns the labels of all supported frequencies.
func FrequencyLabels() []string {
	labels := make([]string, 0, len(Frequencies))
	for _, f := range Frequencies {
		labels = append(labels, f.String())
	}
	return labels
}

// NormalizeFrequency accepts lowercase and short forms ("monthly", "month",
// "semi") as typed on a command line, and returns the canonical label.
// Unknown input is returned unchanged so it follows the Annually fallback
// downstream.
func NormalizeFrequency(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annually", "annual", "yearly", "year":
		return Annually.String()
	case "semi-annually", "semiannually", "semi":
		return SemiAnnually.String()
	case "quarterly", "quarter":
		return Quarterly.String()
	case "monthly", "month":
		return Monthly.String()
	case "daily", "day":
		return Daily.String()
	default:
		return s
	}
}

