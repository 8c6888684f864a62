package growth

import "fmt"

// Percent is a value expressed in percent: 5 is 5%.
type Percent float64

// FractionToPercent converts a fraction (0.05) into a Percent (5%).
func FractionToPercent(f float64) Percent { return Percent(f * 100) }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString returns the percent with its sign, "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
