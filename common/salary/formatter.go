package salary

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Format renders stored pay fields as a pay line such as "$35 - $42/hour" or
// "From $75,000/year". The boolean is false when there is no pay data to show:
// both bounds missing, or a salary type other than "hourly" or "annual".
// NaN and infinite bounds count as missing.
func Format(min, max *float64, salaryType string) (string, bool) {
	min, max = finite(min), finite(max)
	if min == nil && max == nil {
		return "", false
	}
	t, ok := ParseType(salaryType)
	if !ok {
		return "", false
	}
	unit := t.Unit()

	switch {
	case min != nil && max != nil:
		lo, hi := formatAmount(*min), formatAmount(*max)
		if lo == hi {
			return fmt.Sprintf("$%s/%s", lo, unit), true
		}
		return fmt.Sprintf("$%s - $%s/%s", lo, hi, unit), true
	case min != nil:
		return fmt.Sprintf("From $%s/%s", formatAmount(*min), unit), true
	default:
		return fmt.Sprintf("Up to $%s/%s", formatAmount(*max), unit), true
	}
}

// FormatSalary renders an extraction result.
func FormatSalary(s Salary) (string, bool) {
	return Format(&s.Min, &s.Max, string(s.Type))
}

// maxExactInt is 2^53, past which float64 no longer holds every integer.
const maxExactInt = 1 << 53

func finite(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

func formatAmount(v float64) string {
	rounded := math.Round(v)
	if math.Abs(rounded) >= maxExactInt {
		return humanize.Commaf(rounded)
	}
	if math.Abs(v-rounded) < 0.005 {
		return humanize.Comma(int64(rounded))
	}
	return humanize.FormatFloat("#,###.##", v)
}
