// Package salary recovers pay figures from free-text job descriptions and renders
// stored pay fields as the short pay line shown on job cards.
package salary

import "math"

type Type string

const (
	Hourly Type = "hourly"
	Annual Type = "annual"
)

// ParseType accepts only the exact stored values "hourly" and "annual".
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case Hourly:
		return Hourly, true
	case Annual:
		return Annual, true
	}
	return "", false
}

// Unit is the label printed after the slash in a pay line.
func (t Type) Unit() string {
	if t == Hourly {
		return "hour"
	}
	return "year"
}

const (
	HoursPerYear = 2080

	MinHourlyRate = 20
	MaxHourlyRate = 500

	MinAnnualSalary = 40000

	// Lone highlight amounts above this are read as annual.
	FallbackHourlyCeiling = 500
)

type Bounds struct {
	HoursPerYear          float64
	MinHourlyRate         float64
	MaxHourlyRate         float64
	MinAnnualSalary       float64
	FallbackHourlyCeiling float64
}

func DefaultBounds() Bounds {
	return Bounds{
		HoursPerYear:          HoursPerYear,
		MinHourlyRate:         MinHourlyRate,
		MaxHourlyRate:         MaxHourlyRate,
		MinAnnualSalary:       MinAnnualSalary,
		FallbackHourlyCeiling: FallbackHourlyCeiling,
	}
}

// Accepts reports whether an extracted pair is plausible for its unit.
func (b Bounds) Accepts(min, max float64, t Type) bool {
	if !isFinite(min) || !isFinite(max) {
		return false
	}
	switch t {
	case Hourly:
		return min >= b.MinHourlyRate && max <= b.MaxHourlyRate && min <= max
	case Annual:
		return min >= b.MinAnnualSalary && max >= b.MinAnnualSalary
	}
	return false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Salary is a normalized pay figure together with its cross-unit equivalents.
type Salary struct {
	Min  float64
	Max  float64
	Type Type

	MinHourly float64
	MaxHourly float64
	MinAnnual float64
	MaxAnnual float64
}

func (b Bounds) normalize(min, max float64, t Type) Salary {
	s := Salary{Min: min, Max: max, Type: t}
	switch t {
	case Hourly:
		s.MinHourly, s.MaxHourly = min, max
		s.MinAnnual = math.Round(min * b.HoursPerYear)
		s.MaxAnnual = math.Round(max * b.HoursPerYear)
	case Annual:
		s.MinAnnual, s.MaxAnnual = min, max
		s.MinHourly = math.Round(min / b.HoursPerYear)
		s.MaxHourly = math.Round(max / b.HoursPerYear)
	}
	return s
}
