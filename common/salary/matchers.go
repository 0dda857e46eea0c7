package salary

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	amountExpr     = `\$\s?(\d{1,3}(?:,\d{3})+|\d+)(\.\d{1,2})?(?:\s?([kK])\b)?`
	rangeSepExpr   = `\s*(?:-|–|—|to)\s*`
	labelExpr      = `(?:\*\*)?(?:pay(?:\s+range)?|salary(?:\s+range)?|compensation)\s*:\s*(?:\*\*)?\s*`
	hourlyUnitExpr = `\s*(?:(?:/|per|an?)\s*)?(?:hourly|hours?|hrs?)\b`
	annualUnitExpr = `\s*(?:(?:/|per|an?)\s*)?(?:annually|annual|years?|yrs?)\b`
)

var (
	hourlyRangePattern  = regexp.MustCompile(`(?i)` + labelExpr + amountExpr + `(?:` + hourlyUnitExpr + `)?` + rangeSepExpr + amountExpr + hourlyUnitExpr)
	hourlySinglePattern = regexp.MustCompile(`(?i)` + labelExpr + amountExpr + hourlyUnitExpr)

	annualRangePattern  = regexp.MustCompile(`(?i)` + labelExpr + amountExpr + `(?:` + annualUnitExpr + `)?` + rangeSepExpr + amountExpr + annualUnitExpr)
	annualSinglePattern = regexp.MustCompile(`(?i)` + labelExpr + amountExpr + annualUnitExpr)
	salaryNearPattern   = regexp.MustCompile(`(?i)\bsalary\b[^$\n]{0,40}` + amountExpr + `(?:` + annualUnitExpr + `)?` + rangeSepExpr + amountExpr + `(?:` + annualUnitExpr + `)?`)

	hourlyUnitPrefix = regexp.MustCompile(`(?i)^` + hourlyUnitExpr)
	annualUnitPrefix = regexp.MustCompile(`(?i)^` + annualUnitExpr)

	sectionEndPattern = regexp.MustCompile(`\n#{1,2}\s`)
)

// candidate is a raw match before the bounds check. A zero unit means the
// matcher found amounts but no unit.
type candidate struct {
	min  float64
	max  float64
	unit Type
}

type matcher struct {
	name  string
	match func(text string) (candidate, bool)
}

func rangeMatcher(name string, re *regexp.Regexp, unit Type) matcher {
	return matcher{
		name: name,
		match: func(text string) (candidate, bool) {
			m := re.FindStringSubmatch(text)
			if m == nil {
				return candidate{}, false
			}
			min, ok := parseAmount(m[1], m[2], m[3])
			if !ok {
				return candidate{}, false
			}
			max, ok := parseAmount(m[4], m[5], m[6])
			if !ok {
				return candidate{}, false
			}
			return candidate{min: min, max: max, unit: unit}, true
		},
	}
}

func singleMatcher(name string, re *regexp.Regexp, unit Type) matcher {
	return matcher{
		name: name,
		match: func(text string) (candidate, bool) {
			m := re.FindStringSubmatch(text)
			if m == nil {
				return candidate{}, false
			}
			v, ok := parseAmount(m[1], m[2], m[3])
			if !ok {
				return candidate{}, false
			}
			return candidate{min: v, max: v, unit: unit}, true
		},
	}
}

func labeledMatchers() []matcher {
	return []matcher{
		rangeMatcher("hourly-range", hourlyRangePattern, Hourly),
		singleMatcher("hourly-single", hourlySinglePattern, Hourly),
		rangeMatcher("annual-range", annualRangePattern, Annual),
		singleMatcher("annual-single", annualSinglePattern, Annual),
		rangeMatcher("salary-near-range", salaryNearPattern, Annual),
	}
}

// highlightsMatcher scans the machine-written highlights block for the pay line
// the upstream generator prefixes with marker.
func highlightsMatcher(heading, marker string, ceiling float64) matcher {
	headingRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(heading))
	quoted := regexp.QuoteMeta(marker)
	rangeRe := regexp.MustCompile(quoted + `[^$\n]*?` + amountExpr + rangeSepExpr + amountExpr + `([^\n]*)`)
	singleRe := regexp.MustCompile(quoted + `[^$\n]*?` + amountExpr + `([^\n]*)`)

	return matcher{
		name: "highlights",
		match: func(text string) (candidate, bool) {
			section, ok := highlightsSection(text, headingRe)
			if !ok {
				return candidate{}, false
			}

			var c candidate
			var rest string
			if m := rangeRe.FindStringSubmatch(section); m != nil {
				min, okMin := parseAmount(m[1], m[2], m[3])
				max, okMax := parseAmount(m[4], m[5], m[6])
				if !okMin || !okMax {
					return candidate{}, false
				}
				c, rest = candidate{min: min, max: max}, m[7]
			} else if m := singleRe.FindStringSubmatch(section); m != nil {
				v, okV := parseAmount(m[1], m[2], m[3])
				if !okV {
					return candidate{}, false
				}
				c, rest = candidate{min: v, max: v}, m[4]
			} else {
				return candidate{}, false
			}

			c.unit = unitOf(rest)
			if c.unit == "" {
				c.unit = Hourly
				if c.min > ceiling {
					c.unit = Annual
				}
			}
			return c, true
		},
	}
}

func highlightsSection(text string, headingRe *regexp.Regexp) (string, bool) {
	loc := headingRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	section := text[loc[1]:]
	if end := sectionEndPattern.FindStringIndex(section); end != nil {
		section = section[:end[0]]
	}
	return section, true
}

func unitOf(rest string) Type {
	switch {
	case hourlyUnitPrefix.MatchString(rest):
		return Hourly
	case annualUnitPrefix.MatchString(rest):
		return Annual
	}
	return ""
}

func parseAmount(whole, frac, suffix string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(whole, ",", "")+frac, 64)
	if err != nil {
		return 0, false
	}
	if suffix != "" {
		v *= 1000
	}
	return v, true
}
