package salary

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name       string
		min        *float64
		max        *float64
		salaryType string
		want       string
		wantOK     bool
	}{
		{
			name:       "hourly range",
			min:        ptr(35),
			max:        ptr(42),
			salaryType: "hourly",
			want:       "$35 - $42/hour",
			wantOK:     true,
		},
		{
			name:       "annual range with separators",
			min:        ptr(70000),
			max:        ptr(85000),
			salaryType: "annual",
			want:       "$70,000 - $85,000/year",
			wantOK:     true,
		},
		{
			name:       "min only",
			min:        ptr(60000),
			salaryType: "annual",
			want:       "From $60,000/year",
			wantOK:     true,
		},
		{
			name:       "max only",
			max:        ptr(50),
			salaryType: "hourly",
			want:       "Up to $50/hour",
			wantOK:     true,
		},
		{
			name:       "equal bounds render one figure",
			min:        ptr(45),
			max:        ptr(45),
			salaryType: "hourly",
			want:       "$45/hour",
			wantOK:     true,
		},
		{
			name:       "fractional hourly amounts keep cents",
			min:        ptr(35.5),
			max:        ptr(42.25),
			salaryType: "hourly",
			want:       "$35.50 - $42.25/hour",
			wantOK:     true,
		},
		{
			name:       "seven figure annual",
			min:        ptr(1250000),
			max:        ptr(1250000),
			salaryType: "annual",
			want:       "$1,250,000/year",
			wantOK:     true,
		},
		{
			name:       "missing type",
			min:        ptr(40),
			max:        ptr(50),
			salaryType: "",
			wantOK:     false,
		},
		{
			name:       "unknown type",
			min:        ptr(40),
			max:        ptr(50),
			salaryType: "weekly",
			wantOK:     false,
		},
		{
			name:       "type must match exactly",
			min:        ptr(40),
			max:        ptr(50),
			salaryType: "Hourly",
			wantOK:     false,
		},
		{
			name:       "no bounds",
			salaryType: "hourly",
			wantOK:     false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Format(tc.min, tc.max, tc.salaryType)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat_Totality(t *testing.T) {
	bounds := []*float64{nil, ptr(40), ptr(55.5), ptr(90000)}
	types := []string{"hourly", "annual", "", "monthly", "HOURLY"}

	for _, min := range bounds {
		for _, max := range bounds {
			for _, typ := range types {
				got, ok := Format(min, max, typ)
				again, okAgain := Format(min, max, typ)
				assert.Equal(t, got, again)
				assert.Equal(t, ok, okAgain)

				_, valid := ParseType(typ)
				wantOK := valid && (min != nil || max != nil)
				assert.Equal(t, wantOK, ok)
				if ok {
					assert.NotEmpty(t, got)
				} else {
					assert.Empty(t, got)
				}
			}
		}
	}
}

func TestFormat_SingleValueCollapse(t *testing.T) {
	for _, v := range []float64{20, 45, 45.5, 500, 40000, 123456.78} {
		for _, typ := range []string{"hourly", "annual"} {
			got, ok := Format(ptr(v), ptr(v), typ)
			assert.True(t, ok)
			assert.Equal(t, 1, strings.Count(got, "$"), got)
			assert.NotContains(t, got, " - ")
		}
	}
}

func TestFormat_NonFiniteBoundsAreMissing(t *testing.T) {
	nan, inf, negInf := math.NaN(), math.Inf(1), math.Inf(-1)

	testCases := []struct {
		name   string
		min    *float64
		max    *float64
		want   string
		wantOK bool
	}{
		{name: "both NaN", min: &nan, max: &nan},
		{name: "both infinite", min: &inf, max: &inf},
		{name: "NaN min and missing max", min: &nan},
		{name: "infinite max keeps finite min", min: ptr(70000), max: &inf, want: "From $70,000/year", wantOK: true},
		{name: "NaN min keeps finite max", min: &nan, max: ptr(85000), want: "Up to $85,000/year", wantOK: true},
		{name: "negative infinity", min: &negInf, max: &negInf},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Format(tc.min, tc.max, "annual")
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat_HugeAmounts(t *testing.T) {
	got, ok := Format(ptr(70000), ptr(1e20), "annual")
	assert.True(t, ok)
	assert.Equal(t, "$70,000 - $100,000,000,000,000,000,000/year", got)
	assert.NotContains(t, got, "-9,223")

	got, ok = Format(ptr(math.Pow(2, 53)), nil, "annual")
	assert.True(t, ok)
	assert.Equal(t, "From $9,007,199,254,740,992/year", got)

	s, ok := NewExtractor().Extract("Salary Range: $70,000 - $99999999999999999999 annual")
	assert.True(t, ok)
	got, ok = FormatSalary(s)
	assert.True(t, ok)
	assert.Equal(t, "$70,000 - $100,000,000,000,000,000,000/year", got)
}

func TestFormatSalary(t *testing.T) {
	s, ok := NewExtractor().Extract("**Pay:** $35.00 - $42.00/hour")
	assert.True(t, ok)

	got, ok := FormatSalary(s)
	assert.True(t, ok)
	assert.Equal(t, "$35 - $42/hour", got)
}
