package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func findMatcher(t *testing.T, name string) matcher {
	t.Helper()
	for _, m := range labeledMatchers() {
		if m.name == name {
			return m
		}
	}
	t.Fatalf("no matcher named %q", name)
	return matcher{}
}

func TestLabeledMatchers(t *testing.T) {
	testCases := []struct {
		matcher string
		text    string
		want    candidate
		wantOK  bool
	}{
		{matcher: "hourly-range", text: "Pay: $35 - $42/hr", want: candidate{35, 42, Hourly}, wantOK: true},
		{matcher: "hourly-range", text: "Pay: $35 - $42 per year", wantOK: false},
		{matcher: "hourly-range", text: "Pay Range: $40/hr - $50/hr", want: candidate{40, 50, Hourly}, wantOK: true},
		{matcher: "hourly-range", text: "Pay: $38 per hour to $46 per hour", want: candidate{38, 46, Hourly}, wantOK: true},
		{matcher: "hourly-single", text: "Compensation: $61.25 hourly", want: candidate{61.25, 61.25, Hourly}, wantOK: true},
		{matcher: "hourly-single", text: "Pay: $61.25", wantOK: false},
		{matcher: "annual-range", text: "**Salary Range:** $88,000 to $101,500/yr", want: candidate{88000, 101500, Annual}, wantOK: true},
		{matcher: "annual-range", text: "Salary Range: $80k/yr - $95k/yr", want: candidate{80000, 95000, Annual}, wantOK: true},
		{matcher: "salary-near-range", text: "Starting salary $70,000/yr - $80,000/yr", want: candidate{70000, 80000, Annual}, wantOK: true},
		{matcher: "annual-single", text: "Salary: $92k annually", want: candidate{92000, 92000, Annual}, wantOK: true},
		{matcher: "annual-single", text: "$92k annually", wantOK: false},
		{matcher: "salary-near-range", text: "Base salary $70,000 - $80,000", want: candidate{70000, 80000, Annual}, wantOK: true},
		{matcher: "salary-near-range", text: "Base salary\n$70,000 - $80,000", wantOK: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.matcher+"/"+tc.text, func(t *testing.T) {
			got, ok := findMatcher(t, tc.matcher).match(tc.text)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestHighlightsMatcher(t *testing.T) {
	m := highlightsMatcher(DefaultHighlightsHeading, DefaultPayMarker, FallbackHourlyCeiling)

	got, ok := m.match("Intro\n## highlights\n- \U0001F4B0 $600\n")
	assert.True(t, ok)
	assert.Equal(t, candidate{600, 600, Annual}, got)

	got, ok = m.match("## Highlights\n- \U0001F4B0 $92,000 - $104,000/year\n")
	assert.True(t, ok)
	assert.Equal(t, candidate{92000, 104000, Annual}, got)

	got, ok = m.match("## Highlights\n- \U0001F4B0 $1,200/hour\n")
	assert.True(t, ok)
	assert.Equal(t, candidate{1200, 1200, Hourly}, got)

	_, ok = m.match("## Highlights\n- no pay listed\n")
	assert.False(t, ok)
}

func TestParseAmount(t *testing.T) {
	v, ok := parseAmount("1,234", ".5", "")
	assert.True(t, ok)
	assert.Equal(t, 1234.5, v)

	v, ok = parseAmount("85", "", "K")
	assert.True(t, ok)
	assert.Equal(t, 85000.0, v)
}
