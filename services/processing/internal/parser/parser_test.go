package parser

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/errors"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/salary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, raw events.RawJobPosting) []byte {
	t.Helper()
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	return data
}

func ptr(v float64) *float64 {
	return &v
}

func TestParser_ParseJobPosting_Salary(t *testing.T) {
	testCases := []struct {
		name     string
		raw      events.RawJobPosting
		wantPay  string
		wantOK   bool
		wantType string
	}{
		{
			name: "labeled pay in markdown description",
			raw: events.RawJobPosting{
				ID:           "101",
				EmployerSlug: "mercy-health",
				Title:        "Registered Nurse - Telemetry",
				Description:  "Join our team.\n\n**Pay:** $35.00 - $42.00/hour\n",
			},
			wantPay:  "$35 - $42/hour",
			wantOK:   true,
			wantType: "hourly",
		},
		{
			name: "html highlights fallback",
			raw: events.RawJobPosting{
				ID:           "102",
				EmployerSlug: "mercy-health",
				Title:        "ICU RN",
				Description:  "<p>Join our ICU team.</p><h2>Highlights</h2><ul><li>\U0001F4B0 $38 - $45 per hour</li><li>Sign-on bonus available</li></ul>",
			},
			wantPay:  "$38 - $45/hour",
			wantOK:   true,
			wantType: "hourly",
		},
		{
			name: "structured feed pay wins over text",
			raw: events.RawJobPosting{
				ID:           "103",
				EmployerSlug: "cleveland-clinic",
				Title:        "Nurse Manager",
				Description:  "Pay: $40/hour",
				PayMin:       ptr(98000),
				PayMax:       ptr(125000),
				PayUnit:      "annual",
			},
			wantPay:  "$98,000 - $125,000/year",
			wantOK:   true,
			wantType: "annual",
		},
		{
			name: "structured single bound fills both",
			raw: events.RawJobPosting{
				ID:           "104",
				EmployerSlug: "cleveland-clinic",
				Title:        "Per Diem RN",
				PayMax:       ptr(55),
				PayUnit:      "hr",
			},
			wantPay:  "$55/hour",
			wantOK:   true,
			wantType: "hourly",
		},
		{
			name: "implausible structured pay falls back to text",
			raw: events.RawJobPosting{
				ID:           "105",
				EmployerSlug: "cleveland-clinic",
				Title:        "RN",
				Description:  "No pay listed here.",
				PayMin:       ptr(5),
				PayUnit:      "hourly",
			},
			wantOK: false,
		},
	}

	p := NewParser(salary.NewExtractor())
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			posting, err := p.ParseJobPosting(marshal(t, tc.raw))
			require.NoError(t, err)

			pay, ok := posting.PayLine()
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantPay, pay)
			if !tc.wantOK {
				assert.Nil(t, posting.SalaryType)
				assert.Nil(t, posting.SalaryMin)
				assert.Nil(t, posting.SalaryMinAnnual)
				return
			}
			require.NotNil(t, posting.SalaryType)
			assert.Equal(t, tc.wantType, *posting.SalaryType)
			assert.NotNil(t, posting.SalaryMinHourly)
			assert.NotNil(t, posting.SalaryMaxAnnual)
		})
	}
}

func TestParser_ParseJobPosting_Facets(t *testing.T) {
	posted := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	raw := events.RawJobPosting{
		ID:           "201",
		EmployerSlug: "ohio-health",
		EmployerName: " OhioHealth ",
		Title:        "New Grad RN - Med Surg (Per Diem)",
		Description:  "<p>$5,000 sign-on bonus for eligible hires.</p>",
		State:        "oh",
		City:         "Columbus",
		URL:          "https://careers.example.org/jobs/201",
		PostedAt:     posted,
	}

	p := NewParser(salary.NewExtractor())
	posting, err := p.ParseJobPosting(marshal(t, raw))
	require.NoError(t, err)

	assert.Equal(t, "201", posting.SourceID)
	assert.Equal(t, "OhioHealth", posting.EmployerName)
	assert.Equal(t, "OH", posting.State)
	assert.Equal(t, "Columbus", posting.City)
	assert.Equal(t, "med-surg", posting.Specialty)
	assert.Equal(t, "new-grad", posting.ExperienceLevel)
	assert.Equal(t, "per-diem", posting.JobType)
	assert.True(t, posting.SignOnBonus)
	assert.False(t, posting.Remote)
	assert.Equal(t, "$5,000 sign-on bonus for eligible hires.", posting.Description)
	assert.Equal(t, "employer-feed", posting.Source)
	assert.Equal(t, raw.URL, posting.SourceURL)
	assert.Equal(t, posted, posting.PostedAt)
	assert.False(t, posting.HasSalaryType())

	again, err := p.ParseJobPosting(marshal(t, raw))
	require.NoError(t, err)
	assert.Equal(t, posting.ID, again.ID)

	raw.EmployerSlug = "mercy-health"
	other, err := p.ParseJobPosting(marshal(t, raw))
	require.NoError(t, err)
	assert.NotEqual(t, posting.ID, other.ID)
}

func TestParser_ParseJobPosting_Remote(t *testing.T) {
	p := NewParser(salary.NewExtractor())
	posting, err := p.ParseJobPosting(marshal(t, events.RawJobPosting{
		ID:           "301",
		EmployerSlug: "carelink",
		Title:        "Telehealth Triage RN (Remote)",
		Specialty:    "Telehealth Triage",
	}))
	require.NoError(t, err)
	assert.True(t, posting.Remote)
	assert.Equal(t, "telehealth-triage", posting.Specialty)
	assert.Equal(t, "full-time", posting.JobType)
	assert.Equal(t, "not-specified", posting.ExperienceLevel)
	assert.False(t, posting.PostedAt.IsZero())
}

func TestParser_ParseJobPosting_Invalid(t *testing.T) {
	p := NewParser(salary.NewExtractor())

	_, err := p.ParseJobPosting([]byte("{not json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTypeInvalidInput))

	_, err = p.ParseJobPosting(marshal(t, events.RawJobPosting{ID: "1"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTypeInvalidInput))
}

func TestExtractSpecialty(t *testing.T) {
	testCases := []struct {
		title     string
		specialty string
		want      string
	}{
		{title: "Nurse Educator - Curriculum", want: "general"},
		{title: "Clinical Nurse Manager, Operations", want: "general"},
		{title: "ICU Registered Nurse", want: "icu"},
		{title: "RN - NICU Nights", want: "nicu"},
		{title: "Staff Nurse ER", want: "emergency"},
		{title: "Pediatric RN", want: "pediatrics"},
		{title: "Psychiatric Nurse", want: "behavioral-health"},
		{title: "L&D Nurse", want: "labor-delivery"},
		{title: "Medical-Surgical RN", want: "med-surg"},
		{title: "RN", specialty: "Cardiac Step Down", want: "cardiac-step-down"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, extractSpecialty(tc.specialty, tc.title))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	in := "Line one   \r\nLine two\n\n\n\nLine three\n"
	assert.Equal(t, "Line one\nLine two\n\nLine three", normalizeText(in))
}
