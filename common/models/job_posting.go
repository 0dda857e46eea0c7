package models

import (
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/salary"
)

type JobPosting struct {
	ID              string
	SourceID        string
	Title           string
	EmployerSlug    string
	EmployerName    string
	State           string
	City            string
	Specialty       string
	ExperienceLevel string
	JobType         string
	Remote          bool
	SignOnBonus     bool
	Description     string

	SalaryMin       *float64
	SalaryMax       *float64
	SalaryType      *string
	SalaryMinHourly *float64
	SalaryMaxHourly *float64
	SalaryMinAnnual *float64
	SalaryMaxAnnual *float64

	Source    string
	SourceURL string
	PostedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	RawData   string
}

// HasSalaryType reports whether the posting already carries a salary unit.
func (p *JobPosting) HasSalaryType() bool {
	return p.SalaryType != nil && *p.SalaryType != ""
}

// SetSalary copies a normalized salary and all of its derived fields onto the
// posting. The salary fields are only ever written together.
func (p *JobPosting) SetSalary(s salary.Salary) {
	salaryType := string(s.Type)
	p.SalaryMin = &s.Min
	p.SalaryMax = &s.Max
	p.SalaryType = &salaryType
	p.SalaryMinHourly = &s.MinHourly
	p.SalaryMaxHourly = &s.MaxHourly
	p.SalaryMinAnnual = &s.MinAnnual
	p.SalaryMaxAnnual = &s.MaxAnnual
}

// PayLine is the display string for the posting's salary fields.
func (p *JobPosting) PayLine() (string, bool) {
	if p.SalaryType == nil {
		return "", false
	}
	return salary.Format(p.SalaryMin, p.SalaryMax, *p.SalaryType)
}

type Employer struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	JobCount uint64 `json:"job_count"`
}
