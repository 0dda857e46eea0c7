package web

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/models"
)

type Employer struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// JobCard is one entry of a listing page. Pay is omitted when the posting has
// no displayable pay.
type JobCard struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Employer        Employer  `json:"employer"`
	Location        string    `json:"location"`
	State           string    `json:"state"`
	City            string    `json:"city"`
	Specialty       string    `json:"specialty"`
	ExperienceLevel string    `json:"experience_level"`
	JobType         string    `json:"job_type"`
	Remote          bool      `json:"remote"`
	SignOnBonus     bool      `json:"sign_on_bonus"`
	Pay             string    `json:"pay,omitempty"`
	PostedAt        time.Time `json:"posted_at"`
}

type Salary struct {
	Min       *float64 `json:"min"`
	Max       *float64 `json:"max"`
	Type      string   `json:"type"`
	MinHourly *float64 `json:"min_hourly,omitempty"`
	MaxHourly *float64 `json:"max_hourly,omitempty"`
	MinAnnual *float64 `json:"min_annual,omitempty"`
	MaxAnnual *float64 `json:"max_annual,omitempty"`
}

type JobDetail struct {
	JobCard
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Salary      *Salary `json:"salary,omitempty"`
}

type JobListResp struct {
	Jobs  []JobCard `json:"jobs"`
	Total uint64    `json:"total"`
	Page  int       `json:"page"`
	Size  int       `json:"size"`
}

func (r JobListResp) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

func (r *JobListResp) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, r)
}

type EmployerVO struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	JobCount uint64 `json:"job_count"`
}

func location(city, state string) string {
	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if state != "" {
		parts = append(parts, state)
	}
	return strings.Join(parts, ", ")
}

func newJobCard(p models.JobPosting, pay string) JobCard {
	return JobCard{
		ID:    p.ID,
		Title: p.Title,
		Employer: Employer{
			Slug: p.EmployerSlug,
			Name: p.EmployerName,
		},
		Location:        location(p.City, p.State),
		State:           p.State,
		City:            p.City,
		Specialty:       p.Specialty,
		ExperienceLevel: p.ExperienceLevel,
		JobType:         p.JobType,
		Remote:          p.Remote,
		SignOnBonus:     p.SignOnBonus,
		Pay:             pay,
		PostedAt:        p.PostedAt,
	}
}

func newJobDetail(p models.JobPosting, pay string) JobDetail {
	detail := JobDetail{
		JobCard:     newJobCard(p, pay),
		Description: p.Description,
		URL:         p.SourceURL,
	}
	if pay != "" {
		detail.Salary = &Salary{
			Min:       p.SalaryMin,
			Max:       p.SalaryMax,
			Type:      *p.SalaryType,
			MinHourly: p.SalaryMinHourly,
			MaxHourly: p.SalaryMaxHourly,
			MinAnnual: p.SalaryMinAnnual,
			MaxAnnual: p.SalaryMaxAnnual,
		}
	}
	return detail
}
