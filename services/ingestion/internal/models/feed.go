package models

import (
	"strings"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"
)

// FeedResponse is the body of GET /employers/{slug}/jobs.
type FeedResponse struct {
	Employer FeedEmployer `json:"employer"`
	Jobs     []FeedJob    `json:"jobs"`
}

type FeedEmployer struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type FeedJob struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Location       FeedLocation `json:"location"`
	Specialty      string       `json:"specialty"`
	Experience     string       `json:"experience"`
	EmploymentType string       `json:"employment_type"`
	Remote         bool         `json:"remote"`
	URL            string       `json:"url"`
	PostedAt       time.Time    `json:"posted_at"`
	Pay            *FeedPay     `json:"pay,omitempty"`
}

type FeedLocation struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type FeedPay struct {
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Unit string   `json:"unit"`
}

// ToRawJobPosting flattens a feed job into the message published on jobs.new.
// The requested slug wins over whatever the feed reports about itself.
func (j FeedJob) ToRawJobPosting(slug string, employer FeedEmployer) *events.RawJobPosting {
	raw := &events.RawJobPosting{
		ID:           strings.TrimSpace(j.ID),
		EmployerSlug: slug,
		EmployerName: employer.Name,
		Title:        j.Title,
		Description:  j.Description,
		State:        j.Location.State,
		City:         j.Location.City,
		Specialty:    j.Specialty,
		Experience:   j.Experience,
		JobType:      j.EmploymentType,
		Remote:       j.Remote,
		URL:          j.URL,
		PostedAt:     j.PostedAt,
	}
	if j.Pay != nil {
		raw.PayMin = j.Pay.Min
		raw.PayMax = j.Pay.Max
		raw.PayUnit = j.Pay.Unit
	}
	return raw
}
