// Package events holds the NATS subjects and payloads shared between services.
package events

import "time"

const (
	JobPostingsSubject      = "jobs.new"
	SalaryBackfilledSubject = "jobs.salary.backfilled"

	ProcessingQueue = "processing-service"
)

// RawJobPosting is one posting as read from an employer feed, before parsing.
type RawJobPosting struct {
	ID           string    `json:"id"`
	EmployerSlug string    `json:"employer_slug"`
	EmployerName string    `json:"employer_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	State        string    `json:"state"`
	City         string    `json:"city"`
	Specialty    string    `json:"specialty"`
	Experience   string    `json:"experience"`
	JobType      string    `json:"job_type"`
	Remote       bool      `json:"remote"`
	URL          string    `json:"url"`
	PostedAt     time.Time `json:"posted_at"`

	// Structured pay, when the feed provides it.
	PayMin  *float64 `json:"pay_min,omitempty"`
	PayMax  *float64 `json:"pay_max,omitempty"`
	PayUnit string   `json:"pay_unit,omitempty"`
}

type SalaryBackfilled struct {
	EmployerSlug string    `json:"employer_slug"`
	Updated      int       `json:"updated"`
	CompletedAt  time.Time `json:"completed_at"`
}
