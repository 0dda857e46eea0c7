package parser

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/errors"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/models"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/salary"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

const source = "employer-feed"

var (
	remotePattern      = regexp.MustCompile(`(?i)\b(remote|telehealth|work[- ]from[- ]home)\b`)
	signOnBonusPattern = regexp.MustCompile(`(?i)\bsign[- ]?on bonus\b`)
	statePattern       = regexp.MustCompile(`^[A-Za-z]{2}$`)

	blankLinesPattern = regexp.MustCompile(`\n{3,}`)
	trailingSpace     = regexp.MustCompile(`[ \t]+\n`)
	slugPattern       = regexp.MustCompile(`[^a-z0-9]+`)

	newGradPattern     = regexp.MustCompile(`(?i)\bnew[- ]grad(uate)?s?\b|\bresidency\b|\bgraduate nurse\b`)
	leadershipPattern  = regexp.MustCompile(`(?i)\b(director|manager|supervisor)\b`)
	seniorPattern      = regexp.MustCompile(`(?i)\b(senior|sr|charge nurse|lead)\b`)
	experiencedPattern = regexp.MustCompile(`(?i)\b(experienced|mid[- ]level|\d+\+? years?)\b`)
)

// specialtyPatterns maps title keywords to specialty slugs, most specific first.
var specialtyPatterns = []struct {
	pattern *regexp.Regexp
	slug    string
}{
	{regexp.MustCompile(`(?i)\bnicu\b`), "nicu"},
	{regexp.MustCompile(`(?i)\bpicu\b`), "picu"},
	{regexp.MustCompile(`(?i)\bicu\b|\bintensive care\b`), "icu"},
	{regexp.MustCompile(`(?i)\bemergency\b|\ber\b`), "emergency"},
	{regexp.MustCompile(`(?i)\bmed[- ]surg\b|\bmedical[- ]surgical\b`), "med-surg"},
	{regexp.MustCompile(`(?i)\blabor (?:and|&) delivery\b|\bl&d\b`), "labor-delivery"},
	{regexp.MustCompile(`(?i)\boperating room\b`), "operating-room"},
	{regexp.MustCompile(`(?i)\bpediatrics?\b`), "pediatrics"},
	{regexp.MustCompile(`(?i)\boncology\b`), "oncology"},
	{regexp.MustCompile(`(?i)\btelemetry\b`), "telemetry"},
	{regexp.MustCompile(`(?i)\bpsych\w*|\bbehavioral\b`), "behavioral-health"},
	{regexp.MustCompile(`(?i)\bhome health\b`), "home-health"},
	{regexp.MustCompile(`(?i)\bhospice\b`), "hospice"},
	{regexp.MustCompile(`(?i)\bdialysis\b`), "dialysis"},
	{regexp.MustCompile(`(?i)\bcath lab\b`), "cath-lab"},
}

var jobTypeAliases = map[string]string{
	"full-time": "full-time",
	"full time": "full-time",
	"fulltime":  "full-time",
	"part-time": "part-time",
	"part time": "part-time",
	"per diem":  "per-diem",
	"per-diem":  "per-diem",
	"prn":       "per-diem",
	"travel":    "travel",
	"contract":  "contract",
}

func generateUUIDFromID(id string) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	uuid := uuid.NewSHA1(namespace, []byte(id))
	return uuid.String()
}

type Parser struct {
	extractor *salary.Extractor
}

func NewParser(extractor *salary.Extractor) *Parser {
	return &Parser{extractor: extractor}
}

// ParseJobPosting turns a raw feed posting into a job record, classifying its
// pay either from the feed's structured fields or from the description text.
func (p *Parser) ParseJobPosting(rawData []byte) (*models.JobPosting, error) {
	var raw events.RawJobPosting
	if err := json.Unmarshal(rawData, &raw); err != nil {
		return nil, errors.InvalidInput("decode raw job posting", err)
	}
	if raw.ID == "" || raw.EmployerSlug == "" {
		return nil, errors.InvalidInput("raw job posting needs id and employer_slug", nil)
	}

	description := normalizeText(htmlToText(raw.Description))
	title := strings.TrimSpace(raw.Title)

	posting := &models.JobPosting{
		ID:              generateUUIDFromID(raw.EmployerSlug + ":" + raw.ID),
		SourceID:        raw.ID,
		Title:           title,
		EmployerSlug:    raw.EmployerSlug,
		EmployerName:    strings.TrimSpace(raw.EmployerName),
		State:           normalizeState(raw.State),
		City:            strings.TrimSpace(raw.City),
		Specialty:       extractSpecialty(raw.Specialty, title),
		ExperienceLevel: extractExperienceLevel(raw.Experience, title),
		JobType:         extractJobType(raw.JobType, title),
		Remote:          raw.Remote || remotePattern.MatchString(title),
		SignOnBonus:     signOnBonusPattern.MatchString(title + "\n" + description),
		Description:     description,
		Source:          source,
		SourceURL:       raw.URL,
		PostedAt:        raw.PostedAt,
		RawData:         string(rawData),
	}
	if posting.PostedAt.IsZero() {
		posting.PostedAt = time.Now().UTC()
	}

	if s, ok := p.classifySalary(raw, description); ok {
		posting.SetSalary(s)
	}

	return posting, nil
}

func (p *Parser) classifySalary(raw events.RawJobPosting, description string) (salary.Salary, bool) {
	if unit, ok := payUnit(raw.PayUnit); ok && (raw.PayMin != nil || raw.PayMax != nil) {
		min, max := raw.PayMin, raw.PayMax
		if min == nil {
			min = max
		}
		if max == nil {
			max = min
		}
		if s, ok := p.extractor.Normalize(*min, *max, unit); ok {
			return s, true
		}
	}
	return p.extractor.Extract(description)
}

func payUnit(unit string) (salary.Type, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "hour", "hourly", "hr":
		return salary.Hourly, true
	case "year", "yearly", "annual", "annually", "yr":
		return salary.Annual, true
	}
	return "", false
}

// htmlToText keeps line structure so that headings and list items survive as
// markdown-like lines.
func htmlToText(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("h1").PrependHtml("# ")
	doc.Find("h2").PrependHtml("## ")
	doc.Find("h3").PrependHtml("### ")
	doc.Find("li").PrependHtml("- ")
	doc.Find("p, div, li, tr, h1, h2, h3, h4, h5, h6").AppendHtml("\n")

	return doc.Text()
}

func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = trailingSpace.ReplaceAllString(text, "\n")
	text = blankLinesPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func normalizeState(state string) string {
	state = strings.TrimSpace(state)
	if statePattern.MatchString(state) {
		return strings.ToUpper(state)
	}
	return state
}

func slugify(s string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func extractSpecialty(specialty, title string) string {
	if specialty = slugify(specialty); specialty != "" {
		return specialty
	}
	for _, p := range specialtyPatterns {
		if p.pattern.MatchString(title) {
			return p.slug
		}
	}
	return "general"
}

func extractJobType(jobType, title string) string {
	if t, ok := jobTypeAliases[strings.ToLower(strings.TrimSpace(jobType))]; ok {
		return t
	}
	lower := strings.ToLower(title)
	for _, alias := range []string{"travel", "per diem", "prn", "part-time", "part time", "contract", "full-time", "full time"} {
		if strings.Contains(lower, alias) {
			return jobTypeAliases[alias]
		}
	}
	return "full-time"
}

func extractExperienceLevel(experience, title string) string {
	for _, candidate := range []string{experience, title} {
		switch {
		case newGradPattern.MatchString(candidate):
			return "new-grad"
		case leadershipPattern.MatchString(candidate):
			return "leadership"
		case seniorPattern.MatchString(candidate):
			return "senior"
		case experiencedPattern.MatchString(candidate):
			return "experienced"
		}
	}
	return "not-specified"
}
