package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/errors"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/models"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/telemetry"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=./job_repository.go -destination=./mocks/job_repository.mock.go -package=repomocks JobRepository

var tracer = telemetry.GetTracer("nursingjobs/common/repository")

type JobRepository interface {
	// Save writes the whole row as a new version; readers see either the old or
	// the new row, never a mix.
	Save(ctx context.Context, posting *models.JobPosting) error
	FindByID(ctx context.Context, id string) (*models.JobPosting, error)
	// FindMissingSalary returns postings without a salary type. An empty
	// employerSlug means every employer.
	FindMissingSalary(ctx context.Context, employerSlug string) ([]models.JobPosting, error)
	List(ctx context.Context, filter Filter) ([]models.JobPosting, error)
	Count(ctx context.Context, filter Filter) (uint64, error)
	ListEmployers(ctx context.Context) ([]models.Employer, error)
}

const jobColumns = `id, source_id, title, employer_slug, employer_name, state, city,
	specialty, experience_level, job_type, remote, sign_on_bonus, description,
	salary_min, salary_max, salary_type, salary_min_hourly, salary_max_hourly,
	salary_min_annual, salary_max_annual, source, source_url, posted_at,
	created_at, updated_at, raw_data`

type jobRow struct {
	ID              string    `ch:"id"`
	SourceID        string    `ch:"source_id"`
	Title           string    `ch:"title"`
	EmployerSlug    string    `ch:"employer_slug"`
	EmployerName    string    `ch:"employer_name"`
	State           string    `ch:"state"`
	City            string    `ch:"city"`
	Specialty       string    `ch:"specialty"`
	ExperienceLevel string    `ch:"experience_level"`
	JobType         string    `ch:"job_type"`
	Remote          bool      `ch:"remote"`
	SignOnBonus     bool      `ch:"sign_on_bonus"`
	Description     string    `ch:"description"`
	SalaryMin       *float64  `ch:"salary_min"`
	SalaryMax       *float64  `ch:"salary_max"`
	SalaryType      *string   `ch:"salary_type"`
	SalaryMinHourly *float64  `ch:"salary_min_hourly"`
	SalaryMaxHourly *float64  `ch:"salary_max_hourly"`
	SalaryMinAnnual *float64  `ch:"salary_min_annual"`
	SalaryMaxAnnual *float64  `ch:"salary_max_annual"`
	Source          string    `ch:"source"`
	SourceURL       string    `ch:"source_url"`
	PostedAt        time.Time `ch:"posted_at"`
	CreatedAt       time.Time `ch:"created_at"`
	UpdatedAt       time.Time `ch:"updated_at"`
	RawData         string    `ch:"raw_data"`
}

func (r jobRow) toModel() models.JobPosting {
	return models.JobPosting{
		ID:              r.ID,
		SourceID:        r.SourceID,
		Title:           r.Title,
		EmployerSlug:    r.EmployerSlug,
		EmployerName:    r.EmployerName,
		State:           r.State,
		City:            r.City,
		Specialty:       r.Specialty,
		ExperienceLevel: r.ExperienceLevel,
		JobType:         r.JobType,
		Remote:          r.Remote,
		SignOnBonus:     r.SignOnBonus,
		Description:     r.Description,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		SalaryType:      r.SalaryType,
		SalaryMinHourly: r.SalaryMinHourly,
		SalaryMaxHourly: r.SalaryMaxHourly,
		SalaryMinAnnual: r.SalaryMinAnnual,
		SalaryMaxAnnual: r.SalaryMaxAnnual,
		Source:          r.Source,
		SourceURL:       r.SourceURL,
		PostedAt:        r.PostedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		RawData:         r.RawData,
	}
}

type employerRow struct {
	Slug     string `ch:"employer_slug"`
	Name     string `ch:"employer_name"`
	JobCount uint64 `ch:"job_count"`
}

type clickHouseJobRepository struct {
	conn   clickhouse.Conn
	logger *zap.Logger
}

func NewJobRepository(conn clickhouse.Conn, logger *zap.Logger) JobRepository {
	return &clickHouseJobRepository{
		conn:   conn,
		logger: logger,
	}
}

func (r *clickHouseJobRepository) Save(ctx context.Context, posting *models.JobPosting) error {
	ctx, span := tracer.Start(ctx, "JobRepository.Save")
	defer span.End()

	now := time.Now().UTC()
	if posting.CreatedAt.IsZero() {
		posting.CreatedAt = now
	}
	posting.UpdatedAt = now

	query := `INSERT INTO jobs (` + jobColumns + `) VALUES (
		?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
		?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
	)`

	if err := r.conn.Exec(ctx, query,
		posting.ID,
		posting.SourceID,
		posting.Title,
		posting.EmployerSlug,
		posting.EmployerName,
		posting.State,
		posting.City,
		posting.Specialty,
		posting.ExperienceLevel,
		posting.JobType,
		posting.Remote,
		posting.SignOnBonus,
		posting.Description,
		posting.SalaryMin,
		posting.SalaryMax,
		posting.SalaryType,
		posting.SalaryMinHourly,
		posting.SalaryMaxHourly,
		posting.SalaryMinAnnual,
		posting.SalaryMaxAnnual,
		posting.Source,
		posting.SourceURL,
		posting.PostedAt,
		posting.CreatedAt,
		posting.UpdatedAt,
		posting.RawData,
	); err != nil {
		span.RecordError(err)
		return errors.Storage("insert job posting", err)
	}

	return nil
}

func (r *clickHouseJobRepository) FindByID(ctx context.Context, id string) (*models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "JobRepository.FindByID")
	defer span.End()

	var rows []jobRow
	query := `SELECT ` + jobColumns + ` FROM jobs FINAL WHERE id = ? LIMIT 1`
	if err := r.conn.Select(ctx, &rows, query, id); err != nil {
		span.RecordError(err)
		return nil, errors.Storage("select job posting", err)
	}
	if len(rows) == 0 {
		return nil, errors.NotFound(fmt.Sprintf("job %s", id), nil)
	}

	posting := rows[0].toModel()
	return &posting, nil
}

func (r *clickHouseJobRepository) FindMissingSalary(ctx context.Context, employerSlug string) ([]models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "JobRepository.FindMissingSalary")
	span.SetAttributes(telemetry.String("employer", employerSlug))
	defer span.End()

	query := `SELECT ` + jobColumns + ` FROM jobs FINAL WHERE salary_type IS NULL`
	var args []any
	if employerSlug != "" {
		query += ` AND employer_slug = ?`
		args = append(args, employerSlug)
	}
	query += ` ORDER BY employer_slug, created_at`

	var rows []jobRow
	if err := r.conn.Select(ctx, &rows, query, args...); err != nil {
		span.RecordError(err)
		return nil, errors.Storage("select postings missing salary", err)
	}

	r.logger.Debug("loaded postings missing salary",
		zap.String("employer", employerSlug),
		zap.Int("count", len(rows)))

	return toModels(rows), nil
}

func (r *clickHouseJobRepository) List(ctx context.Context, filter Filter) ([]models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "JobRepository.List")
	defer span.End()

	where, args := filter.Where()
	query := `SELECT ` + jobColumns + ` FROM jobs FINAL` + where +
		` ORDER BY posted_at DESC, id LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	var rows []jobRow
	if err := r.conn.Select(ctx, &rows, query, args...); err != nil {
		span.RecordError(err)
		return nil, errors.Storage("list job postings", err)
	}
	return toModels(rows), nil
}

func (r *clickHouseJobRepository) Count(ctx context.Context, filter Filter) (uint64, error) {
	ctx, span := tracer.Start(ctx, "JobRepository.Count")
	defer span.End()

	where, args := filter.Where()
	var count uint64
	if err := r.conn.QueryRow(ctx, `SELECT count() FROM jobs FINAL`+where, args...).Scan(&count); err != nil {
		span.RecordError(err)
		return 0, errors.Storage("count job postings", err)
	}
	return count, nil
}

func (r *clickHouseJobRepository) ListEmployers(ctx context.Context) ([]models.Employer, error) {
	ctx, span := tracer.Start(ctx, "JobRepository.ListEmployers")
	defer span.End()

	query := `
		SELECT employer_slug, any(employer_name) AS employer_name, count() AS job_count
		FROM jobs FINAL
		GROUP BY employer_slug
		ORDER BY employer_slug
	`
	var rows []employerRow
	if err := r.conn.Select(ctx, &rows, query); err != nil {
		span.RecordError(err)
		return nil, errors.Storage("list employers", err)
	}

	employers := make([]models.Employer, 0, len(rows))
	for _, row := range rows {
		employers = append(employers, models.Employer{
			Slug:     row.Slug,
			Name:     row.Name,
			JobCount: row.JobCount,
		})
	}
	return employers, nil
}

func toModels(rows []jobRow) []models.JobPosting {
	postings := make([]models.JobPosting, 0, len(rows))
	for _, row := range rows {
		postings = append(postings, row.toModel())
	}
	return postings
}

// Filter narrows job listings by facet. Empty strings and nil flags do not
// constrain the result.
type Filter struct {
	State           string
	City            string
	Specialty       string
	ExperienceLevel string
	EmployerSlug    string
	JobType         string
	Remote          *bool
	SignOnBonus     *bool

	Limit  int
	Offset int
}

// Where renders the filter as a WHERE clause (with leading space) and its
// positional arguments. Paging is not part of the clause.
func (f Filter) Where() (string, []any) {
	var conds []string
	var args []any

	eq := func(column, value string) {
		if value == "" {
			return
		}
		conds = append(conds, column+" = ?")
		args = append(args, value)
	}
	eq("state", strings.ToUpper(f.State))
	eq("lower(city)", strings.ToLower(f.City))
	eq("specialty", f.Specialty)
	eq("experience_level", f.ExperienceLevel)
	eq("employer_slug", f.EmployerSlug)
	eq("job_type", f.JobType)

	if f.Remote != nil {
		conds = append(conds, "remote = ?")
		args = append(args, *f.Remote)
	}
	if f.SignOnBonus != nil {
		conds = append(conds, "sign_on_bonus = ?")
		args = append(args, *f.SignOnBonus)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// CacheKey identifies the filtered page in the listings cache.
func (f Filter) CacheKey() string {
	flag := func(b *bool) string {
		if b == nil {
			return "-"
		}
		return fmt.Sprintf("%t", *b)
	}
	return fmt.Sprintf("jobs:%s:%s:%s:%s:%s:%s:%s:%s:%d:%d",
		strings.ToUpper(f.State), strings.ToLower(f.City), f.Specialty, f.ExperienceLevel,
		f.EmployerSlug, f.JobType, flag(f.Remote), flag(f.SignOnBonus), f.Limit, f.Offset)
}
