// Package backfill recovers salary fields for stored postings that were
// ingested without them, by running the salary extractor over their
// descriptions.
package backfill

import (
	"context"
	"sort"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/models"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/repository"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/salary"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("nursingjobs/backfill")

// Progress receives one Increment per scanned posting.
type Progress interface {
	Start(total int)
	Increment()
	Finish()
}

// Publisher announces that an employer's salary fields changed.
type Publisher interface {
	PublishSalaryBackfilled(ctx context.Context, event events.SalaryBackfilled) error
}

type Options struct {
	// Save writes matched salaries back. Without it the run only reports.
	Save bool
	// Employer limits the run to one employer slug. Empty means all.
	Employer string
}

// Counts is the per-employer tally. Matched counts every posting the
// extractor classified; in save mode each of those also lands in Updated or
// Failed.
type Counts struct {
	Employer string
	Scanned  int
	Matched  int
	Updated  int
	Failed   int
	Skipped  int
}

func (c *Counts) add(o Counts) {
	c.Scanned += o.Scanned
	c.Matched += o.Matched
	c.Updated += o.Updated
	c.Failed += o.Failed
	c.Skipped += o.Skipped
}

type Report struct {
	Save      bool
	Employer  string
	Employers []Counts
	Total     Counts
	StartedAt time.Time
	Duration  time.Duration
}

type Driver struct {
	repo      repository.JobRepository
	extractor *salary.Extractor
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// New builds a driver. publisher may be nil, in which case no events are sent.
func New(repo repository.JobRepository, extractor *salary.Extractor, publisher Publisher, logger *zap.Logger) *Driver {
	return &Driver{
		repo:      repo,
		extractor: extractor,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Run makes a single pass over postings missing a salary type. Only the
// candidate query can fail the run; per-posting write errors are counted.
func (d *Driver) Run(ctx context.Context, opts Options, progress Progress) (*Report, error) {
	ctx, span := tracer.Start(ctx, "Backfill.Run")
	defer span.End()
	span.SetAttributes(
		telemetry.Bool("backfill.save", opts.Save),
		telemetry.String("backfill.employer", opts.Employer),
	)

	started := d.now()
	postings, err := d.repo.FindMissingSalary(ctx, opts.Employer)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	d.logger.Info("loaded postings missing salary",
		zap.Int("count", len(postings)),
		zap.String("employer", opts.Employer),
		zap.Bool("save", opts.Save))

	progress.Start(len(postings))
	byEmployer := make(map[string]*Counts)
	for i := range postings {
		posting := postings[i]
		counts, ok := byEmployer[posting.EmployerSlug]
		if !ok {
			counts = &Counts{Employer: posting.EmployerSlug}
			byEmployer[posting.EmployerSlug] = counts
		}
		d.processPosting(ctx, &posting, opts.Save, counts)
		progress.Increment()
	}
	progress.Finish()

	report := &Report{
		Save:      opts.Save,
		Employer:  opts.Employer,
		StartedAt: started,
	}
	for _, counts := range byEmployer {
		report.Employers = append(report.Employers, *counts)
		report.Total.add(*counts)
	}
	sort.Slice(report.Employers, func(i, j int) bool {
		return report.Employers[i].Employer < report.Employers[j].Employer
	})
	report.Duration = d.now().Sub(started)

	span.SetAttributes(
		telemetry.Int("backfill.scanned", report.Total.Scanned),
		telemetry.Int("backfill.updated", report.Total.Updated),
	)

	if opts.Save {
		d.announce(ctx, report)
	}
	return report, nil
}

func (d *Driver) processPosting(ctx context.Context, posting *models.JobPosting, save bool, counts *Counts) {
	counts.Scanned++

	s, ok := d.extractor.Extract(posting.Description)
	if !ok {
		counts.Skipped++
		return
	}
	counts.Matched++

	if !save {
		pay, _ := salary.FormatSalary(s)
		d.logger.Debug("would update posting",
			zap.String("id", posting.ID),
			zap.String("employer", posting.EmployerSlug),
			zap.String("pay", pay))
		return
	}

	posting.SetSalary(s)
	if err := d.repo.Save(ctx, posting); err != nil {
		counts.Failed++
		d.logger.Error("failed to update posting salary",
			zap.String("id", posting.ID),
			zap.String("employer", posting.EmployerSlug),
			zap.Error(err))
		return
	}
	counts.Updated++
}

func (d *Driver) announce(ctx context.Context, report *Report) {
	if d.publisher == nil {
		return
	}
	for _, counts := range report.Employers {
		if counts.Updated == 0 {
			continue
		}
		event := events.SalaryBackfilled{
			EmployerSlug: counts.Employer,
			Updated:      counts.Updated,
			CompletedAt:  d.now().UTC(),
		}
		if err := d.publisher.PublishSalaryBackfilled(ctx, event); err != nil {
			d.logger.Warn("failed to announce backfill",
				zap.String("employer", counts.Employer),
				zap.Error(err))
		}
	}
}
