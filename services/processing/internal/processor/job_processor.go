package processor

import (
	"context"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/errors"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/models"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/repository"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/telemetry"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/processing/internal/config"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/processing/internal/parser"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type JobProcessor struct {
	logger *zap.Logger
	repo   repository.JobRepository
	parser *parser.Parser
	tracer trace.Tracer
	config *config.Config
}

func NewJobProcessor(logger *zap.Logger, repo repository.JobRepository, p *parser.Parser, config *config.Config) *JobProcessor {
	tracer := telemetry.GetTracer("nursingjobs/processing/processor")
	return &JobProcessor{
		logger: logger,
		repo:   repo,
		parser: p,
		tracer: tracer,
		config: config,
	}
}

// ProcessJobPosting parses one raw feed message and stores the resulting
// posting, salary fields included when the pay could be classified.
func (p *JobProcessor) ProcessJobPosting(ctx context.Context, rawData []byte) (*models.JobPosting, error) {
	ctx, span := p.tracer.Start(ctx, "ProcessJobPosting")
	defer span.End()

	if p.config.ProcessingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.ProcessingTimeout)
		defer cancel()
	}

	posting, err := p.parser.ParseJobPosting(rawData)
	if err != nil {
		span.RecordError(err)
		p.logger.Error("Failed to parse job posting", zap.Error(err))
		return nil, err
	}

	span.SetAttributes(
		telemetry.String("job.id", posting.ID),
		telemetry.String("job.employer", posting.EmployerSlug),
		telemetry.Bool("job.has_salary", posting.HasSalaryType()),
	)

	if err := p.repo.Save(ctx, posting); err != nil {
		span.RecordError(err)
		p.logger.Error("Failed to store job posting",
			zap.String("id", posting.ID),
			zap.Error(err))
		if errors.TypeOf(err) == errors.ErrTypeInternal {
			return nil, errors.Storage("store job posting", err)
		}
		return nil, err
	}

	fields := []zap.Field{
		zap.String("id", posting.ID),
		zap.String("employer", posting.EmployerSlug),
	}
	if pay, ok := posting.PayLine(); ok {
		fields = append(fields, zap.String("pay", pay))
	} else {
		fields = append(fields, zap.Bool("pay_classified", false))
	}
	p.logger.Debug("Stored job posting", fields...)

	return posting, nil
}
