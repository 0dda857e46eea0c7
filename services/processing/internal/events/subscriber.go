package events

import (
	"context"
	"fmt"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/processing/internal/processor"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Handler struct {
	logger       *zap.Logger
	nc           *nats.Conn
	tracer       trace.Tracer
	jobProcessor *processor.JobProcessor
	sub          *nats.Subscription
}

func NewHandler(logger *zap.Logger, nc *nats.Conn, tracer trace.Tracer, jobProcessor *processor.JobProcessor) *Handler {
	return &Handler{
		logger:       logger,
		nc:           nc,
		tracer:       tracer,
		jobProcessor: jobProcessor,
	}
}

func (h *Handler) RegisterSubscriptions(lc fx.Lifecycle) error {
	sub, err := h.nc.QueueSubscribe(events.JobPostingsSubject, events.ProcessingQueue, h.handleJobPosting)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", events.JobPostingsSubject, err)
	}

	h.sub = sub
	h.logger.Info("Registered NATS subscriptions",
		zap.String("subject", events.JobPostingsSubject),
		zap.String("queue", events.ProcessingQueue))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.sub.Drain()
		},
	})

	return nil
}

func (h *Handler) handleJobPosting(msg *nats.Msg) {
	ctx, span := h.tracer.Start(context.Background(), "handleJobPosting")
	defer span.End()

	posting, err := h.jobProcessor.ProcessJobPosting(ctx, msg.Data)
	if err != nil {
		h.logger.Error("Failed to process job posting",
			zap.Error(err),
			zap.String("subject", msg.Subject),
		)
		return
	}

	h.logger.Info("Successfully processed job posting",
		zap.String("subject", msg.Subject),
		zap.String("id", posting.ID),
		zap.Bool("has_salary", posting.HasSalaryType()),
	)
}
