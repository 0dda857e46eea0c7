package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/errors"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/telemetry"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/ingestion/internal/config"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("nursingjobs/ingestion/messaging")

type Publisher interface {
	PublishJobPosting(ctx context.Context, posting *events.RawJobPosting) error
	Close()
}

type natsPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(logger *zap.Logger, config *config.Config) (Publisher, error) {
	opts := []nats.Option{
		nats.Name("ingestion-service"),
		nats.Timeout(config.NATSConnTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	conn, err := nats.Connect(config.NATSURL, opts...)
	if err != nil {
		return nil, errors.Unavailable("connecting to NATS", err)
	}

	return &natsPublisher{
		conn:   conn,
		logger: logger,
	}, nil
}

func (p *natsPublisher) PublishJobPosting(ctx context.Context, posting *events.RawJobPosting) error {
	_, span := tracer.Start(ctx, "PublishJobPosting")
	defer span.End()

	data, err := json.Marshal(posting)
	if err != nil {
		span.RecordError(err)
		return errors.Internal("marshaling job posting", err)
	}

	span.SetAttributes(
		telemetry.String("nats.subject", events.JobPostingsSubject),
		telemetry.Int("message.size", len(data)),
	)

	if err := p.conn.Publish(events.JobPostingsSubject, data); err != nil {
		span.RecordError(err)
		p.logger.Error("failed to publish job posting",
			zap.String("employer", posting.EmployerSlug),
			zap.String("id", posting.ID),
			zap.Error(err))
		return errors.Unavailable("publishing to NATS", err)
	}

	p.logger.Debug("published job posting",
		zap.String("employer", posting.EmployerSlug),
		zap.String("id", posting.ID),
		zap.String("subject", events.JobPostingsSubject))
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		if err := p.conn.Drain(); err != nil {
			p.conn.Close()
		}
	}
}
