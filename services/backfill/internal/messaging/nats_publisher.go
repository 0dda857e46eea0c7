package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/errors"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/telemetry"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("nursingjobs/backfill/messaging")

type Publisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(logger *zap.Logger, url string, timeout time.Duration) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("salary-backfill"),
		nats.Timeout(timeout),
	)
	if err != nil {
		return nil, errors.Unavailable("connecting to NATS", err)
	}
	return &Publisher{conn: conn, logger: logger}, nil
}

func (p *Publisher) PublishSalaryBackfilled(ctx context.Context, event events.SalaryBackfilled) error {
	_, span := tracer.Start(ctx, "PublishSalaryBackfilled")
	defer span.End()

	data, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		return errors.Internal("marshaling backfill event", err)
	}

	if err := p.conn.Publish(events.SalaryBackfilledSubject, data); err != nil {
		span.RecordError(err)
		return errors.Unavailable("publishing to NATS", err)
	}

	p.logger.Info("announced salary backfill",
		zap.String("employer", event.EmployerSlug),
		zap.Int("updated", event.Updated),
		zap.String("subject", events.SalaryBackfilledSubject))
	return nil
}

// Close flushes pending messages before closing the connection.
func (p *Publisher) Close() {
	if err := p.conn.Flush(); err != nil {
		p.logger.Warn("failed to flush NATS connection", zap.Error(err))
	}
	p.conn.Close()
}
