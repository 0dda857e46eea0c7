package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler drops cached listing pages once a backfill has changed stored
// salaries, so cards pick up the new pay lines.
type Handler struct {
	logger *zap.Logger
	nc     *nats.Conn
	cache  cache.Cache
	sub    *nats.Subscription
}

func NewHandler(logger *zap.Logger, nc *nats.Conn, c cache.Cache) *Handler {
	return &Handler{
		logger: logger,
		nc:     nc,
		cache:  c,
	}
}

func (h *Handler) RegisterSubscriptions(lc fx.Lifecycle) error {
	sub, err := h.nc.Subscribe(events.SalaryBackfilledSubject, h.handleMsg)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", events.SalaryBackfilledSubject, err)
	}
	h.sub = sub
	h.logger.Info("Registered NATS subscriptions", zap.String("subject", events.SalaryBackfilledSubject))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.sub.Unsubscribe()
		},
	})
	return nil
}

func (h *Handler) handleMsg(msg *nats.Msg) {
	h.HandleSalaryBackfilled(context.Background(), msg.Data)
}

func (h *Handler) HandleSalaryBackfilled(ctx context.Context, data []byte) {
	var event events.SalaryBackfilled
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Warn("malformed backfill event, clearing cache anyway", zap.Error(err))
	}

	if err := h.cache.Clear(ctx); err != nil {
		h.logger.Error("failed to clear listing cache",
			zap.String("employer", event.EmployerSlug),
			zap.Error(err))
		return
	}
	h.logger.Info("cleared listing cache after salary backfill",
		zap.String("employer", event.EmployerSlug),
		zap.Int("updated", event.Updated))
}
