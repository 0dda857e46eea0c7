package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/errors"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/telemetry"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/ingestion/internal/config"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/ingestion/internal/models"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("nursingjobs/ingestion/api")

type FeedClient interface {
	GetEmployerJobs(ctx context.Context, slug string) (*models.FeedResponse, error)
}

type feedClient struct {
	client *http.Client
	logger *zap.Logger
	config *config.Config
}

func NewFeedClient(logger *zap.Logger, config *config.Config) FeedClient {
	return &feedClient{
		client: &http.Client{
			Timeout: config.FeedTimeout,
		},
		logger: logger,
		config: config,
	}
}

// GetEmployerJobs fetches one employer's feed, retrying transport errors and
// 5xx responses up to MaxRetries times.
func (c *feedClient) GetEmployerJobs(ctx context.Context, slug string) (*models.FeedResponse, error) {
	ctx, span := tracer.Start(ctx, "GetEmployerJobs")
	defer span.End()

	endpoint := fmt.Sprintf("%s/employers/%s/jobs", strings.TrimRight(c.config.FeedBaseURL, "/"), url.PathEscape(slug))
	span.SetAttributes(
		telemetry.String("employer", slug),
		telemetry.String("http.url", endpoint),
	)

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying employer feed",
				zap.String("employer", slug),
				zap.Int("attempt", attempt),
				zap.Error(lastErr))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.config.RetryDelay):
			}
		}

		feed, err := c.fetch(ctx, slug, endpoint)
		if err == nil {
			span.SetAttributes(telemetry.Int("jobs.count", len(feed.Jobs)))
			return feed, nil
		}
		lastErr = err
		if !errors.Is(err, errors.ErrTypeUnavailable) {
			break
		}
	}

	span.RecordError(lastErr)
	return nil, lastErr
}

func (c *feedClient) fetch(ctx context.Context, slug, endpoint string) (*models.FeedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Internal("creating request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("failed to execute request", zap.String("employer", slug), zap.Error(err))
		return nil, errors.Unavailable("executing request", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.logger.Warn("employer feed not found", zap.String("employer", slug))
		return nil, errors.NotFound(fmt.Sprintf("employer feed %s", slug), nil)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errors.Unavailable(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("unexpected status code",
			zap.String("employer", slug),
			zap.Int("status_code", resp.StatusCode))
		return nil, errors.Internal(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	var feed models.FeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		c.logger.Error("failed to decode response", zap.String("employer", slug), zap.Error(err))
		return nil, errors.InvalidInput("decoding employer feed", err)
	}

	c.logger.Debug("fetched employer feed",
		zap.String("employer", slug),
		zap.Int("jobs", len(feed.Jobs)))
	return &feed, nil
}
