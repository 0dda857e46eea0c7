package scheduler

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"

	"go.uber.org/zap"
)

const seenKeyPrefix = "ingestion:seen:"

type feedProcessor struct {
	scheduler *JobScheduler
	logger    *zap.Logger
}

func newFeedProcessor(scheduler *JobScheduler, logger *zap.Logger) *feedProcessor {
	return &feedProcessor{
		scheduler: scheduler,
		logger:    logger,
	}
}

func seenKey(employer, id string) string {
	return seenKeyPrefix + employer + ":" + id
}

func (p *feedProcessor) processEmployer(ctx context.Context, slug string, stats *PollStats, postingChan chan<- *events.RawJobPosting) {
	feed, err := p.scheduler.feedClient.GetEmployerJobs(ctx, slug)
	if err != nil {
		atomic.AddInt32(&stats.EmployersFailed, 1)
		p.logger.Error("failed to fetch employer feed", zap.String("employer", slug), zap.Error(err))
		return
	}
	atomic.AddInt32(&stats.EmployersPolled, 1)

	for _, job := range feed.Jobs {
		posting := job.ToRawJobPosting(slug, feed.Employer)
		if posting.ID == "" {
			p.logger.Warn("skipping feed job without id",
				zap.String("employer", slug),
				zap.String("title", job.Title))
			continue
		}
		atomic.AddInt32(&stats.PostingsSeen, 1)
		select {
		case postingChan <- posting:
		case <-ctx.Done():
			return
		}
	}
}

// publishPosting publishes a posting unless it was already published within
// the seen TTL. Cache errors do not block publishing.
func (p *feedProcessor) publishPosting(ctx context.Context, posting *events.RawJobPosting, stats *PollStats) {
	key := seenKey(posting.EmployerSlug, posting.ID)

	var marker string
	err := p.scheduler.seen.Get(ctx, key, &marker)
	switch {
	case err == nil:
		atomic.AddInt32(&stats.Duplicates, 1)
		return
	case !errors.Is(err, cache.ErrNotFound):
		p.logger.Warn("seen-set lookup failed", zap.String("key", key), zap.Error(err))
	}

	if err := p.scheduler.publisher.PublishJobPosting(ctx, posting); err != nil {
		atomic.AddInt32(&stats.PublishFailed, 1)
		p.logger.Error("failed to publish job posting",
			zap.String("employer", posting.EmployerSlug),
			zap.String("id", posting.ID),
			zap.Error(err))
		return
	}
	atomic.AddInt32(&stats.Published, 1)

	if err := p.scheduler.seen.Set(ctx, key, "1", p.scheduler.config.SeenTTL); err != nil {
		p.logger.Warn("failed to mark posting as seen", zap.String("key", key), zap.Error(err))
	}
}

func (p *feedProcessor) feedEmployers(ctx context.Context, employers []string, employerChan chan<- string) {
	defer close(employerChan)
	for _, slug := range employers {
		select {
		case employerChan <- slug:
		case <-ctx.Done():
			return
		}
	}
}
