package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/telemetry"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/ingestion/internal/api"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/ingestion/internal/config"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/ingestion/internal/messaging"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("nursingjobs/ingestion/scheduler")

type JobScheduler struct {
	feedClient    api.FeedClient
	publisher     messaging.Publisher
	seen          cache.Cache
	logger        *zap.Logger
	config        *config.Config
	mutex         sync.Mutex
	isActive      bool
	workerManager *workerManager
	feedProcessor *feedProcessor
}

func NewJobScheduler(feedClient api.FeedClient, publisher messaging.Publisher, seen cache.Cache, logger *zap.Logger, config *config.Config) *JobScheduler {
	scheduler := &JobScheduler{
		feedClient: feedClient,
		publisher:  publisher,
		seen:       seen,
		logger:     logger,
		config:     config,
	}
	scheduler.workerManager = newWorkerManager(scheduler, logger)
	scheduler.feedProcessor = newFeedProcessor(scheduler, logger)
	return scheduler
}

func (s *JobScheduler) Start(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "JobScheduler.Start")
	defer span.End()

	s.mutex.Lock()
	if s.isActive {
		s.mutex.Unlock()
		return nil
	}
	s.isActive = true
	s.mutex.Unlock()

	ticker := time.NewTicker(s.config.PollingInterval)
	defer ticker.Stop()

	if _, err := s.Poll(ctx); err != nil {
		s.logger.Error("initial poll failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.active() {
				return nil
			}
			if _, err := s.Poll(ctx); err != nil {
				s.logger.Error("periodic poll failed", zap.Error(err))
			}
		}
	}
}

func (s *JobScheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.isActive = false
}

func (s *JobScheduler) active() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.isActive
}

// PollStats counts what one pass over the employer feeds did.
type PollStats struct {
	EmployersPolled int32
	EmployersFailed int32
	PostingsSeen    int32
	Published       int32
	Duplicates      int32
	PublishFailed   int32
}

// Poll fetches every configured employer feed once and publishes postings that
// have not been published within the seen TTL.
func (s *JobScheduler) Poll(ctx context.Context) (PollStats, error) {
	ctx, span := tracer.Start(ctx, "JobScheduler.Poll")
	defer span.End()

	employers := s.config.Employers
	span.SetAttributes(telemetry.Int("employers.count", len(employers)))
	s.logger.Info("polling employer feeds", zap.Int("employers", len(employers)))

	stats := &PollStats{}
	employerChan := make(chan string)
	postingChan := make(chan *events.RawJobPosting)
	doneChan := make(chan struct{})

	s.workerManager.startWorkers(ctx, stats, employerChan, postingChan, doneChan)

	go s.feedProcessor.feedEmployers(ctx, employers, employerChan)

	return s.waitForCompletion(ctx, doneChan, stats)
}

func (s *JobScheduler) waitForCompletion(ctx context.Context, doneChan chan struct{}, stats *PollStats) (PollStats, error) {
	ctx, span := tracer.Start(ctx, "JobScheduler.waitForCompletion")
	defer span.End()

	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return snapshot(stats), ctx.Err()
	case <-doneChan:
		result := snapshot(stats)
		span.SetAttributes(
			telemetry.Int("employers_polled", int(result.EmployersPolled)),
			telemetry.Int("postings_published", int(result.Published)),
		)
		s.logger.Info("completed polling employer feeds",
			zap.Int32("employers_polled", result.EmployersPolled),
			zap.Int32("employers_failed", result.EmployersFailed),
			zap.Int32("postings_seen", result.PostingsSeen),
			zap.Int32("published", result.Published),
			zap.Int32("duplicates", result.Duplicates),
			zap.Int32("publish_failed", result.PublishFailed))
		return result, nil
	}
}

func snapshot(stats *PollStats) PollStats {
	return PollStats{
		EmployersPolled: atomic.LoadInt32(&stats.EmployersPolled),
		EmployersFailed: atomic.LoadInt32(&stats.EmployersFailed),
		PostingsSeen:    atomic.LoadInt32(&stats.PostingsSeen),
		Published:       atomic.LoadInt32(&stats.Published),
		Duplicates:      atomic.LoadInt32(&stats.Duplicates),
		PublishFailed:   atomic.LoadInt32(&stats.PublishFailed),
	}
}
