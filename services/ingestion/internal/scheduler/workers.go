package scheduler

import (
	"context"
	"sync"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/events"

	"go.uber.org/zap"
)

type workerManager struct {
	scheduler *JobScheduler
	logger    *zap.Logger
}

func newWorkerManager(scheduler *JobScheduler, logger *zap.Logger) *workerManager {
	return &workerManager{
		scheduler: scheduler,
		logger:    logger,
	}
}

// startWorkers runs the employer pool feeding the publish pool. doneChan is
// closed once both pools have drained.
func (w *workerManager) startWorkers(ctx context.Context, stats *PollStats, employerChan <-chan string, postingChan chan *events.RawJobPosting, doneChan chan struct{}) {
	var employerWG, publishWG sync.WaitGroup

	w.startPublishWorkers(ctx, &publishWG, stats, postingChan)
	w.startEmployerWorkers(ctx, &employerWG, stats, employerChan, postingChan)

	go func() {
		employerWG.Wait()
		close(postingChan)
		publishWG.Wait()
		close(doneChan)
	}()
}

func (w *workerManager) startPublishWorkers(ctx context.Context, wg *sync.WaitGroup, stats *PollStats, postingChan <-chan *events.RawJobPosting) {
	for i := 0; i < w.scheduler.config.PublishWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for posting := range postingChan {
				w.scheduler.feedProcessor.publishPosting(ctx, posting, stats)
			}
		}()
	}
}

func (w *workerManager) startEmployerWorkers(ctx context.Context, wg *sync.WaitGroup, stats *PollStats, employerChan <-chan string, postingChan chan<- *events.RawJobPosting) {
	for i := 0; i < w.scheduler.config.EmployerWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for slug := range employerChan {
				w.scheduler.feedProcessor.processEmployer(ctx, slug, stats, postingChan)
			}
		}()
	}
}
