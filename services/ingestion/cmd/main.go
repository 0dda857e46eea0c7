package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache/backend"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/telemetry"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/ingestion/internal/api"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/ingestion/internal/config"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/ingestion/internal/messaging"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/ingestion/internal/scheduler"

	"go.uber.org/zap"
)

func newSeenSet(ctx context.Context, cfg *config.Config, logger *zap.Logger) cache.Cache {
	opts := cache.DefaultOptions()
	opts.Backend = cfg.CacheBackend
	opts.DefaultTTL = cfg.SeenTTL
	opts.RedisAddr = cfg.RedisAddr
	opts.RedisPassword = cfg.RedisPassword
	opts.RedisDB = cfg.RedisDB
	return backend.Open(ctx, opts, logger.Named("seen-set"))
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("failed to sync logger: %v", err)
		}
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if len(cfg.Employers) == 0 {
		logger.Fatal("EMPLOYERS is empty, nothing to poll")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracer, err := telemetry.InitTracer(ctx, "ingestion-service", cfg.OTelCollectorURL, logger)
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdownTracer()

	logger.Info("starting ingestion service",
		zap.String("feed_base_url", cfg.FeedBaseURL),
		zap.Strings("employers", cfg.Employers),
		zap.Duration("feed_timeout", cfg.FeedTimeout),
		zap.Duration("polling_interval", cfg.PollingInterval))

	feedClient := api.NewFeedClient(logger, cfg)

	publisher, err := messaging.NewPublisher(logger, cfg)
	if err != nil {
		logger.Fatal("failed to create NATS publisher", zap.Error(err))
	}
	defer publisher.Close()

	seen := newSeenSet(ctx, cfg, logger)
	defer func() {
		if err := seen.Close(); err != nil {
			logger.Warn("failed to close seen-set", zap.Error(err))
		}
	}()

	jobScheduler := scheduler.NewJobScheduler(feedClient, publisher, seen, logger, cfg)

	go func() {
		if err := jobScheduler.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("job scheduler failed", zap.Error(err))
		}
	}()

	logger.Info("ingestion service started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	jobScheduler.Stop()
	cancel()
	logger.Info("shutdown complete")
}
