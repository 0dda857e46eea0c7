package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/database"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/repository"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/salary"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/backfill/internal/backfill"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/backfill/internal/config"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/backfill/internal/messaging"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/backfill/internal/report"

	"go.uber.org/zap"
)

func main() {
	save := flag.Bool("save", false, "Write recovered salaries back (default is a preview)")
	employer := flag.String("employer", "", "Only backfill postings of this employer slug")
	quiet := flag.Bool("quiet", false, "Hide the progress bar")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [--save] [--employer=<slug>] [--quiet]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Recovers salary fields for postings stored without them.")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, database.Options{
		DSN:          cfg.ClickHouseDSN,
		MaxOpenConns: 2,
		MaxIdleConns: 1,
		Username:     cfg.ClickHouseUsername,
		Password:     cfg.ClickHousePassword,
		Database:     cfg.ClickHouseDatabase,
	}, logger)
	if err != nil {
		logger.Fatal("failed to connect to clickhouse", zap.Error(err))
	}
	defer db.Close()

	var publisher backfill.Publisher
	if *save && cfg.NATSURL != "" {
		p, err := messaging.NewPublisher(logger, cfg.NATSURL, cfg.NATSConnTimeout)
		if err != nil {
			logger.Warn("NATS unavailable, listings caches will expire on their own", zap.Error(err))
		} else {
			defer p.Close()
			publisher = p
		}
	}

	extractor := salary.NewExtractor(
		salary.WithBounds(cfg.SalaryBounds),
		salary.WithPayMarker(cfg.PayMarker),
		salary.WithHighlightsHeading(cfg.HighlightsHeading),
	)
	driver := backfill.New(repository.NewJobRepository(db.Conn(), logger), extractor, publisher, logger)

	result, err := driver.Run(ctx, backfill.Options{Save: *save, Employer: *employer}, report.NewProgress(os.Stderr, *quiet))
	if err != nil {
		logger.Fatal("backfill query failed", zap.Error(err))
	}

	report.Log(logger, result)
	if err := report.Render(os.Stdout, result); err != nil {
		logger.Warn("failed to render report", zap.Error(err))
	}
}
