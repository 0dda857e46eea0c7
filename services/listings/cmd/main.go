package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache/backend"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/database"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/repository"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/telemetry"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/listings/internal/config"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/listings/internal/events"
	"github.com/nickdelicto/ai-resume-builder-sub008/services/listings/internal/web"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func newNATSConnection(cfg *config.Config, lc fx.Lifecycle) (*nats.Conn, error) {
	nc, err := nats.Connect(cfg.NATSURL,
		nats.Timeout(cfg.NATSConnTimeout),
		nats.Name("listings-service"),
		nats.RetryOnFailedConnect(true),
	)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			nc.Close()
			return nil
		},
	})
	return nc, nil
}

func newClickHouseConnection(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) (clickhouse.Conn, error) {
	db, err := database.New(context.Background(), database.Options{
		DSN:             cfg.ClickHouseDSN,
		MaxOpenConns:    cfg.ClickHouseMaxOpenConns,
		MaxIdleConns:    cfg.ClickHouseMaxIdleConns,
		ConnMaxLifetime: cfg.ClickHouseConnMaxLife,
		Username:        cfg.ClickHouseUsername,
		Password:        cfg.ClickHousePassword,
		Database:        cfg.ClickHouseDatabase,
	}, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})
	return db.Conn(), nil
}

func newCache(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) cache.Cache {
	opts := cache.DefaultOptions()
	opts.Backend = cfg.CacheBackend
	opts.DefaultTTL = cfg.CacheTTL
	opts.RedisAddr = cfg.RedisAddr
	opts.RedisPassword = cfg.RedisPassword
	opts.RedisDB = cfg.RedisDB
	c := backend.Open(context.Background(), opts, logger.Named("listing-cache"))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})
	return c
}

func newMetrics() *web.Metrics {
	return web.NewMetrics(prometheus.DefaultRegisterer)
}

func newWebHandler(repo repository.JobRepository, c cache.Cache, cfg *config.Config, metrics *web.Metrics, logger *zap.Logger) *web.Handler {
	return web.NewHandler(repo, c, cfg.CacheTTL, metrics, logger)
}

func newServer(cfg *config.Config, handler *web.Handler, metrics *web.Metrics) *gin.Engine {
	server := gin.New()
	server.Use(gin.Recovery(), metrics.Middleware())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	corsConfig.MaxAge = 12 * time.Hour
	server.Use(cors.New(corsConfig))

	handler.PublicRoutes(server)
	server.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return server
}

func startServer(cfg *config.Config, server *gin.Engine, logger *zap.Logger, lc fx.Lifecycle) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("listings server starting", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("listings server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func initTelemetry(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) error {
	shutdown, err := telemetry.InitTracer(context.Background(), "listings-service", cfg.OTelCollectorURL, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdown()
			return nil
		},
	})
	return nil
}

func main() {
	gin.SetMode(gin.ReleaseMode)

	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newNATSConnection,
			newClickHouseConnection,
			repository.NewJobRepository,
			newCache,
			newMetrics,
			newWebHandler,
			newServer,
			events.NewHandler,
		),
		fx.Invoke(
			initTelemetry,
			func(handler *events.Handler, lc fx.Lifecycle) error {
				return handler.RegisterSubscriptions(lc)
			},
			startServer,
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
