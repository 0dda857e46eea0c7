package config

import (
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/config"
)

type Config struct {
	FeedBaseURL string
	FeedTimeout time.Duration
	Employers   []string

	PollingInterval time.Duration
	MaxRetries      int
	RetryDelay      time.Duration

	EmployerWorkers int
	PublishWorkers  int

	NATSURL         string
	NATSConnTimeout time.Duration

	CacheBackend  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SeenTTL       time.Duration

	OTelCollectorURL string
}

func LoadConfig() (*Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		FeedBaseURL: config.GetEnvString("FEED_BASE_URL", "http://localhost:8081"),
		FeedTimeout: config.GetEnvDuration("FEED_TIMEOUT", 10*time.Second),
		Employers:   config.GetEnvList("EMPLOYERS", nil),

		PollingInterval: config.GetEnvDuration("POLLING_INTERVAL", 15*time.Minute),
		MaxRetries:      config.GetEnvInt("MAX_RETRIES", 3),
		RetryDelay:      config.GetEnvDuration("RETRY_DELAY", 30*time.Second),

		EmployerWorkers: config.GetEnvInt("EMPLOYER_WORKERS", 5),
		PublishWorkers:  config.GetEnvInt("PUBLISH_WORKERS", 10),

		NATSURL:         config.GetEnvString("NATS_URL", "nats://localhost:4222"),
		NATSConnTimeout: config.GetEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		CacheBackend:  config.GetEnvString("CACHE_BACKEND", cache.BackendRedis),
		RedisAddr:     config.GetEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: config.GetEnvString("REDIS_PASSWORD", ""),
		RedisDB:       config.GetEnvInt("REDIS_DB", 0),
		SeenTTL:       config.GetEnvDuration("SEEN_TTL", 7*24*time.Hour),

		OTelCollectorURL: config.GetEnvString("OTEL_COLLECTOR_URL", ""),
	}

	if cfg.EmployerWorkers < 1 {
		cfg.EmployerWorkers = 1
	}
	if cfg.PublishWorkers < 1 {
		cfg.PublishWorkers = 1
	}

	return cfg, nil
}
