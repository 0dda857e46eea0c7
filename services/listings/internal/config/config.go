package config

import (
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/config"
)

type Config struct {
	HTTPAddr           string
	CORSAllowedOrigins []string

	NATSURL         string
	NATSConnTimeout time.Duration

	ClickHouseDSN          string
	ClickHouseMaxOpenConns int
	ClickHouseMaxIdleConns int
	ClickHouseConnMaxLife  time.Duration
	ClickHouseUsername     string
	ClickHousePassword     string
	ClickHouseDatabase     string

	CacheBackend  string
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	// RedisDB must not be shared: a backfill event flushes the whole DB.
	RedisDB int

	OTelCollectorURL string
}

func LoadConfig() (*Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	return &Config{
		HTTPAddr:           config.GetEnvString("HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: config.GetEnvList("CORS_ALLOWED_ORIGINS", nil),

		NATSURL:         config.GetEnvString("NATS_URL", "nats://localhost:4222"),
		NATSConnTimeout: config.GetEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		ClickHouseDSN:          config.GetEnvString("CLICKHOUSE_DSN", "localhost:9000"),
		ClickHouseMaxOpenConns: config.GetEnvInt("CLICKHOUSE_MAX_OPEN_CONNS", 10),
		ClickHouseMaxIdleConns: config.GetEnvInt("CLICKHOUSE_MAX_IDLE_CONNS", 5),
		ClickHouseConnMaxLife:  config.GetEnvDuration("CLICKHOUSE_CONN_MAX_LIFE", time.Hour),
		ClickHouseUsername:     config.GetEnvString("CLICKHOUSE_USERNAME", "default"),
		ClickHousePassword:     config.GetEnvString("CLICKHOUSE_PASSWORD", ""),
		ClickHouseDatabase:     config.GetEnvString("CLICKHOUSE_DATABASE", "nursingjobs"),

		CacheBackend:  config.GetEnvString("CACHE_BACKEND", cache.BackendRedis),
		CacheTTL:      config.GetEnvDuration("CACHE_TTL", 5*time.Minute),
		RedisAddr:     config.GetEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: config.GetEnvString("REDIS_PASSWORD", ""),
		RedisDB:       config.GetEnvInt("REDIS_DB", 1),

		OTelCollectorURL: config.GetEnvString("OTEL_COLLECTOR_URL", ""),
	}, nil
}
