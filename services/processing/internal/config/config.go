package config

import (
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/config"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/salary"
)

type Config struct {
	NATSURL         string
	NATSConnTimeout time.Duration

	ClickHouseDSN          string
	ClickHouseMaxOpenConns int
	ClickHouseMaxIdleConns int
	ClickHouseConnMaxLife  time.Duration
	ClickHouseUsername     string
	ClickHousePassword     string
	ClickHouseDatabase     string

	OTelCollectorURL string

	ProcessingTimeout time.Duration

	SalaryBounds      salary.Bounds
	PayMarker         string
	HighlightsHeading string
}

func LoadConfig() (*Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		NATSURL:         config.GetEnvString("NATS_URL", "nats://localhost:4222"),
		NATSConnTimeout: config.GetEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		ClickHouseDSN:          config.GetEnvString("CLICKHOUSE_DSN", "localhost:9000"),
		ClickHouseMaxOpenConns: config.GetEnvInt("CLICKHOUSE_MAX_OPEN_CONNS", 10),
		ClickHouseMaxIdleConns: config.GetEnvInt("CLICKHOUSE_MAX_IDLE_CONNS", 5),
		ClickHouseConnMaxLife:  config.GetEnvDuration("CLICKHOUSE_CONN_MAX_LIFE", time.Hour),
		ClickHouseUsername:     config.GetEnvString("CLICKHOUSE_USERNAME", "default"),
		ClickHousePassword:     config.GetEnvString("CLICKHOUSE_PASSWORD", ""),
		ClickHouseDatabase:     config.GetEnvString("CLICKHOUSE_DATABASE", "nursingjobs"),

		OTelCollectorURL: config.GetEnvString("OTEL_COLLECTOR_URL", ""),

		ProcessingTimeout: config.GetEnvDuration("PROCESSING_TIMEOUT", 30*time.Second),

		SalaryBounds:      config.SalaryBounds(),
		PayMarker:         config.GetEnvString("SALARY_PAY_MARKER", salary.DefaultPayMarker),
		HighlightsHeading: config.GetEnvString("SALARY_HIGHLIGHTS_HEADING", salary.DefaultHighlightsHeading),
	}

	return cfg, nil
}
