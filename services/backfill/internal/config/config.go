package config

import (
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/config"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/salary"
)

type Config struct {
	ClickHouseDSN      string
	ClickHouseUsername string
	ClickHousePassword string
	ClickHouseDatabase string

	// NATSURL is optional; without it the backfill does not announce updates.
	NATSURL         string
	NATSConnTimeout time.Duration

	SalaryBounds      salary.Bounds
	PayMarker         string
	HighlightsHeading string
}

func LoadConfig() (*Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	return &Config{
		ClickHouseDSN:      config.GetEnvString("CLICKHOUSE_DSN", "localhost:9000"),
		ClickHouseUsername: config.GetEnvString("CLICKHOUSE_USERNAME", "default"),
		ClickHousePassword: config.GetEnvString("CLICKHOUSE_PASSWORD", ""),
		ClickHouseDatabase: config.GetEnvString("CLICKHOUSE_DATABASE", "nursingjobs"),

		NATSURL:         config.GetEnvString("NATS_URL", ""),
		NATSConnTimeout: config.GetEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		SalaryBounds:      config.SalaryBounds(),
		PayMarker:         config.GetEnvString("SALARY_PAY_MARKER", salary.DefaultPayMarker),
		HighlightsHeading: config.GetEnvString("SALARY_HIGHLIGHTS_HEADING", salary.DefaultHighlightsHeading),
	}, nil
}
