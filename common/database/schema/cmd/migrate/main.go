package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/database"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/database/schema"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/database/schema/migrations"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	maxOpen, _ := strconv.Atoi(getEnv("CLICKHOUSE_MAX_OPEN_CONNS", "2"))
	db, err := database.New(ctx, database.Options{
		DSN:             getEnv("CLICKHOUSE_DSN", "127.0.0.1:9000"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		Username:        getEnv("CLICKHOUSE_USERNAME", "default"),
		Password:        getEnv("CLICKHOUSE_PASSWORD", ""),
		Database:        getEnv("CLICKHOUSE_DATABASE", "nursingjobs"),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to connect to ClickHouse", zap.Error(err))
	}
	defer db.Close()

	migrator := schema.NewMigrator(db.Conn(), logger)

	applied, err := migrator.Up(ctx, migrations.All)
	if err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	logger.Info("All migrations completed successfully", zap.Int("applied", applied))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
