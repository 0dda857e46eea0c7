package database

import (
	"context"
	"strings"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/errors"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"
)

const (
	dialTimeout = 30 * time.Second
	pingTimeout = 10 * time.Second
)

type Options struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Username        string
	Password        string
	Database        string
}

// Hosts splits DSN ("host:port[,host:port...]" with an optional ignored
// "?query" suffix) into addresses.
func (o Options) Hosts() []string {
	dsn, _, _ := strings.Cut(o.DSN, "?")
	var hosts []string
	for _, h := range strings.Split(dsn, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

type Database struct {
	conn   clickhouse.Conn
	logger *zap.Logger
}

// New opens a native-protocol connection to the jobs database and pings it.
// Connection failures are reported as Unavailable.
func New(ctx context.Context, opts Options, logger *zap.Logger) (*Database, error) {
	hosts := opts.Hosts()
	if len(hosts) == 0 {
		return nil, errors.InvalidInput("clickhouse dsn has no hosts", nil)
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Protocol: clickhouse.Native,
		Addr:     hosts,
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		Auth: clickhouse.Auth{
			Database: opts.Database,
			Username: opts.Username,
			Password: opts.Password,
		},
		DialTimeout:     dialTimeout,
		MaxOpenConns:    opts.MaxOpenConns,
		MaxIdleConns:    opts.MaxIdleConns,
		ConnMaxLifetime: opts.ConnMaxLifetime,
	})
	if err != nil {
		return nil, errors.Unavailable("open clickhouse connection", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := conn.Ping(pingCtx); err != nil {
		_ = conn.Close()
		return nil, errors.Unavailable("ping clickhouse", err)
	}

	logger.Info("connected to clickhouse",
		zap.Strings("hosts", hosts),
		zap.String("database", opts.Database))

	return &Database{
		conn:   conn,
		logger: logger,
	}, nil
}

func (db *Database) Close() error {
	db.logger.Debug("closing clickhouse connection")
	return db.conn.Close()
}

func (db *Database) Conn() clickhouse.Conn {
	return db.conn
}
