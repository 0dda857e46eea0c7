package backend

import (
	"context"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache/memory"
	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache/redis"

	"go.uber.org/zap"
)

type pinger interface {
	cache.Cache
	Ping(ctx context.Context) error
}

// Open returns the backend named by opts.Backend. When Redis does not answer a
// ping the in-memory backend is returned instead.
func Open(ctx context.Context, opts cache.Options, logger *zap.Logger) cache.Cache {
	if opts.Backend == cache.BackendMemory {
		logger.Info("using in-memory cache")
		return memory.New(opts)
	}
	return openWithFallback(ctx, redis.New(opts), opts, logger)
}

func openWithFallback(ctx context.Context, primary pinger, opts cache.Options, logger *zap.Logger) cache.Cache {
	if err := primary.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, falling back to in-memory cache",
			zap.String("addr", opts.RedisAddr),
			zap.Error(err))
		_ = primary.Close()
		return memory.New(opts)
	}
	logger.Info("using redis cache",
		zap.String("addr", opts.RedisAddr),
		zap.Int("db", opts.RedisDB))
	return primary
}
