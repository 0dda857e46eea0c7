package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("key not found in cache")
	ErrInvalidValue = errors.New("invalid value for cache")
	ErrClosed       = errors.New("cache is closed")
	ErrInvalidKey   = errors.New("invalid cache key")
)

// Cache stores string or binary-marshalable values. Get fills value, which must
// be a *string or implement encoding.BinaryUnmarshaler.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Get(ctx context.Context, key string, value interface{}) error

	Delete(ctx context.Context, key string) error

	Clear(ctx context.Context) error

	Close() error
}

// Backend names accepted by CACHE_BACKEND.
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Options struct {
	Backend string

	DefaultTTL time.Duration

	// CleanupInterval and MaxEntries apply to the in-memory backend only.
	CleanupInterval time.Duration

	MaxEntries int

	RedisAddr string

	RedisPassword string

	RedisDB int
}

func DefaultOptions() Options {
	return Options{
		Backend:         BackendRedis,
		DefaultTTL:      time.Hour,
		CleanupInterval: time.Minute * 5,
		MaxEntries:      10000,
	}
}
