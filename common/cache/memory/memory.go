// Package memory is an in-process cache.Cache used when no Redis is configured
// and in tests. Entries live in an ecache LRU with per-key expiration.
package memory

import (
	"context"
	"encoding"
	"fmt"
	"sync"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"

	"github.com/ecodeclub/ecache/memory/lru"
)

type Cache struct {
	mu         sync.RWMutex
	store      *lru.Cache
	opts       cache.Options
	defaultTTL time.Duration
	closed     bool
}

func New(opts cache.Options) *Cache {
	defaults := cache.DefaultOptions()
	if opts.DefaultTTL == 0 {
		opts.DefaultTTL = defaults.DefaultTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaults.CleanupInterval
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = defaults.MaxEntries
	}
	return &Cache{
		store:      newStore(opts),
		opts:       opts,
		defaultTTL: opts.DefaultTTL,
	}
}

func newStore(opts cache.Options) *lru.Cache {
	return lru.NewCache(opts.MaxEntries, lru.WithCycleInterval(opts.CleanupInterval))
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if key == "" {
		return cache.ErrInvalidKey
	}
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	data, err := encode(value)
	if err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return cache.ErrClosed
	}
	return c.store.Set(ctx, key, data, ttl)
}

func (c *Cache) Get(ctx context.Context, key string, value interface{}) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return cache.ErrClosed
	}
	res := c.store.Get(ctx, key)
	c.mu.RUnlock()

	if res.KeyNotFound() {
		return cache.ErrNotFound
	}
	if res.Err != nil {
		return res.Err
	}
	data, ok := res.Val.([]byte)
	if !ok {
		return cache.ErrInvalidValue
	}

	switch v := value.(type) {
	case *string:
		*v = string(data)
	case encoding.BinaryUnmarshaler:
		return v.UnmarshalBinary(data)
	default:
		return cache.ErrInvalidValue
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, err := c.store.Delete(ctx, key)
	return err
}

// Clear swaps in an empty store. The LRU has no bulk delete.
func (c *Cache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = newStore(c.opts)
	return nil
}

func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func encode(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return append([]byte(nil), v...), nil
	case encoding.BinaryMarshaler:
		return v.MarshalBinary()
	default:
		return nil, fmt.Errorf("%w: %T", cache.ErrInvalidValue, value)
	}
}
