package memory

import (
	"context"
	"testing"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := New(cache.Options{DefaultTTL: time.Minute})
	defer c.Close()

	require.NoError(t, c.Set(ctx, "jobs:NY", "payload", 0))

	var got string
	require.NoError(t, c.Get(ctx, "jobs:NY", &got))
	assert.Equal(t, "payload", got)

	var missing string
	assert.ErrorIs(t, c.Get(ctx, "jobs:OH", &missing), cache.ErrNotFound)

	var wrongType int
	assert.ErrorIs(t, c.Get(ctx, "jobs:NY", &wrongType), cache.ErrInvalidValue)
	assert.ErrorIs(t, c.Set(ctx, "jobs:NY", 42, 0), cache.ErrInvalidValue)
	assert.ErrorIs(t, c.Set(ctx, "", "x", 0), cache.ErrInvalidKey)
}

func TestCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := New(cache.Options{DefaultTTL: time.Minute})
	defer c.Close()

	require.NoError(t, c.Set(ctx, "short", "v", 20*time.Millisecond))
	require.NoError(t, c.Set(ctx, "long", "v", 0))

	var got string
	require.NoError(t, c.Get(ctx, "short", &got))

	time.Sleep(60 * time.Millisecond)
	assert.ErrorIs(t, c.Get(ctx, "short", &got), cache.ErrNotFound)
	assert.NoError(t, c.Get(ctx, "long", &got))
}

func TestCache_EvictsOldestWhenFull(t *testing.T) {
	ctx := context.Background()
	c := New(cache.Options{DefaultTTL: time.Minute, MaxEntries: 2})
	defer c.Close()

	require.NoError(t, c.Set(ctx, "a", "1", 0))
	require.NoError(t, c.Set(ctx, "b", "2", 0))
	require.NoError(t, c.Set(ctx, "c", "3", 0))

	var got string
	assert.ErrorIs(t, c.Get(ctx, "a", &got), cache.ErrNotFound)
	require.NoError(t, c.Get(ctx, "c", &got))
	assert.Equal(t, "3", got)
}

func TestCache_DeleteClearClose(t *testing.T) {
	ctx := context.Background()
	c := New(cache.Options{})

	require.NoError(t, c.Set(ctx, "a", "1", 0))
	require.NoError(t, c.Set(ctx, "b", "2", 0))
	require.NoError(t, c.Delete(ctx, "a"))

	var got string
	assert.ErrorIs(t, c.Get(ctx, "a", &got), cache.ErrNotFound)
	require.NoError(t, c.Get(ctx, "b", &got))

	require.NoError(t, c.Clear(ctx))
	assert.ErrorIs(t, c.Get(ctx, "b", &got), cache.ErrNotFound)

	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.Set(ctx, "a", "1", 0), cache.ErrClosed)
	assert.ErrorIs(t, c.Get(ctx, "a", &got), cache.ErrClosed)
}
