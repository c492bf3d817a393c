package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestCache(t *testing.T, ttl time.Duration, now *time.Time) *ResponseCache {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &ResponseCache{DB: db, TTL: ttl, Now: func() time.Time { return *now }}
}

func TestResponseCacheRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := openTestCache(t, 15*time.Minute, &now)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "AREA[Phase]PHASE3", 200)
	require.NoError(t, err)
	assert.False(t, ok)

	body := []byte(`{"studies":[]}`)
	require.NoError(t, c.Put(ctx, "AREA[Phase]PHASE3", 200, body))

	got, ok, err := c.Get(ctx, "AREA[Phase]PHASE3", 200)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, body, got)

	// same term, different page size is a different entry
	_, ok, err = c.Get(ctx, "AREA[Phase]PHASE3", 100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResponseCacheExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := openTestCache(t, 15*time.Minute, &now)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "t", 5, []byte("x")))

	now = now.Add(16 * time.Minute)
	_, ok, err := c.Get(ctx, "t", 5)
	require.NoError(t, err)
	assert.False(t, ok, "entry past TTL must miss")

	n, err := c.Purge(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestResponseCacheOverwrite(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := openTestCache(t, time.Hour, &now)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "t", 5, []byte("old")))
	require.NoError(t, c.Put(ctx, "t", 5, []byte("new")))

	got, ok, err := c.Get(ctx, "t", 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}
