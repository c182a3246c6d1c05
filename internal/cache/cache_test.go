package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c := New(Options{
		Addr:   mr.Addr(),
		Prefix: "publication",
		TTL:    time.Minute,
	})
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestSetGetRoundtrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "Publication", 1)
	assert.False(t, ok)

	c.Set(ctx, "Publication", 1, []byte(`{"id":1}`))

	payload, ok := c.Get(ctx, "Publication", 1)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"id":1}`), payload)

	// Keys are namespaced by prefix, type and id.
	assert.True(t, mr.Exists("publication:Publication:1"))
}

func TestEntryExpiresAfterTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "Publication", 1, []byte(`{}`))

	ttl := mr.TTL("publication:Publication:1")
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(2 * time.Minute)
	_, ok := c.Get(ctx, "Publication", 1)
	assert.False(t, ok)
}

func TestDropIsIdempotent(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "Publication", 1, []byte(`{}`))
	c.Drop(ctx, "Publication", 1)

	_, ok := c.Get(ctx, "Publication", 1)
	assert.False(t, ok)

	// Dropping an absent key is a no-op, not an error.
	c.Drop(ctx, "Publication", 1)
	c.Drop(ctx, "Publication", 999)
}

func TestUnreachableServerDegradesToMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "Publication", 1, []byte(`{}`))
	mr.Close()

	// Lookups read as misses, writes and drops do not panic or surface.
	_, ok := c.Get(ctx, "Publication", 1)
	assert.False(t, ok)
	c.Set(ctx, "Publication", 2, []byte(`{}`))
	c.Drop(ctx, "Publication", 1)
}
