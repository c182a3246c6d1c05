package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache is a read-through shadow of serialized entities, keyed by
// (entity type, id) under a configured prefix. It is never the source of
// truth: every entry is recomputable from the database, so lookup failures
// degrade to misses and write failures are logged, not surfaced.
type Cache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

type Options struct {
	Addr     string
	Password string
	Prefix   string
	TTL      time.Duration
}

// New connects to Redis. An unreachable server is logged but not fatal:
// the service keeps running with every lookup treated as a miss.
func New(opts Options) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis unreachable, cache degraded to pass-through")
	} else {
		logrus.Info("Redis connected successfully")
	}

	return &Cache{
		rdb:    rdb,
		prefix: opts.Prefix,
		ttl:    opts.TTL,
	}
}

func (c *Cache) key(entity string, id uint) string {
	return fmt.Sprintf("%s:%s:%d", c.prefix, entity, id)
}

// Get returns the cached payload for (entity, id). Any failure, including
// an unreachable server, reads as a miss.
func (c *Cache) Get(ctx context.Context, entity string, id uint) ([]byte, bool) {
	payload, err := c.rdb.Get(ctx, c.key(entity, id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).Warnf("cache get failed for %s:%d", entity, id)
		}
		return nil, false
	}
	return payload, true
}

// Set stores the payload with the configured TTL. Best-effort: a failed
// write costs a future cache miss, nothing more.
func (c *Cache) Set(ctx context.Context, entity string, id uint, payload []byte) {
	if err := c.rdb.Set(ctx, c.key(entity, id), payload, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warnf("cache set failed for %s:%d", entity, id)
	}
}

// Drop invalidates the entry for (entity, id). Dropping an absent key is a
// no-op. Callers await completion, not success: if the drop itself fails
// the TTL is the backstop.
func (c *Cache) Drop(ctx context.Context, entity string, id uint) {
	if err := c.rdb.Del(ctx, c.key(entity, id)).Err(); err != nil {
		logrus.WithError(err).Warnf("cache drop failed for %s:%d", entity, id)
	}
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
