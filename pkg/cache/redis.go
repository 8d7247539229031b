// Package cache wraps Redis for resolved-content caching. The whole package
// degrades to a no-op when Redis is unreachable so the API keeps serving
// straight from Postgres.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis. Returns nil when the server cannot be
// reached; callers must treat a nil client as "caching disabled".
func NewRedisClient(config utils.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}

// ContentCache stores JSON-encoded resolved content keyed by entity and
// locale. Misses and Redis failures both surface as a cache miss.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewContentCache(client *redis.Client, ttlMinutes int, log *zap.Logger) *ContentCache {
	return &ContentCache{
		client: client,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		log:    log.With(zap.String("component", "content_cache")),
	}
}

func (c *ContentCache) key(kind, slug, locale string) string {
	return fmt.Sprintf("content:%s:%s:%s", kind, slug, locale)
}

// Get loads a cached value into dest. Returns false on miss or when caching
// is disabled.
func (c *ContentCache) Get(ctx context.Context, kind, slug, locale string, dest any) bool {
	if c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, c.key(kind, slug, locale)).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warn("Cache read failed", zap.Error(err), zap.String("kind", kind), zap.String("slug", slug))
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Cache entry corrupt", zap.Error(err), zap.String("kind", kind), zap.String("slug", slug))
		return false
	}

	return true
}

// Set stores value under the (kind, slug, locale) key with the cache TTL.
func (c *ContentCache) Set(ctx context.Context, kind, slug, locale string, value any) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache marshal failed", zap.Error(err), zap.String("kind", kind), zap.String("slug", slug))
		return
	}

	if err := c.client.Set(ctx, c.key(kind, slug, locale), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", zap.Error(err), zap.String("kind", kind), zap.String("slug", slug))
	}
}

// Invalidate drops every locale variant of an entity after a write.
func (c *ContentCache) Invalidate(ctx context.Context, kind, slug string) {
	if c.client == nil {
		return
	}

	pattern := fmt.Sprintf("content:%s:%s:*", kind, slug)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("Cache invalidation failed", zap.Error(err), zap.String("key", iter.Val()))
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("Cache scan failed", zap.Error(err), zap.String("pattern", pattern))
	}
}
