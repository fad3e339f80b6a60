package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/luisabarca/multivend-backend/pkg/logger"
	"github.com/luisabarca/multivend-backend/pkg/metrics"
	"github.com/luisabarca/multivend-backend/pkg/redis"
)

// CacheStore is the slice of the redis client the read-model cache needs.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Cache is a short-TTL, fail-open cache for assembled dashboards. Every
// failure path falls through to direct assembly: a broken cache must never
// break a dashboard.
type Cache struct {
	store   CacheStore
	ttl     time.Duration
	enabled bool
	logg    *logger.Logger
	metrics *metrics.DashboardMetrics
}

// NewCache builds the read-model cache. A nil store disables caching.
func NewCache(store CacheStore, ttl time.Duration, enabled bool, logg *logger.Logger, m *metrics.DashboardMetrics) *Cache {
	return &Cache{
		store:   store,
		ttl:     ttl,
		enabled: enabled && store != nil,
		logg:    logg,
		metrics: m,
	}
}

// Lookup fetches and decodes a cached dashboard into out. It reports true only
// on a clean hit; misses, decode failures, and store errors all report false.
func (c *Cache) Lookup(ctx context.Context, kind, key string, out any) bool {
	if c == nil || !c.enabled {
		return false
	}
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			c.warn(ctx, key, "dashboard cache read failed", err)
		}
		c.metrics.IncCacheMiss(kind)
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		c.warn(ctx, key, "dashboard cache entry corrupt", err)
		// Evict the corrupt entry so the fresh assembly replaces it instead
		// of every request paying the decode failure until the TTL expires.
		if delErr := c.store.Del(ctx, key); delErr != nil {
			c.warn(ctx, key, "dashboard cache evict failed", delErr)
		}
		c.metrics.IncCacheMiss(kind)
		return false
	}
	c.metrics.IncCacheHit(kind)
	return true
}

// Store encodes and writes an assembled dashboard. Write failures only warn.
func (c *Cache) Store(ctx context.Context, key string, value any) {
	if c == nil || !c.enabled {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		c.warn(ctx, key, "dashboard cache encode failed", err)
		return
	}
	if err := c.store.Set(ctx, key, encoded, c.ttl); err != nil {
		c.warn(ctx, key, "dashboard cache write failed", err)
	}
}

func (c *Cache) warn(ctx context.Context, key, msg string, err error) {
	if c.logg == nil {
		return
	}
	ctx = c.logg.WithFields(ctx, map[string]any{"cache_key": key, "cache_error": err.Error()})
	c.logg.Warn(ctx, msg)
}
