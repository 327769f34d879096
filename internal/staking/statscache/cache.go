// Package statscache serves the pool stats snapshot from redis so the hot
// read path never takes the pool lock within the TTL window.
package statscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	platformredis "stakepool/internal/platform/redis"
	"stakepool/internal/staking/models"
)

const statsKey = "stakepool:stats"

// Cache is a TTL-bounded snapshot of models.PoolStats. A nil *Cache is a
// no-op, so wiring stays optional.
type Cache struct {
	client *platformredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New wraps a redis client. Returns nil when client is nil (redis not
// configured).
func New(client *platformredis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached snapshot, or ok=false on miss or error. Cache
// errors are logged and treated as misses.
func (c *Cache) Get(ctx context.Context) (models.PoolStats, bool) {
	if c == nil {
		return models.PoolStats{}, false
	}
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		return models.PoolStats{}, false
	}
	var stats models.PoolStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.logger.WarnContext(ctx, "discarding corrupt stats snapshot", "error", err)
		return models.PoolStats{}, false
	}
	return stats, true
}

// Set stores a fresh snapshot. Failures are logged; the caller already has
// the authoritative value.
func (c *Cache) Set(ctx context.Context, stats models.PoolStats) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to marshal stats snapshot", "error", err)
		return
	}
	if err := c.client.Set(ctx, statsKey, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to cache stats snapshot", "error", err)
	}
}
