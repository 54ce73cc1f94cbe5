package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/manus88/machinery-erp/internal/core/ports"
)

const statsTTL = 30 * time.Second

// StatsCache holds per-tenant machinery stats in Redis for a short TTL.
// Key format: machinery:stats:<tenant_id>
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats for a tenant, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context, tenantID string) (*ports.MachineryStats, error) {
	raw, err := c.client.Get(ctx, c.key(tenantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.MachineryStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores the stats for a tenant (expires after statsTTL).
func (c *StatsCache) Set(ctx context.Context, tenantID string, stats *ports.MachineryStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(tenantID), raw, statsTTL).Err()
}

// Invalidate drops the tenant's cached stats after any machinery write.
func (c *StatsCache) Invalidate(ctx context.Context, tenantID string) error {
	return c.client.Del(ctx, c.key(tenantID)).Err()
}

func (c *StatsCache) key(tenantID string) string {
	return fmt.Sprintf("machinery:stats:%s", tenantID)
}
