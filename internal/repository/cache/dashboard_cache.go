package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mindvault-be/internal/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const dashboardTTL = 5 * time.Minute

// DashboardCache keeps per-user analytics aggregates in Redis. The client may
// be nil (Redis unreachable at boot); every method then degrades to a miss,
// so analytics keep working without the cache.
type DashboardCache struct {
	rdb *redis.Client
}

func NewDashboardCache(rdb *redis.Client) *DashboardCache {
	return &DashboardCache{rdb: rdb}
}

func dashboardKey(userId uuid.UUID) string {
	return fmt.Sprintf("analytics:dashboard:%s", userId)
}

func (c *DashboardCache) Get(ctx context.Context, userId uuid.UUID) (*dto.DashboardStats, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, dashboardKey(userId)).Bytes()
	if err != nil {
		return nil, false
	}
	var stats dto.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *DashboardCache) Set(ctx context.Context, userId uuid.UUID, stats *dto.DashboardStats) {
	if c.rdb == nil || stats == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	// Best effort: a failed write only costs a recompute.
	c.rdb.Set(ctx, dashboardKey(userId), raw, dashboardTTL)
}

// Invalidate drops the cached aggregate after any idea write.
func (c *DashboardCache) Invalidate(ctx context.Context, userId uuid.UUID) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, dashboardKey(userId))
}
