package availability

import (
	"context"
	"encoding/json"
	"time"

	"hostly/models"
	"hostly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const busyCacheKeyPrefix = "gcal:busy:"

// RedisBusyCache is the production BusyTimeCache shared across instances.
// Expiry rides on Redis TTLs. Cache faults are never fatal: a failed Get is
// a miss, failed writes are logged and dropped, so a Redis outage only costs
// extra upstream fetches.
type RedisBusyCache struct {
	Client *redis.Client
}

func NewRedisBusyCache(client *redis.Client) *RedisBusyCache {
	return &RedisBusyCache{Client: client}
}

func (c *RedisBusyCache) Get(ctx context.Context, hostID string) ([]models.BusyInterval, bool) {
	data, err := c.Client.Get(ctx, busyCacheKeyPrefix+hostID).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		utils.GetLogger().Warn("busy cache read failed, treating as miss",
			zap.String("hostID", hostID), zap.Error(err))
		return nil, false
	}

	var intervals []models.BusyInterval
	if err := json.Unmarshal(data, &intervals); err != nil {
		utils.GetLogger().Warn("busy cache entry corrupt, evicting",
			zap.String("hostID", hostID), zap.Error(err))
		c.Invalidate(ctx, hostID)
		return nil, false
	}
	return intervals, true
}

func (c *RedisBusyCache) Set(ctx context.Context, hostID string, intervals []models.BusyInterval, ttl time.Duration) {
	data, err := json.Marshal(intervals)
	if err != nil {
		utils.GetLogger().Warn("failed to encode busy intervals for cache",
			zap.String("hostID", hostID), zap.Error(err))
		return
	}
	if err := c.Client.Set(ctx, busyCacheKeyPrefix+hostID, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("busy cache write failed",
			zap.String("hostID", hostID), zap.Error(err))
	}
}

func (c *RedisBusyCache) Invalidate(ctx context.Context, hostID string) {
	if err := c.Client.Del(ctx, busyCacheKeyPrefix+hostID).Err(); err != nil {
		utils.GetLogger().Warn("busy cache invalidation failed",
			zap.String("hostID", hostID), zap.Error(err))
	}
}
