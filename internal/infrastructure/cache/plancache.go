package cache

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talento-hq/talento/internal/application/plan/dto"
	"github.com/talento-hq/talento/internal/shared/logger"
)

const (
	publicPlansKey     = "plans:public"
	basePublicPlansTTL = 10 * time.Minute
	publicPlansJitter  = 2 * time.Minute // TTL range: 10-12 min (anti-stampede)
)

// RedisPlanCache caches the public plan list as one JSON value. Redis
// failures degrade to cache misses.
type RedisPlanCache struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisPlanCache creates a new Redis-based public plan cache
func NewRedisPlanCache(client *redis.Client, logger logger.Interface) *RedisPlanCache {
	return &RedisPlanCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisPlanCache) Get(ctx context.Context) ([]*dto.PlanDTO, bool) {
	data, err := c.client.Get(ctx, publicPlansKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warnw("failed to read plan cache", "error", err)
		}
		return nil, false
	}

	var plans []*dto.PlanDTO
	if err := json.Unmarshal(data, &plans); err != nil {
		c.logger.Warnw("discarding corrupt plan cache entry", "error", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return plans, true
}

func (c *RedisPlanCache) Set(ctx context.Context, plans []*dto.PlanDTO) {
	data, err := json.Marshal(plans)
	if err != nil {
		c.logger.Warnw("failed to encode plan cache entry", "error", err)
		return
	}
	ttl := basePublicPlansTTL + time.Duration(rand.Int64N(int64(publicPlansJitter)))
	if err := c.client.Set(ctx, publicPlansKey, data, ttl).Err(); err != nil {
		c.logger.Warnw("failed to write plan cache", "error", err)
	}
}

func (c *RedisPlanCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, publicPlansKey).Err(); err != nil {
		c.logger.Warnw("failed to invalidate plan cache", "error", err)
	}
}
