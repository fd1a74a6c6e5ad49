package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hq/talento/internal/application/plan/dto"
	"github.com/talento-hq/talento/internal/shared/logger"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRedisPlanCache(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()
	c := NewRedisPlanCache(client, logger.NewNopLogger())

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	plans := []*dto.PlanDTO{{ID: "plan_a", Name: "Starter", InterviewLimit: 5}}
	c.Set(ctx, plans)

	got, ok := c.Get(ctx)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Starter", got[0].Name)

	ttl := mr.TTL(publicPlansKey)
	assert.GreaterOrEqual(t, ttl, basePublicPlansTTL)
	assert.Less(t, ttl, basePublicPlansTTL+publicPlansJitter)

	c.Invalidate(ctx)
	_, ok = c.Get(ctx)
	assert.False(t, ok)
}

func TestRedisPlanCache_CorruptEntryIsAMiss(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisPlanCache(client, logger.NewNopLogger())

	require.NoError(t, mr.Set(publicPlansKey, "{not json"))
	_, ok := c.Get(context.Background())
	assert.False(t, ok)
	assert.False(t, mr.Exists(publicPlansKey))
}

func TestRedisPlanCache_RedisDownIsAMiss(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisPlanCache(client, logger.NewNopLogger())
	mr.Close()

	_, ok := c.Get(context.Background())
	assert.False(t, ok)
	c.Set(context.Background(), []*dto.PlanDTO{})
}

func TestRedisWebhookEventStore(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()
	s := NewRedisWebhookEventStore(client, "webhook:event:", time.Hour)

	seen, err := s.Seen(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, s.MarkProcessed(ctx, "evt_1"))
	seen, err = s.Seen(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, seen)

	mr.FastForward(2 * time.Hour)
	seen, err = s.Seen(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, seen)

	_, err = s.Seen(ctx, "")
	assert.Error(t, err)
}
