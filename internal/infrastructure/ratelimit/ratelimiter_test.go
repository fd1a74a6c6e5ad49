package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return client
}

func limiters(t *testing.T) map[string]RateLimiter {
	return map[string]RateLimiter{
		"redis":  NewRedisRateLimiter(setupTestRedis(t)),
		"memory": NewMemoryRateLimiter(),
	}
}

func allow(t *testing.T, limiter RateLimiter, key string, config RateLimitConfig) Decision {
	t.Helper()
	d, err := limiter.Allow(context.Background(), key, config)
	require.NoError(t, err)
	return d
}

func TestRateLimiter_Allow_PerMinute(t *testing.T) {
	for name, limiter := range limiters(t) {
		t.Run(name, func(t *testing.T) {
			config := RateLimitConfig{RequestsPerMinute: 5}

			for i := 0; i < 5; i++ {
				d := allow(t, limiter, "login:10.0.0.1", config)
				assert.True(t, d.Allowed, "request %d should be allowed", i+1)
				assert.Equal(t, 4-i, d.Remaining)
			}

			d := allow(t, limiter, "login:10.0.0.1", config)
			assert.False(t, d.Allowed, "6th request should be denied")
			assert.Positive(t, d.RetryAfter)
			assert.LessOrEqual(t, d.RetryAfter, time.Minute)

			assert.True(t, allow(t, limiter, "login:10.0.0.2", config).Allowed, "keys are independent")
		})
	}
}

func TestRateLimiter_HourWindowAppliesToo(t *testing.T) {
	for name, limiter := range limiters(t) {
		t.Run(name, func(t *testing.T) {
			config := RateLimitConfig{RequestsPerMinute: 10, RequestsPerHour: 3}

			for i := 0; i < 3; i++ {
				d := allow(t, limiter, "k", config)
				assert.True(t, d.Allowed)
				assert.Equal(t, 2-i, d.Remaining, "the tighter window is reported")
			}
			assert.False(t, allow(t, limiter, "k", config).Allowed)
		})
	}
}

func TestRateLimiter_NoWindowsAlwaysAllows(t *testing.T) {
	for name, limiter := range limiters(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				assert.True(t, allow(t, limiter, "open", RateLimitConfig{}).Allowed)
			}
		})
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	for name, limiter := range limiters(t) {
		t.Run(name, func(t *testing.T) {
			config := RateLimitConfig{RequestsPerMinute: 1}

			require.True(t, allow(t, limiter, "k", config).Allowed)
			require.False(t, allow(t, limiter, "k", config).Allowed)

			require.NoError(t, limiter.Reset(context.Background(), "k"))
			assert.True(t, allow(t, limiter, "k", config).Allowed)
		})
	}
}

func TestRedisRateLimiter_DeniedRequestsAreNotCounted(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	config := RateLimitConfig{RequestsPerMinute: 2}

	for i := 0; i < 5; i++ {
		allow(t, limiter, "k", config)
	}

	count, err := client.ZCard(context.Background(), windowKey("k", time.Minute)).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestRedisRateLimiter_ConcurrentRequests(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	config := RateLimitConfig{RequestsPerMinute: 10}

	var allowedCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := limiter.Allow(context.Background(), "burst", config)
			if err == nil && d.Allowed {
				allowedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	// The check and the insert run in one script, so the limit is exact.
	assert.EqualValues(t, 10, allowedCount.Load())
}
