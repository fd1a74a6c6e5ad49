package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/talento-hq/talento/internal/shared/biztime"
)

// slidingWindowScript checks every window before recording the hit, so a
// denied request does not consume capacity and concurrent callers cannot
// overshoot. KEYS are one sorted set per window; ARGV is now (ms), a unique
// member, then a (window ms, limit) pair per key.
var slidingWindowScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local member = ARGV[2]
local remaining = -1

for i, key in ipairs(KEYS) do
  local window = tonumber(ARGV[1 + i * 2])
  local limit = tonumber(ARGV[2 + i * 2])
  redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
  local count = redis.call('ZCARD', key)
  if count >= limit then
    local retry = window
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    if oldest[2] then
      retry = tonumber(oldest[2]) + window - now
    end
    return {0, 0, retry}
  end
  local left = limit - count - 1
  if remaining < 0 or left < remaining then
    remaining = left
  end
end

for i, key in ipairs(KEYS) do
  local window = tonumber(ARGV[1 + i * 2])
  redis.call('ZADD', key, now, member)
  redis.call('PEXPIRE', key, window + 60000)
end

return {1, remaining, 0}
`)

// RedisRateLimiter keeps a sliding log per key and window in a sorted set,
// so limits hold across server instances.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, config RateLimitConfig) (Decision, error) {
	windows := config.windows()
	if len(windows) == 0 {
		return Decision{Allowed: true, Remaining: -1}, nil
	}

	keys := make([]string, 0, len(windows))
	args := []any{biztime.NowUTC().UnixMilli(), uuid.NewString()}
	for _, w := range windows {
		keys = append(keys, windowKey(key, w.duration))
		args = append(args, w.duration.Milliseconds(), w.limit)
	}

	res, err := slidingWindowScript.Run(ctx, l.client, keys, args...).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to evaluate rate limit: %w", err)
	}
	if len(res) != 3 {
		return Decision{}, fmt.Errorf("unexpected rate limit reply: %v", res)
	}

	return Decision{
		Allowed:    res[0] == 1,
		Remaining:  int(res[1]),
		RetryAfter: time.Duration(res[2]) * time.Millisecond,
	}, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	keys := make([]string, 0, len(allWindows))
	for _, d := range allWindows {
		keys = append(keys, windowKey(key, d))
	}
	if err := l.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit for %s: %w", key, err)
	}
	return nil
}

// windowKey hash-tags the identifier so every window of a key lands in the
// same cluster slot, which the script requires.
func windowKey(identifier string, d time.Duration) string {
	return fmt.Sprintf("ratelimit:{%s}:%s", identifier, d)
}
