package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talento-hq/talento/internal/shared/biztime"
)

// DefaultWebhookEventTTL covers the gateway's redelivery window.
const DefaultWebhookEventTTL = 72 * time.Hour

// RedisWebhookEventStore records processed gateway event IDs.
type RedisWebhookEventStore struct {
	client *redis.Client
	prefix string        // Key prefix, e.g., "webhook:event:"
	ttl    time.Duration // Expiration time for event keys
}

// NewRedisWebhookEventStore creates a new RedisWebhookEventStore instance
func NewRedisWebhookEventStore(client *redis.Client, prefix string, ttl time.Duration) *RedisWebhookEventStore {
	return &RedisWebhookEventStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Seen reports whether the event was marked processed.
func (s *RedisWebhookEventStore) Seen(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return false, errors.New("event id cannot be empty")
	}
	n, err := s.client.Exists(ctx, s.buildKey(eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check webhook event in redis: %w", err)
	}
	return n > 0, nil
}

// MarkProcessed stores the event ID with the processing time.
func (s *RedisWebhookEventStore) MarkProcessed(ctx context.Context, eventID string) error {
	if eventID == "" {
		return errors.New("event id cannot be empty")
	}
	err := s.client.Set(ctx, s.buildKey(eventID), biztime.NowUTC().Unix(), s.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store webhook event in redis: %w", err)
	}
	return nil
}

func (s *RedisWebhookEventStore) buildKey(eventID string) string {
	return s.prefix + eventID
}
