package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryRateLimiter is the single-instance fallback used when Redis is
// disabled. Each window is a token bucket refilled at limit per window with
// a burst of limit.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	limiters map[string][]*rate.Limiter
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		limiters: make(map[string][]*rate.Limiter),
	}
}

func (l *MemoryRateLimiter) buckets(key string, config RateLimitConfig) []*rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.limiters[key]; ok {
		return b
	}
	var b []*rate.Limiter
	for _, w := range config.windows() {
		every := rate.Every(w.duration / time.Duration(w.limit))
		b = append(b, rate.NewLimiter(every, w.limit))
	}
	l.limiters[key] = b
	return b
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, config RateLimitConfig) (Decision, error) {
	now := time.Now()
	buckets := l.buckets(key, config)

	reservations := make([]*rate.Reservation, 0, len(buckets))
	for _, b := range buckets {
		r := b.ReserveN(now, 1)
		if delay := r.DelayFrom(now); !r.OK() || delay > 0 {
			r.CancelAt(now)
			for _, taken := range reservations {
				taken.CancelAt(now)
			}
			return Decision{RetryAfter: delay}, nil
		}
		reservations = append(reservations, r)
	}

	remaining := -1
	for _, b := range buckets {
		left := int(math.Floor(b.TokensAt(now)))
		if remaining < 0 || left < remaining {
			remaining = left
		}
	}
	return Decision{Allowed: true, Remaining: remaining}, nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.limiters, key)
	return nil
}
