package ratelimit

import (
	"context"
	"time"
)

// RateLimitConfig caps requests per window; a non-positive limit disables
// that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed bool
	// Remaining is how many more requests the tightest window admits.
	Remaining int
	// RetryAfter is set on denials to when the blocking window frees a slot.
	RetryAfter time.Duration
}

// RateLimiter counts a request against every configured window. A request
// is admitted only when all windows have room, and only admitted requests
// are counted.
type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (Decision, error)
	Reset(ctx context.Context, key string) error
}

type window struct {
	duration time.Duration
	limit    int
}

var allWindows = []time.Duration{time.Minute, time.Hour, 24 * time.Hour}

func (c RateLimitConfig) windows() []window {
	limits := []int{c.RequestsPerMinute, c.RequestsPerHour, c.RequestsPerDay}

	active := make([]window, 0, len(limits))
	for i, limit := range limits {
		if limit > 0 {
			active = append(active, window{duration: allWindows[i], limit: limit})
		}
	}
	return active
}
