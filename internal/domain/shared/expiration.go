// Package shared provides reusable domain logic shared across aggregates.
package shared

import (
	"time"

	"github.com/talento-hq/talento/internal/shared/biztime"
)

// IsExpired checks if the given expiration time has passed.
// Returns false if expiresAt is nil (never expires).
func IsExpired(expiresAt *time.Time) bool {
	if expiresAt == nil {
		return false
	}
	return biztime.NowUTC().After(*expiresAt)
}

// OlderThan returns the cutoff before which a record created at t is stale.
func OlderThan(ttl time.Duration) time.Time {
	return biztime.NowUTC().Add(-ttl)
}
