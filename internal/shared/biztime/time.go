// Package biztime provides the clock and business timezone used across the
// application. All storage and transport use UTC; the business timezone only
// drives scheduling.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the default business timezone.
const DefaultTimezone = "UTC"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error

	nowMu   sync.RWMutex
	nowFunc = time.Now
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, initializing the default if needed.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	nowMu.RLock()
	defer nowMu.RUnlock()
	return nowFunc().UTC()
}

// SetClock replaces the clock and returns a function restoring the previous one.
// Intended for tests.
func SetClock(fn func() time.Time) (restore func()) {
	nowMu.Lock()
	prev := nowFunc
	nowFunc = fn
	nowMu.Unlock()
	return func() {
		nowMu.Lock()
		nowFunc = prev
		nowMu.Unlock()
	}
}
