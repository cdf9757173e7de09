// Package biztime provides time utilities with an explicit business timezone.
// All storage and comparison use UTC; the business timezone only matters for
// date boundaries (opening-schedule exceptions are civil dates).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Europe/Paris"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Europe/Paris.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, initializing with the
// default timezone when Init was never called.
func Location() *time.Location {
	if err := Init(""); err != nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current business-timezone calendar day as a
// midnight-UTC value, suitable for civil-date comparisons.
func Today() time.Time {
	local := NowUTC().In(Location())
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the UTC instant at which the business-timezone day
// containing t begins.
func StartOfDay(t time.Time) time.Time {
	local := t.In(Location())
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, Location()).UTC()
}
