package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/flowly/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Millis returns the clock's current time as milliseconds since the epoch,
// the resolution every persisted timestamp uses.
func Millis(c Clock) int64 {
	return c.Now().UnixMilli()
}

// FromMillis converts a persisted millisecond timestamp back to a time.Time
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}
