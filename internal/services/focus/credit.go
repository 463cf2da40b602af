package focus

import (
	"time"

	"github.com/KirkDiggler/flowly/internal/models"
)

// CreditedMinutes converts the time between start and now into the minutes a
// session earns: whole elapsed minutes, never negative and never more than
// the planned duration.
func CreditedMinutes(startedAt, now time.Time, durationMinutes int) int {
	if durationMinutes <= 0 {
		durationMinutes = models.DefaultFocusMinutes
	}

	elapsedMs := now.UnixMilli() - startedAt.UnixMilli()
	if elapsedMs <= 0 {
		return 0
	}

	elapsed := int(elapsedMs / int64(time.Minute/time.Millisecond))
	if elapsed > durationMinutes {
		return durationMinutes
	}
	return elapsed
}

// RemainingTime is the planned time left in a running session, counted in
// whole seconds. It is zero or negative once the session has run out.
func RemainingTime(session *models.FocusSession, now time.Time) time.Duration {
	if !session.IsRunning() {
		return 0
	}

	elapsedSec := (now.UnixMilli() - session.StartedAt.UnixMilli()) / 1000
	return session.PlannedDuration() - time.Duration(elapsedSec)*time.Second
}
