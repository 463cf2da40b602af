package models

import (
	"time"
)

// DefaultFocusMinutes is the planned length of a focus session when none is given
const DefaultFocusMinutes = 25

// FocusDurationPresets are the session lengths offered to users, in minutes
var FocusDurationPresets = []int{15, 25, 50, 60}

// FocusStatus represents the state of the focus timer
type FocusStatus string

const (
	// FocusStatusIdle indicates no focus session is running
	FocusStatusIdle FocusStatus = "idle"

	// FocusStatusRunning indicates a focus session is in progress
	FocusStatusRunning FocusStatus = "running"
)

// FocusSession is the single focus timer of an account
type FocusSession struct {
	// Running indicates a session is in progress
	Running bool

	// StartedAt is when the running session started; zero while idle
	StartedAt time.Time

	// DurationMinutes is the planned session length
	DurationMinutes int

	// SubjectID is the subject the session is credited to; empty when none
	SubjectID string
}

// IdleFocusSession returns the idle shape, keeping the given planned duration
func IdleFocusSession(durationMinutes int) *FocusSession {
	if durationMinutes <= 0 {
		durationMinutes = DefaultFocusMinutes
	}
	return &FocusSession{
		Running:         false,
		DurationMinutes: durationMinutes,
	}
}

// Status reports whether the session is idle or running.
// A session only counts as running when it also has a start time.
func (s *FocusSession) Status() FocusStatus {
	if s == nil || !s.Running || s.StartedAt.IsZero() {
		return FocusStatusIdle
	}
	return FocusStatusRunning
}

// IsRunning is shorthand for Status() == FocusStatusRunning
func (s *FocusSession) IsRunning() bool {
	return s.Status() == FocusStatusRunning
}

// PlannedDuration returns the planned length as a time.Duration
func (s *FocusSession) PlannedDuration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
