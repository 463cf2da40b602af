package focus

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/flowly/internal/common/account"
	"github.com/KirkDiggler/flowly/internal/common/clock"
	"github.com/KirkDiggler/flowly/internal/models"
	dailyRepo "github.com/KirkDiggler/flowly/internal/repositories/daily_minutes"
	sessionRepo "github.com/KirkDiggler/flowly/internal/repositories/focus_session"
	subjectRepo "github.com/KirkDiggler/flowly/internal/repositories/subject"
	weeklyRepo "github.com/KirkDiggler/flowly/internal/repositories/weekly_summary"
)

// Aggregate names reported in StopSessionOutput.FailedAggregates
const (
	AggregateDailyMinutes  = "daily_minutes"
	AggregateSubject       = "subject"
	AggregateWeeklySummary = "weekly_summary"
	AggregateSession       = "session"
)

// Config holds configuration for the focus service
type Config struct {
	// Repository dependencies
	SessionRepo       sessionRepo.Repository
	DailyMinutesRepo  dailyRepo.Repository
	SubjectRepo       subjectRepo.Repository
	WeeklySummaryRepo weeklyRepo.Repository

	// Clock defaults to the system clock
	Clock clock.Clock

	// AccountResolver defaults to account.ContextResolver
	AccountResolver account.Resolver

	// Logger defaults to slog.Default
	Logger *slog.Logger

	// DefaultDurationMinutes is used when a start request gives no duration.
	// Defaults to models.DefaultFocusMinutes.
	DefaultDurationMinutes int
}

// InitializeSessionInput contains parameters for initializing the session
type InitializeSessionInput struct{}

// InitializeSessionOutput contains the result of initializing the session
type InitializeSessionOutput struct {
	Session *models.FocusSession

	// Created is true when the idle session was written by this call
	Created bool
}

// StartSessionInput contains parameters for starting a focus session
type StartSessionInput struct {
	// DurationMinutes is the planned length; 0 uses the default
	DurationMinutes int

	// SubjectID optionally ties the session to a subject
	SubjectID string
}

// StartSessionOutput contains the result of starting a focus session
type StartSessionOutput struct {
	Session *models.FocusSession

	// Replaced is true when a running session was overwritten without crediting
	Replaced bool
}

// StopSessionInput contains parameters for stopping a focus session
type StopSessionInput struct{}

// StopSessionOutput contains the result of stopping a focus session
type StopSessionOutput struct {
	// Stopped is false when no session was running
	Stopped bool

	// CreditedMinutes is the validated minutes credited to the aggregates
	CreditedMinutes int

	// SubjectID is the subject the stopped session was tied to
	SubjectID string

	// SubjectFound is false when the subject no longer exists
	SubjectFound bool

	// FailedAggregates names every aggregate whose write failed
	FailedAggregates []string

	// Session is the state after the stop
	Session *models.FocusSession
}

// GetSessionStateInput contains parameters for reading the session
type GetSessionStateInput struct{}

// GetSessionStateOutput contains the current session
type GetSessionStateOutput struct {
	Session *models.FocusSession

	// Remaining is the planned time left; zero when idle or overdue
	Remaining time.Duration
}

// ResumeSessionInput contains parameters for resuming a session
type ResumeSessionInput struct{}

// ResumeSessionOutput contains the result of resuming a session
type ResumeSessionOutput struct {
	Session *models.FocusSession

	// Remaining is the countdown to show when the session is still running
	Remaining time.Duration

	// AutoStopped is true when the session had run out and was stopped
	AutoStopped bool

	// Stop holds the crediting result when AutoStopped is true
	Stop *StopSessionOutput
}

// ResetSessionInput contains parameters for resetting the session
type ResetSessionInput struct{}
