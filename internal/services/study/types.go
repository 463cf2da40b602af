package study

import (
	"log/slog"

	"github.com/KirkDiggler/flowly/internal/common/account"
	"github.com/KirkDiggler/flowly/internal/common/clock"
	"github.com/KirkDiggler/flowly/internal/models"
	dailyRepo "github.com/KirkDiggler/flowly/internal/repositories/daily_minutes"
	sessionRepo "github.com/KirkDiggler/flowly/internal/repositories/focus_session"
	subjectRepo "github.com/KirkDiggler/flowly/internal/repositories/subject"
	weeklyRepo "github.com/KirkDiggler/flowly/internal/repositories/weekly_summary"
)

// Labels used in the weekly report for entries without a known subject
const (
	UnknownSubjectLabel    = "Unknown subject"
	NoSpecificSubjectLabel = "No specific subject"
)

// Config holds configuration for the study service
type Config struct {
	// Repository dependencies
	SessionRepo       sessionRepo.Repository
	DailyMinutesRepo  dailyRepo.Repository
	SubjectRepo       subjectRepo.Repository
	WeeklySummaryRepo weeklyRepo.Repository

	// Clock stamps empty weekly summaries; defaults to the system clock
	Clock clock.Clock

	// AccountResolver defaults to account.ContextResolver
	AccountResolver account.Resolver

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// ListSubjectsInput contains parameters for listing subjects
type ListSubjectsInput struct{}

// ListSubjectsOutput contains the account's subjects
type ListSubjectsOutput struct {
	Subjects []*models.Subject
}

// CreateSubjectInput contains parameters for creating a subject
type CreateSubjectInput struct {
	Name     string
	Category models.SubjectCategory
}

// CreateSubjectOutput contains the created subject
type CreateSubjectOutput struct {
	Subject *models.Subject
}

// UpdateSubjectInput contains parameters for updating a subject.
// Nil fields are left unchanged.
type UpdateSubjectInput struct {
	SubjectID string
	Name      *string
	Category  *models.SubjectCategory
}

// UpdateSubjectOutput contains the result of updating a subject
type UpdateSubjectOutput struct {
	// Subject is nil when not found
	Subject *models.Subject
	Found   bool
}

// RemoveSubjectInput contains parameters for removing a subject
type RemoveSubjectInput struct {
	SubjectID string
}

// RemoveSubjectOutput contains the result of removing a subject
type RemoveSubjectOutput struct {
	Found bool
}

// GetTodayMinutesInput contains parameters for reading today's minutes
type GetTodayMinutesInput struct{}

// GetTodayMinutesOutput contains today's minutes
type GetTodayMinutesOutput struct {
	Minutes int
}

// GetWeeklySummaryInput contains parameters for reading the weekly summary
type GetWeeklySummaryInput struct{}

// GetWeeklySummaryOutput contains the weekly summary
type GetWeeklySummaryOutput struct {
	Summary *models.WeeklySummary
}

// GetWeeklyReportInput contains parameters for building the weekly report
type GetWeeklyReportInput struct{}

// WeeklyReportEntry is one labeled line of the weekly report
type WeeklyReportEntry struct {
	// SubjectID is empty for time not tied to a subject
	SubjectID string

	// Label is the subject name or a placeholder
	Label string

	// Category is empty when the subject is unknown
	Category models.SubjectCategory

	Minutes int
}

// GetWeeklyReportOutput contains the weekly report
type GetWeeklyReportOutput struct {
	// Entries are sorted by minutes, most first
	Entries []*WeeklyReportEntry

	TotalMinutes int
	Summary      *models.WeeklySummary
}

// ResetAccountInput contains parameters for resetting an account
type ResetAccountInput struct{}
