package study

import "context"

// Service defines subject management and study progress reporting
type Service interface {
	// ListSubjects returns the account's subjects in creation order
	ListSubjects(ctx context.Context, input *ListSubjectsInput) (*ListSubjectsOutput, error)

	// CreateSubject adds a subject
	CreateSubject(ctx context.Context, input *CreateSubjectInput) (*CreateSubjectOutput, error)

	// UpdateSubject renames and/or recategorizes a subject
	UpdateSubject(ctx context.Context, input *UpdateSubjectInput) (*UpdateSubjectOutput, error)

	// RemoveSubject deletes a subject
	RemoveSubject(ctx context.Context, input *RemoveSubjectInput) (*RemoveSubjectOutput, error)

	// GetTodayMinutes returns the minutes studied today
	GetTodayMinutes(ctx context.Context, input *GetTodayMinutesInput) (*GetTodayMinutesOutput, error)

	// GetWeeklySummary returns the raw per-subject weekly history
	GetWeeklySummary(ctx context.Context, input *GetWeeklySummaryInput) (*GetWeeklySummaryOutput, error)

	// GetWeeklyReport returns the weekly history labeled with subject names
	GetWeeklyReport(ctx context.Context, input *GetWeeklyReportInput) (*GetWeeklyReportOutput, error)

	// ResetAccount clears every study aggregate of the account
	ResetAccount(ctx context.Context, input *ResetAccountInput) error
}
