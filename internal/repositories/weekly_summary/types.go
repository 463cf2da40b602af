package weekly_summary

import "github.com/KirkDiggler/flowly/internal/models"

// AddEntryInput contains parameters for crediting the weekly summary
type AddEntryInput struct {
	AccountID string

	// SubjectID is the credited subject; empty credits the entry for time
	// not tied to any subject
	SubjectID string

	Minutes int
}

// AddEntryOutput contains the result of crediting the weekly summary
type AddEntryOutput struct {
	// Summary is the summary after the credit, nil when nothing was applied
	Summary *models.WeeklySummary

	// Applied is false when the credit was a no-op
	Applied bool
}

// GetSummaryInput contains parameters for reading the weekly summary
type GetSummaryInput struct {
	AccountID string
}

// DeleteSummaryInput contains parameters for deleting the weekly summary
type DeleteSummaryInput struct {
	AccountID string
}
