package weekly_summary

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/flowly/internal/repositories/weekly_summary Repository

import (
	"context"

	"github.com/KirkDiggler/flowly/internal/models"
)

// Repository defines the interface for per-account weekly study history
type Repository interface {
	// AddEntry adds minutes to the entry for a subject, creating it if needed
	AddEntry(ctx context.Context, input *AddEntryInput) (*AddEntryOutput, error)

	// GetSummary returns the account's summary, empty if none was stored
	GetSummary(ctx context.Context, input *GetSummaryInput) (*models.WeeklySummary, error)

	// DeleteSummary removes the account's summary
	DeleteSummary(ctx context.Context, input *DeleteSummaryInput) error
}
