package daily_minutes

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/flowly/internal/repositories/daily_minutes Repository

import (
	"context"
)

// Repository defines the interface for the minutes-studied-today counter
type Repository interface {
	// GetMinutes returns today's minutes, 0 if absent or unparsable
	GetMinutes(ctx context.Context, input *GetMinutesInput) (int, error)

	// SetMinutes overwrites today's minutes
	SetMinutes(ctx context.Context, input *SetMinutesInput) error

	// AddMinutes adds to today's minutes and returns the new total
	AddMinutes(ctx context.Context, input *AddMinutesInput) (int, error)
}
