package focus_session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/flowly/internal/repositories/focus_session Repository

import (
	"context"

	"github.com/KirkDiggler/flowly/internal/models"
)

// Repository defines the interface for focus session state persistence
type Repository interface {
	// InitializeState writes the idle state if the account has none yet
	InitializeState(ctx context.Context, input *InitializeStateInput) (*InitializeStateOutput, error)

	// GetState retrieves the account's focus session, materializing the idle state if absent
	GetState(ctx context.Context, input *GetStateInput) (*models.FocusSession, error)

	// SaveState overwrites the account's focus session
	SaveState(ctx context.Context, input *SaveStateInput) error
}
