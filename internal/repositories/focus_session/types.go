package focus_session

import "github.com/KirkDiggler/flowly/internal/models"

// InitializeStateInput contains parameters for initializing the session state
type InitializeStateInput struct {
	AccountID string
}

// InitializeStateOutput contains the result of initializing the session state
type InitializeStateOutput struct {
	// State is the state now in effect
	State *models.FocusSession

	// Created is true when the idle state was written by this call
	Created bool
}

// GetStateInput contains parameters for retrieving the session state
type GetStateInput struct {
	AccountID string
}

// SaveStateInput contains parameters for saving the session state
type SaveStateInput struct {
	AccountID string
	State     *models.FocusSession
}
