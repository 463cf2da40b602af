package focus

import "context"

// Service defines the focus session state machine
type Service interface {
	// InitializeSession materializes the idle session if the account has none
	InitializeSession(ctx context.Context, input *InitializeSessionInput) (*InitializeSessionOutput, error)

	// StartSession begins a focus session, replacing any running one
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// StopSession ends the running session and credits its minutes
	StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error)

	// GetSessionState returns the current session
	GetSessionState(ctx context.Context, input *GetSessionStateInput) (*GetSessionStateOutput, error)

	// ResumeSession recovers a session after a restart, stopping it if it has run out
	ResumeSession(ctx context.Context, input *ResumeSessionInput) (*ResumeSessionOutput, error)

	// ResetSession forces the idle state without crediting anything
	ResetSession(ctx context.Context, input *ResetSessionInput) error
}
