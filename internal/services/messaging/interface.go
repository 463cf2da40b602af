package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetSessionStartedMessage returns a message for when a focus session starts
	GetSessionStartedMessage(ctx context.Context, input *GetSessionStartedMessageInput) (*GetSessionStartedMessageOutput, error)

	// GetSessionStoppedMessage returns a message for when a focus session ends
	GetSessionStoppedMessage(ctx context.Context, input *GetSessionStoppedMessageInput) (*GetSessionStoppedMessageOutput, error)

	// GetSummaryMessage returns a comment on the account's progress
	GetSummaryMessage(ctx context.Context, input *GetSummaryMessageInput) (*GetSummaryMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
