package subject

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/flowly/internal/repositories/subject Repository

import (
	"context"

	"github.com/KirkDiggler/flowly/internal/models"
)

// Repository defines the interface for the subject registry.
// Lookups by id that miss are reported through Found flags, never as errors.
type Repository interface {
	// ListSubjects returns every subject in insertion order
	ListSubjects(ctx context.Context, input *ListSubjectsInput) ([]*models.Subject, error)

	// CreateSubject appends a new subject with a generated id and zero minutes
	CreateSubject(ctx context.Context, input *CreateSubjectInput) (*models.Subject, error)

	// UpdateSubject merges a new name and/or category into a subject
	UpdateSubject(ctx context.Context, input *UpdateSubjectInput) (*UpdateSubjectOutput, error)

	// RemoveSubject deletes a subject
	RemoveSubject(ctx context.Context, input *RemoveSubjectInput) (*RemoveSubjectOutput, error)

	// CreditMinutes adds focus minutes to a subject's total
	CreditMinutes(ctx context.Context, input *CreditMinutesInput) (*CreditMinutesOutput, error)

	// ResetSubjects replaces the registry with an empty list
	ResetSubjects(ctx context.Context, input *ResetSubjectsInput) error
}
