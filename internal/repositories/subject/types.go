package subject

import "github.com/KirkDiggler/flowly/internal/models"

// ListSubjectsInput contains parameters for listing subjects
type ListSubjectsInput struct {
	AccountID string
}

// CreateSubjectInput contains parameters for creating a subject
type CreateSubjectInput struct {
	AccountID string
	Name      string
	Category  models.SubjectCategory
}

// UpdateSubjectInput contains parameters for updating a subject.
// Nil fields are left unchanged.
type UpdateSubjectInput struct {
	AccountID string
	SubjectID string
	Name      *string
	Category  *models.SubjectCategory
}

// UpdateSubjectOutput contains the result of updating a subject
type UpdateSubjectOutput struct {
	// Subject is the updated subject, nil when not found
	Subject *models.Subject

	// Found is false when no subject has the id
	Found bool
}

// RemoveSubjectInput contains parameters for removing a subject
type RemoveSubjectInput struct {
	AccountID string
	SubjectID string
}

// RemoveSubjectOutput contains the result of removing a subject
type RemoveSubjectOutput struct {
	Found bool
}

// CreditMinutesInput contains parameters for crediting a subject
type CreditMinutesInput struct {
	AccountID string
	SubjectID string
	Minutes   int
}

// CreditMinutesOutput contains the result of crediting a subject
type CreditMinutesOutput struct {
	// Subject is the credited subject, nil when not found
	Subject *models.Subject

	// Found is false when no subject has the id
	Found bool
}

// ResetSubjectsInput contains parameters for resetting the registry
type ResetSubjectsInput struct {
	AccountID string
}
