package habit

import "github.com/KirkDiggler/flowly/internal/models"

// ListHabitsInput contains parameters for listing habits
type ListHabitsInput struct {
	AccountID string
}

// CreateHabitInput contains parameters for creating a habit
type CreateHabitInput struct {
	AccountID string
	Name      string
	Category  string
}

// UpdateHabitInput contains parameters for updating a habit.
// Nil fields are left unchanged.
type UpdateHabitInput struct {
	AccountID string
	HabitID   string
	Name      *string
	Category  *string
}

// UpdateHabitOutput contains the result of updating a habit
type UpdateHabitOutput struct {
	Habit *models.Habit
	Found bool
}

// DeleteHabitInput contains parameters for deleting a habit
type DeleteHabitInput struct {
	AccountID string
	HabitID   string
}

// DeleteHabitOutput contains the result of deleting a habit
type DeleteHabitOutput struct {
	Found bool
}

// ResetHabitsInput contains parameters for resetting habits
type ResetHabitsInput struct {
	AccountID string
}

// GetTodayInput contains parameters for reading today's check-offs
type GetTodayInput struct {
	AccountID string
}

// ToggleHabitTodayInput contains parameters for toggling a check-off
type ToggleHabitTodayInput struct {
	AccountID string
	HabitID   string
}
