package habit

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/flowly/internal/repositories/habit Repository

import (
	"context"

	"github.com/KirkDiggler/flowly/internal/models"
)

// Repository defines the interface for habit persistence
type Repository interface {
	// ListHabits returns the account's habits, seeding the defaults on first use
	ListHabits(ctx context.Context, input *ListHabitsInput) ([]*models.Habit, error)

	// CreateHabit appends a habit with a generated id
	CreateHabit(ctx context.Context, input *CreateHabitInput) (*models.Habit, error)

	// UpdateHabit merges a new name and/or category into a habit
	UpdateHabit(ctx context.Context, input *UpdateHabitInput) (*UpdateHabitOutput, error)

	// DeleteHabit removes a habit
	DeleteHabit(ctx context.Context, input *DeleteHabitInput) (*DeleteHabitOutput, error)

	// ResetHabits restores the default habits and clears today's check-offs
	ResetHabits(ctx context.Context, input *ResetHabitsInput) error

	// GetToday returns today's check-off state, starting a new day if none is stored
	GetToday(ctx context.Context, input *GetTodayInput) (*models.HabitsToday, error)

	// ToggleHabitToday checks a habit off for today, or un-checks it
	ToggleHabitToday(ctx context.Context, input *ToggleHabitTodayInput) (*models.HabitsToday, error)
}
