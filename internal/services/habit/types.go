package habit

import (
	"log/slog"

	"github.com/KirkDiggler/flowly/internal/common/account"
	"github.com/KirkDiggler/flowly/internal/models"
	habitRepo "github.com/KirkDiggler/flowly/internal/repositories/habit"
)

// DefaultHabitCategory is used when a habit is created without a category
const DefaultHabitCategory = "estudo"

// Config holds configuration for the habit service
type Config struct {
	HabitRepo habitRepo.Repository

	// AccountResolver defaults to account.ContextResolver
	AccountResolver account.Resolver

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

type ListHabitsInput struct{}

type ListHabitsOutput struct {
	Habits []*models.Habit
}

type CreateHabitInput struct {
	Name     string
	Category string
}

type CreateHabitOutput struct {
	Habit *models.Habit
}

// UpdateHabitInput contains parameters for updating a habit.
// Nil fields are left unchanged.
type UpdateHabitInput struct {
	HabitID  string
	Name     *string
	Category *string
}

type UpdateHabitOutput struct {
	Habit *models.Habit
	Found bool
}

type DeleteHabitInput struct {
	HabitID string
}

type DeleteHabitOutput struct {
	Found bool
}

type ResetHabitsInput struct{}

type GetTodayInput struct{}

// TodayHabit is a habit with its check-off state for today
type TodayHabit struct {
	Habit     *models.Habit
	Completed bool
}

type GetTodayOutput struct {
	Habits []*TodayHabit

	// CompletedCount is how many of Habits are checked off
	CompletedCount int
}

type ToggleHabitInput struct {
	HabitID string
}

type ToggleHabitOutput struct {
	// Completed is the habit's state after the toggle
	Completed bool

	Today *GetTodayOutput
}
