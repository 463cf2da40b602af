package habit

import "context"

// Service defines habit management and the daily check-off list
type Service interface {
	ListHabits(ctx context.Context, input *ListHabitsInput) (*ListHabitsOutput, error)
	CreateHabit(ctx context.Context, input *CreateHabitInput) (*CreateHabitOutput, error)
	UpdateHabit(ctx context.Context, input *UpdateHabitInput) (*UpdateHabitOutput, error)
	DeleteHabit(ctx context.Context, input *DeleteHabitInput) (*DeleteHabitOutput, error)
	ResetHabits(ctx context.Context, input *ResetHabitsInput) error

	// GetToday returns today's habits with their check-off state
	GetToday(ctx context.Context, input *GetTodayInput) (*GetTodayOutput, error)

	// ToggleHabit checks a habit off for today, or un-checks it
	ToggleHabit(ctx context.Context, input *ToggleHabitInput) (*ToggleHabitOutput, error)
}
