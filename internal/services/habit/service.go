package habit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/flowly/internal/common/account"
	"github.com/KirkDiggler/flowly/internal/common/logging"
	"github.com/KirkDiggler/flowly/internal/models"
	habitRepo "github.com/KirkDiggler/flowly/internal/repositories/habit"
)

const serviceName = "habit"

type service struct {
	habitRepo habitRepo.Repository
	accounts  account.Resolver
	logger    *slog.Logger
}

// New creates a new habit service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.HabitRepo == nil {
		return nil, ErrNilHabitRepo
	}

	accounts := cfg.AccountResolver
	if accounts == nil {
		accounts = account.ContextResolver{}
	}

	return &service{
		habitRepo: cfg.HabitRepo,
		accounts:  accounts,
		logger:    cfg.Logger,
	}, nil
}

func (s *service) ListHabits(ctx context.Context, input *ListHabitsInput) (*ListHabitsOutput, error) {
	habits, err := s.habitRepo.ListHabits(ctx, &habitRepo.ListHabitsInput{
		AccountID: account.OrLocal(ctx, s.accounts),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	return &ListHabitsOutput{Habits: habits}, nil
}

func (s *service) CreateHabit(ctx context.Context, input *CreateHabitInput) (*CreateHabitOutput, error) {
	if input == nil {
		return nil, ErrInvalidHabitName
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidHabitName
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = DefaultHabitCategory
	}

	habit, err := s.habitRepo.CreateHabit(ctx, &habitRepo.CreateHabitInput{
		AccountID: account.OrLocal(ctx, s.accounts),
		Name:      name,
		Category:  category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{Habit: habit}, nil
}

func (s *service) UpdateHabit(ctx context.Context, input *UpdateHabitInput) (*UpdateHabitOutput, error) {
	if input == nil {
		return &UpdateHabitOutput{}, nil
	}

	update := &habitRepo.UpdateHabitInput{
		AccountID: account.OrLocal(ctx, s.accounts),
		HabitID:   input.HabitID,
		Category:  input.Category,
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidHabitName
		}
		update.Name = &name
	}

	output, err := s.habitRepo.UpdateHabit(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &UpdateHabitOutput{Habit: output.Habit, Found: output.Found}, nil
}

func (s *service) DeleteHabit(ctx context.Context, input *DeleteHabitInput) (*DeleteHabitOutput, error) {
	if input == nil {
		return &DeleteHabitOutput{}, nil
	}

	output, err := s.habitRepo.DeleteHabit(ctx, &habitRepo.DeleteHabitInput{
		AccountID: account.OrLocal(ctx, s.accounts),
		HabitID:   input.HabitID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete habit: %w", err)
	}

	return &DeleteHabitOutput{Found: output.Found}, nil
}

// ResetHabits restores the default habits and clears today's check-offs
func (s *service) ResetHabits(ctx context.Context, input *ResetHabitsInput) error {
	accountID := account.OrLocal(ctx, s.accounts)

	if err := s.habitRepo.ResetHabits(ctx, &habitRepo.ResetHabitsInput{AccountID: accountID}); err != nil {
		return fmt.Errorf("failed to reset habits: %w", err)
	}

	logging.ServiceLogger(ctx, s.logger, serviceName, "ResetHabits", "account", accountID).
		Info("habits reset to defaults")

	return nil
}

// GetToday returns today's habits with their check-off state
func (s *service) GetToday(ctx context.Context, input *GetTodayInput) (*GetTodayOutput, error) {
	today, err := s.habitRepo.GetToday(ctx, &habitRepo.GetTodayInput{
		AccountID: account.OrLocal(ctx, s.accounts),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get today's habits: %w", err)
	}

	return todayOutput(today), nil
}

// ToggleHabit checks a habit off for today, or un-checks it. Only habits on
// today's list can be toggled.
func (s *service) ToggleHabit(ctx context.Context, input *ToggleHabitInput) (*ToggleHabitOutput, error) {
	if input == nil || input.HabitID == "" {
		return nil, ErrHabitNotFound
	}

	accountID := account.OrLocal(ctx, s.accounts)

	today, err := s.habitRepo.GetToday(ctx, &habitRepo.GetTodayInput{AccountID: accountID})
	if err != nil {
		return nil, fmt.Errorf("failed to get today's habits: %w", err)
	}

	if !onList(today, input.HabitID) {
		return nil, ErrHabitNotFound
	}

	toggled, err := s.habitRepo.ToggleHabitToday(ctx, &habitRepo.ToggleHabitTodayInput{
		AccountID: accountID,
		HabitID:   input.HabitID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle habit: %w", err)
	}

	return &ToggleHabitOutput{
		Completed: toggled.IsCompleted(input.HabitID),
		Today:     todayOutput(toggled),
	}, nil
}

func onList(today *models.HabitsToday, habitID string) bool {
	for _, habit := range today.Habits {
		if habit.ID == habitID {
			return true
		}
	}
	return false
}

func todayOutput(today *models.HabitsToday) *GetTodayOutput {
	output := &GetTodayOutput{
		Habits: make([]*TodayHabit, 0, len(today.Habits)),
	}

	for _, habit := range today.Habits {
		completed := today.IsCompleted(habit.ID)
		if completed {
			output.CompletedCount++
		}
		output.Habits = append(output.Habits, &TodayHabit{
			Habit:     habit,
			Completed: completed,
		})
	}

	return output
}
