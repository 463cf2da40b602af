package habit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/flowly/internal/common/clock"
	"github.com/KirkDiggler/flowly/internal/common/keylock"
	"github.com/KirkDiggler/flowly/internal/common/uuid"
	"github.com/KirkDiggler/flowly/internal/kvstore"
	"github.com/KirkDiggler/flowly/internal/models"
)

const (
	habitsAggregate      = "habits"
	habitsTodayAggregate = "habits_today"

	idSuffixLength = 6
)

// Config holds configuration for the key-value habit repository
type Config struct {
	// Store is the durable key-value store
	Store kvstore.Store

	// Clock provides the timestamp part of generated ids
	Clock clock.Clock

	// UUIDGenerator provides the random part of generated ids
	UUIDGenerator uuid.UUID

	// KeyPrefix namespaces keys; defaults to kvstore.DefaultKeyPrefix
	KeyPrefix string
}

// kvRepository keeps the habit list and today's check-offs under two keys.
// Both are guarded by a single lock per account.
type kvRepository struct {
	store         kvstore.Store
	clock         clock.Clock
	uuidGenerator uuid.UUID
	prefix        string
	locks         keylock.Locker
}

type habitRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type todayRecord struct {
	Habits       []habitRecord `json:"habits"`
	CompletedIDs []string      `json:"completedIds"`
}

// NewKV creates a new key-value backed habit repository
func NewKV(cfg *Config) (*kvRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.New()
	}

	return &kvRepository{
		store:         cfg.Store,
		clock:         clk,
		uuidGenerator: gen,
		prefix:        cfg.KeyPrefix,
	}, nil
}

func (r *kvRepository) habitsKey(accountID string) string {
	return kvstore.Key(r.prefix, habitsAggregate, accountID)
}

func (r *kvRepository) todayKey(accountID string) string {
	return kvstore.Key(r.prefix, habitsTodayAggregate, accountID)
}

// ListHabits returns the account's habits, seeding the defaults on first use
func (r *kvRepository) ListHabits(ctx context.Context, input *ListHabitsInput) ([]*models.Habit, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	unlock := r.locks.Lock(input.AccountID)
	defer unlock()

	return r.listHabits(ctx, input.AccountID)
}

// CreateHabit appends a habit with a generated id
func (r *kvRepository) CreateHabit(ctx context.Context, input *CreateHabitInput) (*models.Habit, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	unlock := r.locks.Lock(input.AccountID)
	defer unlock()

	habits, err := r.listHabits(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	habit := &models.Habit{
		ID:       strconv.FormatInt(clock.Millis(r.clock), 10) + "-" + uuid.ShortSuffix(r.uuidGenerator, idSuffixLength),
		Name:     input.Name,
		Category: input.Category,
	}

	if err := r.writeHabits(ctx, input.AccountID, append(habits, habit)); err != nil {
		return nil, err
	}

	return habit, nil
}

// UpdateHabit merges a new name and/or category into a habit
func (r *kvRepository) UpdateHabit(ctx context.Context, input *UpdateHabitInput) (*UpdateHabitOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	unlock := r.locks.Lock(input.AccountID)
	defer unlock()

	habits, err := r.listHabits(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	for _, habit := range habits {
		if habit.ID != input.HabitID {
			continue
		}

		if input.Name != nil {
			habit.Name = *input.Name
		}
		if input.Category != nil {
			habit.Category = *input.Category
		}

		if err := r.writeHabits(ctx, input.AccountID, habits); err != nil {
			return nil, err
		}

		return &UpdateHabitOutput{Habit: habit, Found: true}, nil
	}

	return &UpdateHabitOutput{Found: false}, nil
}

// DeleteHabit removes a habit
func (r *kvRepository) DeleteHabit(ctx context.Context, input *DeleteHabitInput) (*DeleteHabitOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	unlock := r.locks.Lock(input.AccountID)
	defer unlock()

	habits, err := r.listHabits(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	kept := make([]*models.Habit, 0, len(habits))
	for _, habit := range habits {
		if habit.ID != input.HabitID {
			kept = append(kept, habit)
		}
	}

	if len(kept) == len(habits) {
		return &DeleteHabitOutput{Found: false}, nil
	}

	if err := r.writeHabits(ctx, input.AccountID, kept); err != nil {
		return nil, err
	}

	return &DeleteHabitOutput{Found: true}, nil
}

// ResetHabits restores the default habits and clears today's check-offs
func (r *kvRepository) ResetHabits(ctx context.Context, input *ResetHabitsInput) error {
	if input == nil || input.AccountID == "" {
		return errors.New("input and account ID cannot be empty")
	}

	unlock := r.locks.Lock(input.AccountID)
	defer unlock()

	if err := r.writeHabits(ctx, input.AccountID, models.DefaultHabits()); err != nil {
		return err
	}

	if err := r.store.Remove(ctx, r.todayKey(input.AccountID)); err != nil {
		return fmt.Errorf("failed to clear today's habits: %w", err)
	}

	return nil
}

// GetToday returns today's check-off state. A new day starts from the
// current habit list with nothing checked off.
func (r *kvRepository) GetToday(ctx context.Context, input *GetTodayInput) (*models.HabitsToday, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	unlock := r.locks.Lock(input.AccountID)
	defer unlock()

	return r.getToday(ctx, input.AccountID)
}

// ToggleHabitToday checks a habit off for today, or un-checks it
func (r *kvRepository) ToggleHabitToday(ctx context.Context, input *ToggleHabitTodayInput) (*models.HabitsToday, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	if input.HabitID == "" {
		return nil, errors.New("habit ID cannot be empty")
	}

	unlock := r.locks.Lock(input.AccountID)
	defer unlock()

	today, err := r.getToday(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if today.IsCompleted(input.HabitID) {
		completed := make([]string, 0, len(today.CompletedIDs))
		for _, id := range today.CompletedIDs {
			if id != input.HabitID {
				completed = append(completed, id)
			}
		}
		today.CompletedIDs = completed
	} else {
		today.CompletedIDs = append(today.CompletedIDs, input.HabitID)
	}

	if err := r.writeToday(ctx, input.AccountID, today); err != nil {
		return nil, err
	}

	return today, nil
}

// listHabits must be called with the account lock held
func (r *kvRepository) listHabits(ctx context.Context, accountID string) ([]*models.Habit, error) {
	raw, err := r.store.Get(ctx, r.habitsKey(accountID))
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			return nil, fmt.Errorf("failed to get habits: %w", err)
		}

		defaults := models.DefaultHabits()
		if err := r.writeHabits(ctx, accountID, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return models.DefaultHabits(), nil
	}

	return decodeHabits(items), nil
}

// getToday must be called with the account lock held
func (r *kvRepository) getToday(ctx context.Context, accountID string) (*models.HabitsToday, error) {
	raw, err := r.store.Get(ctx, r.todayKey(accountID))
	if err == nil {
		var fields map[string]any
		if err := json.Unmarshal([]byte(raw), &fields); err == nil && fields != nil {
			return decodeToday(fields), nil
		}
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		return nil, fmt.Errorf("failed to get today's habits: %w", err)
	}

	habits, err := r.listHabits(ctx, accountID)
	if err != nil {
		return nil, err
	}

	today := &models.HabitsToday{
		Habits:       habits,
		CompletedIDs: []string{},
	}
	if err := r.writeToday(ctx, accountID, today); err != nil {
		return nil, err
	}

	return today, nil
}

func (r *kvRepository) writeHabits(ctx context.Context, accountID string, habits []*models.Habit) error {
	habitsJSON, err := json.Marshal(encodeHabits(habits))
	if err != nil {
		return fmt.Errorf("failed to marshal habits: %w", err)
	}

	if err := r.store.Set(ctx, r.habitsKey(accountID), string(habitsJSON)); err != nil {
		return fmt.Errorf("failed to save habits: %w", err)
	}

	return nil
}

func (r *kvRepository) writeToday(ctx context.Context, accountID string, today *models.HabitsToday) error {
	record := todayRecord{
		Habits:       encodeHabits(today.Habits),
		CompletedIDs: today.CompletedIDs,
	}
	if record.CompletedIDs == nil {
		record.CompletedIDs = []string{}
	}

	todayJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal today's habits: %w", err)
	}

	if err := r.store.Set(ctx, r.todayKey(accountID), string(todayJSON)); err != nil {
		return fmt.Errorf("failed to save today's habits: %w", err)
	}

	return nil
}

func encodeHabits(habits []*models.Habit) []habitRecord {
	records := make([]habitRecord, 0, len(habits))
	for _, habit := range habits {
		records = append(records, habitRecord{
			ID:       habit.ID,
			Name:     habit.Name,
			Category: habit.Category,
		})
	}
	return records
}

func decodeHabits(items []any) []*models.Habit {
	habits := make([]*models.Habit, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}

		habits = append(habits, &models.Habit{
			ID:       kvstore.AsText(fields["id"]),
			Name:     kvstore.AsText(fields["name"]),
			Category: kvstore.AsText(fields["category"]),
		})
	}
	return habits
}

func decodeToday(fields map[string]any) *models.HabitsToday {
	today := &models.HabitsToday{
		Habits:       []*models.Habit{},
		CompletedIDs: []string{},
	}

	if items, ok := fields["habits"].([]any); ok {
		today.Habits = decodeHabits(items)
	}

	if ids, ok := fields["completedIds"].([]any); ok {
		for _, id := range ids {
			if s, ok := kvstore.AsString(id); ok {
				today.CompletedIDs = append(today.CompletedIDs, s)
			}
		}
	}

	return today
}
