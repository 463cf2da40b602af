package weekly_summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/flowly/internal/common/clock"
	"github.com/KirkDiggler/flowly/internal/common/keylock"
	"github.com/KirkDiggler/flowly/internal/kvstore"
	"github.com/KirkDiggler/flowly/internal/models"
)

const weeklySummaryAggregate = "weekly_summary"

// Config holds configuration for the key-value weekly summary repository
type Config struct {
	// Store is the durable key-value store
	Store kvstore.Store

	// Clock stamps updatedAt
	Clock clock.Clock

	// KeyPrefix namespaces keys; defaults to kvstore.DefaultKeyPrefix
	KeyPrefix string
}

type kvRepository struct {
	store  kvstore.Store
	clock  clock.Clock
	prefix string
	locks  keylock.Locker
}

type summaryRecord struct {
	Subjects  []entryRecord `json:"subjects"`
	UpdatedAt int64         `json:"updatedAt"`
}

type entryRecord struct {
	SubjectID *string `json:"subjectId"`
	Minutes   int     `json:"minutes"`
}

// NewKV creates a new key-value backed weekly summary repository
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

	return &kvRepository{
		store:  cfg.Store,
		clock:  clk,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *kvRepository) key(accountID string) string {
	return kvstore.Key(r.prefix, weeklySummaryAggregate, accountID)
}

// AddEntry adds minutes to the entry for a subject, creating it if needed.
// Non-positive minutes are a no-op.
func (r *kvRepository) AddEntry(ctx context.Context, input *AddEntryInput) (*AddEntryOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	if input.Minutes <= 0 {
		return &AddEntryOutput{Applied: false}, nil
	}

	key := r.key(input.AccountID)
	unlock := r.locks.Lock(key)
	defer unlock()

	summary, err := r.read(ctx, key)
	if err != nil {
		return nil, err
	}

	var existing *models.WeeklySubjectMinutes
	for _, entry := range summary.Subjects {
		if entry.SubjectID == input.SubjectID {
			existing = entry
			break
		}
	}

	if existing != nil {
		existing.Minutes += input.Minutes
	} else {
		summary.Subjects = append(summary.Subjects, &models.WeeklySubjectMinutes{
			SubjectID: input.SubjectID,
			Minutes:   input.Minutes,
		})
	}
	summary.UpdatedAt = r.now()

	if err := r.write(ctx, key, summary); err != nil {
		return nil, err
	}

	return &AddEntryOutput{
		Summary: summary,
		Applied: true,
	}, nil
}

// GetSummary returns the account's summary, empty if none was stored
func (r *kvRepository) GetSummary(ctx context.Context, input *GetSummaryInput) (*models.WeeklySummary, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	return r.read(ctx, r.key(input.AccountID))
}

// DeleteSummary removes the account's summary
func (r *kvRepository) DeleteSummary(ctx context.Context, input *DeleteSummaryInput) error {
	if input == nil || input.AccountID == "" {
		return errors.New("input and account ID cannot be empty")
	}

	key := r.key(input.AccountID)
	unlock := r.locks.Lock(key)
	defer unlock()

	if err := r.store.Remove(ctx, key); err != nil {
		return fmt.Errorf("failed to delete weekly summary: %w", err)
	}

	return nil
}

// now is truncated to the persisted resolution so reads match writes
func (r *kvRepository) now() time.Time {
	return r.clock.Now().Truncate(time.Millisecond)
}

func (r *kvRepository) read(ctx context.Context, key string) (*models.WeeklySummary, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return r.empty(), nil
		}
		return nil, fmt.Errorf("failed to get weekly summary: %w", err)
	}

	return r.decodeSummary(raw), nil
}

func (r *kvRepository) write(ctx context.Context, key string, summary *models.WeeklySummary) error {
	record := summaryRecord{
		Subjects:  make([]entryRecord, 0, len(summary.Subjects)),
		UpdatedAt: summary.UpdatedAt.UnixMilli(),
	}

	for _, entry := range summary.Subjects {
		item := entryRecord{Minutes: entry.Minutes}
		if entry.SubjectID != "" {
			subjectID := entry.SubjectID
			item.SubjectID = &subjectID
		}
		record.Subjects = append(record.Subjects, item)
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly summary: %w", err)
	}

	if err := r.store.Set(ctx, key, string(recordJSON)); err != nil {
		return fmt.Errorf("failed to save weekly summary: %w", err)
	}

	return nil
}

func (r *kvRepository) empty() *models.WeeklySummary {
	return &models.WeeklySummary{
		Subjects:  []*models.WeeklySubjectMinutes{},
		UpdatedAt: r.now(),
	}
}

// decodeSummary coerces the stored summary entry by entry. Entries that
// coerce to the same subject id are merged so each id appears once.
func (r *kvRepository) decodeSummary(raw string) *models.WeeklySummary {
	summary := r.empty()

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return summary
	}

	if updatedAt, ok := kvstore.AsInt64(fields["updatedAt"]); ok {
		summary.UpdatedAt = clock.FromMillis(updatedAt)
	}

	items, _ := fields["subjects"].([]any)
	index := make(map[string]*models.WeeklySubjectMinutes, len(items))
	for _, item := range items {
		entryFields, _ := item.(map[string]any)

		subjectID, _ := kvstore.AsString(entryFields["subjectId"])
		minutes, ok := kvstore.AsInt(entryFields["minutes"])
		if !ok || minutes < 0 {
			minutes = 0
		}

		if existing, ok := index[subjectID]; ok {
			existing.Minutes += minutes
			continue
		}

		entry := &models.WeeklySubjectMinutes{
			SubjectID: subjectID,
			Minutes:   minutes,
		}
		index[subjectID] = entry
		summary.Subjects = append(summary.Subjects, entry)
	}

	return summary
}
