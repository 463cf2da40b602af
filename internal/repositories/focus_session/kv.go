package focus_session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/flowly/internal/common/clock"
	"github.com/KirkDiggler/flowly/internal/kvstore"
	"github.com/KirkDiggler/flowly/internal/models"
)

// Aggregate name used in the storage key
const sessionAggregate = "session"

// Config holds configuration for the key-value focus session repository
type Config struct {
	// Store is the durable key-value store
	Store kvstore.Store

	// KeyPrefix namespaces keys; defaults to kvstore.DefaultKeyPrefix
	KeyPrefix string
}

// kvRepository implements the Repository interface on a kvstore.Store
type kvRepository struct {
	store  kvstore.Store
	prefix string
}

// sessionRecord is the persisted shape of a focus session
type sessionRecord struct {
	IsRunning       bool    `json:"isRunning"`
	StartedAt       *int64  `json:"startedAt"`
	DurationMinutes int     `json:"durationMinutes"`
	SubjectID       *string `json:"subjectId"`
}

// NewKV creates a new key-value backed focus session repository
func NewKV(cfg *Config) (*kvRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = kvstore.DefaultKeyPrefix
	}

	return &kvRepository{
		store:  cfg.Store,
		prefix: prefix,
	}, nil
}

func (r *kvRepository) key(accountID string) string {
	return kvstore.Key(r.prefix, sessionAggregate, accountID)
}

// InitializeState writes the idle state if the account has none yet.
// This is the only place the default state is constructed and persisted.
func (r *kvRepository) InitializeState(ctx context.Context, input *InitializeStateInput) (*InitializeStateOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	key := r.key(input.AccountID)
	raw, err := r.store.Get(ctx, key)
	if err == nil {
		return &InitializeStateOutput{
			State:   decodeState(raw),
			Created: false,
		}, nil
	}

	if !errors.Is(err, kvstore.ErrNotFound) {
		return nil, fmt.Errorf("failed to get focus session: %w", err)
	}

	idle := models.IdleFocusSession(models.DefaultFocusMinutes)
	if err := r.write(ctx, key, idle); err != nil {
		return nil, err
	}

	return &InitializeStateOutput{
		State:   idle,
		Created: true,
	}, nil
}

// GetState retrieves the account's focus session, materializing the idle state if absent
func (r *kvRepository) GetState(ctx context.Context, input *GetStateInput) (*models.FocusSession, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	output, err := r.InitializeState(ctx, &InitializeStateInput{
		AccountID: input.AccountID,
	})
	if err != nil {
		return nil, err
	}

	return output.State, nil
}

// SaveState overwrites the account's focus session
func (r *kvRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	if input.AccountID == "" {
		return errors.New("account ID cannot be empty")
	}

	return r.write(ctx, r.key(input.AccountID), input.State)
}

func (r *kvRepository) write(ctx context.Context, key string, state *models.FocusSession) error {
	recordJSON, err := json.Marshal(encodeState(state))
	if err != nil {
		return fmt.Errorf("failed to marshal focus session: %w", err)
	}

	if err := r.store.Set(ctx, key, string(recordJSON)); err != nil {
		return fmt.Errorf("failed to save focus session: %w", err)
	}

	return nil
}

func encodeState(state *models.FocusSession) *sessionRecord {
	record := &sessionRecord{
		DurationMinutes: state.DurationMinutes,
	}

	if state.IsRunning() {
		startedAt := state.StartedAt.UnixMilli()
		record.IsRunning = true
		record.StartedAt = &startedAt
	}

	if state.SubjectID != "" {
		subjectID := state.SubjectID
		record.SubjectID = &subjectID
	}

	return record
}

// decodeState coerces a stored payload field by field. An unparsable payload
// yields the idle state rather than an error.
func decodeState(raw string) *models.FocusSession {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return models.IdleFocusSession(models.DefaultFocusMinutes)
	}

	state := &models.FocusSession{
		Running:         kvstore.Truthy(fields["isRunning"]),
		DurationMinutes: models.DefaultFocusMinutes,
	}

	if startedAt, ok := kvstore.AsInt64(fields["startedAt"]); ok {
		state.StartedAt = clock.FromMillis(startedAt)
	}

	if duration, ok := kvstore.AsInt(fields["durationMinutes"]); ok && duration > 0 {
		state.DurationMinutes = duration
	}

	if subjectID, ok := kvstore.AsString(fields["subjectId"]); ok {
		state.SubjectID = subjectID
	}

	// Running iff a start time is present
	if !state.IsRunning() {
		state.Running = false
		state.StartedAt = time.Time{}
	}

	return state
}
