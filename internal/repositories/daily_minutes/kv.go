package daily_minutes

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/flowly/internal/common/keylock"
	"github.com/KirkDiggler/flowly/internal/kvstore"
)

const todayMinutesAggregate = "today_minutes"

// ErrNegativeMinutes is returned when a write would store a negative total
var ErrNegativeMinutes = errors.New("minutes cannot be negative")

// Config holds configuration for the key-value daily minutes repository
type Config struct {
	// Store is the durable key-value store
	Store kvstore.Store

	// KeyPrefix namespaces keys; defaults to kvstore.DefaultKeyPrefix
	KeyPrefix string
}

type kvRepository struct {
	store  kvstore.Store
	prefix string
	locks  keylock.Locker
}

// NewKV creates a new key-value backed daily minutes repository
func NewKV(cfg *Config) (*kvRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	return &kvRepository{
		store:  cfg.Store,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *kvRepository) key(accountID string) string {
	return kvstore.Key(r.prefix, todayMinutesAggregate, accountID)
}

// GetMinutes returns today's minutes, 0 if absent or unparsable
func (r *kvRepository) GetMinutes(ctx context.Context, input *GetMinutesInput) (int, error) {
	if input == nil || input.AccountID == "" {
		return 0, errors.New("input and account ID cannot be empty")
	}

	return r.read(ctx, r.key(input.AccountID))
}

// SetMinutes overwrites today's minutes
func (r *kvRepository) SetMinutes(ctx context.Context, input *SetMinutesInput) error {
	if input == nil || input.AccountID == "" {
		return errors.New("input and account ID cannot be empty")
	}

	if input.Minutes < 0 {
		return ErrNegativeMinutes
	}

	key := r.key(input.AccountID)
	unlock := r.locks.Lock(key)
	defer unlock()

	return r.write(ctx, key, input.Minutes)
}

// AddMinutes reads the current total, adds the amount and writes it back
func (r *kvRepository) AddMinutes(ctx context.Context, input *AddMinutesInput) (int, error) {
	if input == nil || input.AccountID == "" {
		return 0, errors.New("input and account ID cannot be empty")
	}

	if input.Minutes < 0 {
		return 0, ErrNegativeMinutes
	}

	key := r.key(input.AccountID)
	unlock := r.locks.Lock(key)
	defer unlock()

	current, err := r.read(ctx, key)
	if err != nil {
		return 0, err
	}

	total := current + input.Minutes
	if err := r.write(ctx, key, total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *kvRepository) read(ctx context.Context, key string) (int, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get today minutes: %w", err)
	}

	return parseMinutes(raw), nil
}

func (r *kvRepository) write(ctx context.Context, key string, minutes int) error {
	if err := r.store.Set(ctx, key, strconv.Itoa(minutes)); err != nil {
		return fmt.Errorf("failed to save today minutes: %w", err)
	}
	return nil
}

// parseMinutes reads the leading decimal integer of raw.
// Anything without one, and any negative value, counts as 0.
func parseMinutes(raw string) int {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
