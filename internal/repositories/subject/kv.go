package subject

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
	subjectsAggregate = "subjects"

	// Length of the random part of a subject id
	idSuffixLength = 6
)

// ErrNegativeMinutes is returned when crediting a negative amount
var ErrNegativeMinutes = errors.New("minutes cannot be negative")

// Config holds configuration for the key-value subject repository
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

type kvRepository struct {
	store         kvstore.Store
	clock         clock.Clock
	uuidGenerator uuid.UUID
	prefix        string
	locks         keylock.Locker
}

// subjectRecord is the persisted shape of a subject
type subjectRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	TotalMinutes int    `json:"totalMinutes"`
}

// NewKV creates a new key-value backed subject repository
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

func (r *kvRepository) key(accountID string) string {
	return kvstore.Key(r.prefix, subjectsAggregate, accountID)
}

// ListSubjects returns every subject in insertion order
func (r *kvRepository) ListSubjects(ctx context.Context, input *ListSubjectsInput) ([]*models.Subject, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	return r.read(ctx, r.key(input.AccountID))
}

// CreateSubject appends a new subject with a generated id and zero minutes
func (r *kvRepository) CreateSubject(ctx context.Context, input *CreateSubjectInput) (*models.Subject, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	subject := &models.Subject{
		ID:           r.newID(),
		Name:         input.Name,
		Category:     input.Category,
		TotalMinutes: 0,
	}

	err := r.mutate(ctx, input.AccountID, func(subjects []*models.Subject) ([]*models.Subject, bool) {
		return append(subjects, subject), true
	})
	if err != nil {
		return nil, err
	}

	return subject, nil
}

// UpdateSubject merges a new name and/or category into a subject
func (r *kvRepository) UpdateSubject(ctx context.Context, input *UpdateSubjectInput) (*UpdateSubjectOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	output := &UpdateSubjectOutput{}
	err := r.mutate(ctx, input.AccountID, func(subjects []*models.Subject) ([]*models.Subject, bool) {
		subject := find(subjects, input.SubjectID)
		if subject == nil {
			return subjects, false
		}

		if input.Name != nil {
			subject.Name = *input.Name
		}
		if input.Category != nil {
			subject.Category = *input.Category
		}

		output.Subject = subject
		output.Found = true
		return subjects, true
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// RemoveSubject deletes a subject
func (r *kvRepository) RemoveSubject(ctx context.Context, input *RemoveSubjectInput) (*RemoveSubjectOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	output := &RemoveSubjectOutput{}
	err := r.mutate(ctx, input.AccountID, func(subjects []*models.Subject) ([]*models.Subject, bool) {
		kept := make([]*models.Subject, 0, len(subjects))
		for _, subject := range subjects {
			if subject.ID == input.SubjectID {
				output.Found = true
				continue
			}
			kept = append(kept, subject)
		}
		return kept, output.Found
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// CreditMinutes adds focus minutes to a subject's total
func (r *kvRepository) CreditMinutes(ctx context.Context, input *CreditMinutesInput) (*CreditMinutesOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	if input.Minutes < 0 {
		return nil, ErrNegativeMinutes
	}

	output := &CreditMinutesOutput{}
	err := r.mutate(ctx, input.AccountID, func(subjects []*models.Subject) ([]*models.Subject, bool) {
		subject := find(subjects, input.SubjectID)
		if subject == nil {
			return subjects, false
		}

		subject.TotalMinutes += input.Minutes
		output.Subject = subject
		output.Found = true
		return subjects, true
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// ResetSubjects replaces the registry with an empty list
func (r *kvRepository) ResetSubjects(ctx context.Context, input *ResetSubjectsInput) error {
	if input == nil || input.AccountID == "" {
		return errors.New("input and account ID cannot be empty")
	}

	key := r.key(input.AccountID)
	unlock := r.locks.Lock(key)
	defer unlock()

	return r.write(ctx, key, nil)
}

// mutate runs one read-modify-write cycle under the account's key lock.
// fn reports whether the list changed; unchanged lists are not written back.
func (r *kvRepository) mutate(ctx context.Context, accountID string, fn func([]*models.Subject) ([]*models.Subject, bool)) error {
	key := r.key(accountID)
	unlock := r.locks.Lock(key)
	defer unlock()

	subjects, err := r.read(ctx, key)
	if err != nil {
		return err
	}

	updated, changed := fn(subjects)
	if !changed {
		return nil
	}

	return r.write(ctx, key, updated)
}

func (r *kvRepository) read(ctx context.Context, key string) ([]*models.Subject, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return []*models.Subject{}, nil
		}
		return nil, fmt.Errorf("failed to get subjects: %w", err)
	}

	return decodeSubjects(raw), nil
}

func (r *kvRepository) write(ctx context.Context, key string, subjects []*models.Subject) error {
	records := make([]subjectRecord, 0, len(subjects))
	for _, subject := range subjects {
		records = append(records, subjectRecord{
			ID:           subject.ID,
			Name:         subject.Name,
			Category:     string(subject.Category),
			TotalMinutes: subject.TotalMinutes,
		})
	}

	recordsJSON, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal subjects: %w", err)
	}

	if err := r.store.Set(ctx, key, string(recordsJSON)); err != nil {
		return fmt.Errorf("failed to save subjects: %w", err)
	}

	return nil
}

// newID returns "<unix-millis>-<random suffix>"
func (r *kvRepository) newID() string {
	return strconv.FormatInt(clock.Millis(r.clock), 10) + "-" + uuid.ShortSuffix(r.uuidGenerator, idSuffixLength)
}

func find(subjects []*models.Subject, id string) *models.Subject {
	for _, subject := range subjects {
		if subject.ID == id {
			return subject
		}
	}
	return nil
}

// decodeSubjects coerces the stored list entry by entry. A payload that is
// not a JSON array reads as empty; entries that are not objects are dropped.
func decodeSubjects(raw string) []*models.Subject {
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []*models.Subject{}
	}

	subjects := make([]*models.Subject, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}

		subject := &models.Subject{
			ID:       kvstore.AsText(fields["id"]),
			Name:     kvstore.AsText(fields["name"]),
			Category: models.SubjectCategoryOutros,
		}

		if category, ok := kvstore.AsString(fields["category"]); ok && models.SubjectCategory(category).IsValid() {
			subject.Category = models.SubjectCategory(category)
		}

		if total, ok := kvstore.AsInt(fields["totalMinutes"]); ok && total > 0 {
			subject.TotalMinutes = total
		}

		subjects = append(subjects, subject)
	}

	return subjects
}
