// Package records implements the storage port on top of a byte-level KV store.
package records

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/internal/storage"
)

const (
	recordsPrefix = "records/"
	historyPrefix = "history/"
)

// Repository stores record collections and saved values.
// Read failures are logged and surface as empty collections.
type Repository struct {
	kv    storage.KV
	codec storage.Codec
	log   zerolog.Logger
}

// NewRepository creates a repository
func NewRepository(kv storage.KV, codec storage.Codec, log zerolog.Logger) *Repository {
	return &Repository{
		kv:    kv,
		codec: codec,
		log:   log.With().Str("component", "records").Str("codec", codec.Name()).Logger(),
	}
}

// Load returns a snapshot holding only the collection of kind
func (r *Repository) Load(kind domain.RecordKind) domain.UserData {
	var data domain.UserData
	entries, err := r.kv.List(recordsPrefix + string(kind))
	if err != nil {
		r.log.Error().Err(err).Str("kind", string(kind)).Msg("Failed to load records")
		return data
	}

	switch kind {
	case domain.RecordKindDailyScore:
		data.DailyScores = decodeAll[domain.DailyScore](r, kind, entries)
	case domain.RecordKindWorkout:
		data.Workouts = decodeAll[domain.Workout](r, kind, entries)
	case domain.RecordKindTrade:
		data.Trades = decodeAll[domain.Trade](r, kind, entries)
	case domain.RecordKindJobApplication:
		data.Applications = decodeAll[domain.JobApplication](r, kind, entries)
	case domain.RecordKindExpense:
		data.Expenses = decodeAll[domain.Expense](r, kind, entries)
	default:
		r.log.Warn().Str("kind", string(kind)).Msg("Unknown record kind")
	}
	return data
}

// LoadAll returns every collection
func (r *Repository) LoadAll() domain.UserData {
	var data domain.UserData
	for _, kind := range domain.AllRecordKinds {
		part := r.Load(kind)
		data.DailyScores = append(data.DailyScores, part.DailyScores...)
		data.Workouts = append(data.Workouts, part.Workouts...)
		data.Trades = append(data.Trades, part.Trades...)
		data.Applications = append(data.Applications, part.Applications...)
		data.Expenses = append(data.Expenses, part.Expenses...)
	}
	return data
}

// Append adds a record to the end of its collection
func (r *Repository) Append(kind domain.RecordKind, record any) error {
	if _, ok := domain.ParseRecordKind(string(kind)); !ok {
		return fmt.Errorf("unknown record kind: %s", kind)
	}

	payload, err := r.codec.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", kind, err)
	}
	if err := r.kv.Append(recordsPrefix+string(kind), payload); err != nil {
		return fmt.Errorf("failed to append %s record: %w", kind, err)
	}
	return nil
}

// LoadHistory returns every value saved under key, oldest first
func (r *Repository) LoadHistory(key string) []domain.HistoryEntry {
	entries, err := r.kv.List(historyPrefix + key)
	if err != nil {
		r.log.Error().Err(err).Str("key", key).Msg("Failed to load history")
		return []domain.HistoryEntry{}
	}

	out := make([]domain.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.HistoryEntry{SavedAt: e.CreatedAt, Value: e.Value})
	}
	return out
}

// Save stores value as the latest value of key and appends it to its history
func (r *Repository) Save(key string, value any) error {
	payload, err := r.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.kv.Record(historyPrefix+key, payload); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Latest decodes the most recently saved value of key into v.
// It reports false when nothing was saved yet.
func (r *Repository) Latest(key string, v any) (bool, error) {
	payload, err := r.kv.Get(historyPrefix + key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := r.codec.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// Decode decodes a history entry into v
func (r *Repository) Decode(entry domain.HistoryEntry, v any) error {
	return r.codec.Unmarshal(entry.Value, v)
}

// decodeAll decodes every entry, skipping and logging corrupt ones
func decodeAll[T any](r *Repository, kind domain.RecordKind, entries []storage.Entry) []T {
	out := make([]T, 0, len(entries))
	for i, e := range entries {
		var rec T
		if err := r.codec.Unmarshal(e.Value, &rec); err != nil {
			r.log.Warn().Err(err).Str("kind", string(kind)).Int("index", i).Msg("Skipping undecodable record")
			continue
		}
		out = append(out, rec)
	}
	return out
}
