package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/semneura/semneura/internal/model"
)

// Collection accessors follow the write-through policy: a save re-serializes
// the whole collection, and a load reads it fresh. Malformed stored JSON is
// never fatal on the load path; the collection falls back to its empty
// default and the corruption is logged.

func loadCollection[T any](ctx context.Context, s *SQLiteStore, key string) ([]T, error) {
	raw, ok, err := s.GetRaw(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.Warn("Stored collection is malformed, falling back to empty",
			"key", key, "error", err)
		return nil, nil
	}
	return items, nil
}

func saveCollection[T any](ctx context.Context, s *SQLiteStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection for %q: %w", key, err)
	}
	return s.SetRaw(ctx, key, string(data))
}

// LoadTransactions returns the profile's transactions, empty if absent or corrupt.
func (s *SQLiteStore) LoadTransactions(ctx context.Context, profile string) ([]model.Transaction, error) {
	return loadCollection[model.Transaction](ctx, s, Key(profile, CollectionTransactions))
}

// SaveTransactions replaces the profile's stored transaction list.
func (s *SQLiteStore) SaveTransactions(ctx context.Context, profile string, txns []model.Transaction) error {
	return saveCollection(ctx, s, Key(profile, CollectionTransactions), txns)
}

// LoadReminders returns the profile's reminders, empty if absent or corrupt.
func (s *SQLiteStore) LoadReminders(ctx context.Context, profile string) ([]model.Reminder, error) {
	return loadCollection[model.Reminder](ctx, s, Key(profile, CollectionReminders))
}

// SaveReminders replaces the profile's stored reminder list.
func (s *SQLiteStore) SaveReminders(ctx context.Context, profile string, reminders []model.Reminder) error {
	return saveCollection(ctx, s, Key(profile, CollectionReminders), reminders)
}

// LoadBirthdays returns the profile's birthdays, empty if absent or corrupt.
func (s *SQLiteStore) LoadBirthdays(ctx context.Context, profile string) ([]model.Birthday, error) {
	return loadCollection[model.Birthday](ctx, s, Key(profile, CollectionBirthdays))
}

// SaveBirthdays replaces the profile's stored birthday list.
func (s *SQLiteStore) SaveBirthdays(ctx context.Context, profile string, birthdays []model.Birthday) error {
	return saveCollection(ctx, s, Key(profile, CollectionBirthdays), birthdays)
}

// LoadBudgets returns the profile's category budget ceilings, empty if absent
// or corrupt.
func (s *SQLiteStore) LoadBudgets(ctx context.Context, profile string) (map[string]float64, error) {
	key := Key(profile, CollectionBudgets)
	raw, ok, err := s.GetRaw(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]float64{}, nil
	}

	budgets := make(map[string]float64)
	if err := json.Unmarshal([]byte(raw), &budgets); err != nil {
		slog.Warn("Stored budgets are malformed, falling back to empty",
			"key", key, "error", err)
		return map[string]float64{}, nil
	}
	return budgets, nil
}

// SaveBudgets replaces the profile's stored budget map.
func (s *SQLiteStore) SaveBudgets(ctx context.Context, profile string, budgets map[string]float64) error {
	if budgets == nil {
		budgets = map[string]float64{}
	}
	data, err := json.Marshal(budgets)
	if err != nil {
		return fmt.Errorf("failed to encode budgets: %w", err)
	}
	return s.SetRaw(ctx, Key(profile, CollectionBudgets), string(data))
}

// GetSetting returns a profile's string-valued setting ("" if unset).
// Values are stored JSON-encoded; a value that does not decode as a JSON
// string is returned verbatim rather than dropped.
func (s *SQLiteStore) GetSetting(ctx context.Context, profile string, collection Collection) (string, error) {
	raw, ok, err := s.GetRaw(ctx, Key(profile, collection))
	if err != nil || !ok {
		return "", err
	}

	var value string
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw, nil
	}
	return value, nil
}

// SetSetting stores a profile's string-valued setting.
func (s *SQLiteStore) SetSetting(ctx context.Context, profile string, collection Collection, value string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting: %w", err)
	}
	return s.SetRaw(ctx, Key(profile, collection), string(data))
}
