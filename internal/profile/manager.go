// Package profile manages the named data partitions and tracks which one is
// active. Each profile owns isolated copies of every collection; switching
// profiles swaps the entire visible dataset.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/storage"
)

// DefaultName is the reserved profile that always exists and cannot be deleted.
const DefaultName = "Principal"

// Manager reads and mutates the profile registry. It is an explicit context
// object: callers hold one instead of consulting ambient global state.
type Manager struct {
	store *storage.SQLiteStore
}

// NewManager creates a profile manager over the given store.
func NewManager(store *storage.SQLiteStore) *Manager {
	return &Manager{store: store}
}

// List returns the registered profile names. The default profile is always
// present; a missing or corrupt registry degrades to just the default.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	raw, ok, err := m.store.GetRaw(ctx, storage.KeyProfilesList)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{DefaultName}, nil
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		slog.Warn("Profile registry is malformed, falling back to default",
			"error", err)
		return []string{DefaultName}, nil
	}

	for _, n := range names {
		if n == DefaultName {
			return names, nil
		}
	}
	return append([]string{DefaultName}, names...), nil
}

// Active returns the currently active profile name.
func (m *Manager) Active(ctx context.Context) (string, error) {
	raw, ok, err := m.store.GetRaw(ctx, storage.KeyCurrentProfile)
	if err != nil {
		return "", err
	}
	if !ok {
		return DefaultName, nil
	}

	var name string
	if err := json.Unmarshal([]byte(raw), &name); err != nil {
		return DefaultName, nil
	}
	if name == "" {
		return DefaultName, nil
	}
	return name, nil
}

// Create registers a new empty profile.
func (m *Manager) Create(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return common.NewUserError("profile name cannot be empty", nil)
	}

	names, err := m.List(ctx)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return common.NewUserError(fmt.Sprintf("profile %q already exists", name), common.ErrProfileExists)
		}
	}

	return m.saveList(ctx, append(names, name))
}

// Switch makes the named profile active. The profile must exist.
func (m *Manager) Switch(ctx context.Context, name string) error {
	names, err := m.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, n := range names {
		if n == name {
			found = true
			break
		}
	}
	if !found {
		return common.NewUserError(fmt.Sprintf("profile %q does not exist", name), common.ErrUnknownProfile)
	}

	data, err := json.Marshal(name)
	if err != nil {
		return fmt.Errorf("failed to encode profile name: %w", err)
	}
	return m.store.SetRaw(ctx, storage.KeyCurrentProfile, string(data))
}

// Delete removes a profile and everything it owns. Deleting the default
// profile or the last remaining profile is refused without mutating anything.
func (m *Manager) Delete(ctx context.Context, name string) error {
	if name == DefaultName {
		return common.NewUserError(fmt.Sprintf("profile %q is reserved and cannot be deleted", DefaultName), common.ErrProfileReserved)
	}

	names, err := m.List(ctx)
	if err != nil {
		return err
	}
	if len(names) <= 1 {
		return common.NewUserError("cannot delete the last remaining profile", common.ErrLastProfile)
	}

	remaining := make([]string, 0, len(names))
	found := false
	for _, n := range names {
		if n == name {
			found = true
			continue
		}
		remaining = append(remaining, n)
	}
	if !found {
		return common.NewUserError(fmt.Sprintf("profile %q does not exist", name), common.ErrUnknownProfile)
	}

	// Delete exactly the keys this profile owns. A prefix scan would also
	// hit profiles whose name extends this one ("casa" vs "casa_praia").
	for _, c := range storage.Collections {
		if err := m.store.Delete(ctx, storage.Key(name, c)); err != nil {
			return err
		}
	}
	if err := m.saveList(ctx, remaining); err != nil {
		return err
	}

	// If the deleted profile was active, fall back to the default.
	active, err := m.Active(ctx)
	if err != nil {
		return err
	}
	if active == name {
		return m.Switch(ctx, DefaultName)
	}
	return nil
}

func (m *Manager) saveList(ctx context.Context, names []string) error {
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to encode profile registry: %w", err)
	}
	return m.store.SetRaw(ctx, storage.KeyProfilesList, string(data))
}
