// Package backup implements the full-backup interchange format: one flat
// JSON object mapping every namespaced storage key to its raw stored value.
// Values are carried verbatim, never re-parsed, so a snapshot restores
// byte-for-byte.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/model"
	"github.com/semneura/semneura/internal/storage"
)

// Snapshot captures every key under the namespace prefix as a pretty-printed
// JSON document.
func Snapshot(ctx context.Context, store *storage.SQLiteStore) ([]byte, error) {
	keys, err := store.ListKeys(ctx, storage.Namespace)
	if err != nil {
		return nil, err
	}

	data := make(map[string]string, len(keys))
	for _, k := range keys {
		v, ok, err := store.GetRaw(ctx, k)
		if err != nil {
			return nil, err
		}
		if ok {
			data[k] = v
		}
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return out, nil
}

// Restore replaces the entire namespaced key set with the document's
// contents. The document must be a JSON object containing at least one
// namespaced key; anything else is rejected before any mutation. Pairs with
// empty values are dropped. This is a destructive full-replace, not a merge:
// callers warn the user first and reload in-memory state afterwards.
func Restore(ctx context.Context, store *storage.SQLiteStore, doc []byte) error {
	var data map[string]string
	if err := json.Unmarshal(doc, &data); err != nil {
		return common.NewUserError("arquivo de backup inválido", common.ErrInvalidBackup)
	}

	pairs := make(map[string]string)
	found := false
	for k, v := range data {
		if strings.HasPrefix(k, storage.Namespace) {
			found = true
		}
		if v != "" {
			pairs[k] = v
		}
	}
	if !found {
		return common.NewUserError("arquivo não contém dados do Sem Neura", common.ErrInvalidBackup)
	}

	// delete-then-write happens atomically in the store.
	return store.ReplaceAll(ctx, storage.Namespace, pairs)
}

// FileName returns the date-stamped default backup name,
// e.g. sem_neura_FULL_BACKUP_2026-01-15.json.
func FileName(now time.Time) string {
	return fmt.Sprintf("sem_neura_FULL_BACKUP_%s.json", now.Format(model.DateLayout))
}

// WriteFile snapshots the store to path.
func WriteFile(ctx context.Context, store *storage.SQLiteStore, path string) error {
	doc, err := Snapshot(ctx, store)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, doc, 0600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// RestoreFile restores the store from the document at path.
func RestoreFile(ctx context.Context, store *storage.SQLiteStore, path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}
	return Restore(ctx, store, doc)
}
