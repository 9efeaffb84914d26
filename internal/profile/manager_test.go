package profile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/model"
	"github.com/semneura/semneura/internal/storage"
)

func newTestManager(t *testing.T) (*Manager, *storage.SQLiteStore) {
	t.Helper()
	store, err := storage.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewManager(store), store
}

func TestManager_DefaultAlwaysPresent(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	names, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 1 || names[0] != DefaultName {
		t.Errorf("fresh store should list only the default profile, got %v", names)
	}

	active, err := m.Active(ctx)
	if err != nil || active != DefaultName {
		t.Errorf("fresh store active = %q, %v; want %q", active, err, DefaultName)
	}
}

func TestManager_CreateSwitchDelete(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	if err := m.Create(ctx, "Trabalho"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := m.Create(ctx, "Trabalho"); !errors.Is(err, common.ErrProfileExists) {
		t.Errorf("duplicate create: got %v, want ErrProfileExists", err)
	}
	if err := m.Create(ctx, "  "); err == nil {
		t.Error("blank name should be rejected")
	}

	if err := m.Switch(ctx, "Trabalho"); err != nil {
		t.Fatalf("Switch failed: %v", err)
	}
	active, _ := m.Active(ctx)
	if active != "Trabalho" {
		t.Errorf("active = %q, want Trabalho", active)
	}

	if err := m.Switch(ctx, "Inexistente"); !errors.Is(err, common.ErrUnknownProfile) {
		t.Errorf("switch to unknown: got %v", err)
	}

	// Deleting the active profile falls back to the default.
	if err := m.Delete(ctx, "Trabalho"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	active, _ = m.Active(ctx)
	if active != DefaultName {
		t.Errorf("active after deleting active profile = %q, want %q", active, DefaultName)
	}
}

func TestManager_DefaultProfileProtection(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	if err := store.SaveTransactions(ctx, DefaultName, []model.Transaction{{
		ID: "abc123xyz", Description: "Luz", Amount: 100, DueDate: "2026-01-10",
		Status: model.StatusOpen, Type: model.TypePayable,
		CategoryKind: model.KindFixed, PaymentMethod: model.MethodPix,
	}}); err != nil {
		t.Fatal(err)
	}

	if err := m.Delete(ctx, DefaultName); !errors.Is(err, common.ErrProfileReserved) {
		t.Errorf("deleting default: got %v, want ErrProfileReserved", err)
	}

	// The refusal is a no-op: the data is untouched.
	txns, err := store.LoadTransactions(ctx, DefaultName)
	if err != nil || len(txns) != 1 {
		t.Errorf("default profile data mutated by refused delete: %v, %v", txns, err)
	}

	names, _ := m.List(ctx)
	if len(names) != 1 {
		t.Errorf("registry mutated by refused delete: %v", names)
	}
}

func TestManager_DeleteRemovesOnlyThatProfile(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	if err := m.Create(ctx, "Casa"); err != nil {
		t.Fatal(err)
	}

	mk := func(profile string) {
		if err := store.SaveTransactions(ctx, profile, []model.Transaction{{
			ID: "id" + profile, Description: "Conta " + profile, Amount: 10,
			DueDate: "2026-02-01", Status: model.StatusOpen, Type: model.TypePayable,
			CategoryKind: model.KindVariable, PaymentMethod: model.MethodPix,
		}}); err != nil {
			t.Fatal(err)
		}
	}
	mk(DefaultName)
	mk("Casa")

	if err := m.Delete(ctx, "Casa"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	keys, err := store.ListKeys(ctx, storage.ProfilePrefix("Casa"))
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Errorf("deleted profile still owns keys: %v", keys)
	}

	txns, _ := store.LoadTransactions(ctx, DefaultName)
	if len(txns) != 1 {
		t.Error("deleting one profile touched another profile's data")
	}
}

func TestManager_DeleteSparesPrefixSharingProfiles(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	// "Casa" is a key prefix of "Casa_Praia"; deleting the former must not
	// reach into the latter.
	if err := m.Create(ctx, "Casa"); err != nil {
		t.Fatal(err)
	}
	if err := m.Create(ctx, "Casa_Praia"); err != nil {
		t.Fatal(err)
	}

	if err := store.SaveTransactions(ctx, "Casa_Praia", []model.Transaction{{
		ID: "tx1", Description: "Aluguel da praia", Amount: 900,
		DueDate: "2026-02-01", Status: model.StatusOpen, Type: model.TypePayable,
		CategoryKind: model.KindFixed, PaymentMethod: model.MethodPix,
	}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetSetting(ctx, "Casa_Praia", storage.CollectionTheme, "sunset"); err != nil {
		t.Fatal(err)
	}

	if err := m.Delete(ctx, "Casa"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	txns, err := store.LoadTransactions(ctx, "Casa_Praia")
	if err != nil {
		t.Fatal(err)
	}
	if len(txns) != 1 {
		t.Fatalf("deleting %q erased %q's transactions", "Casa", "Casa_Praia")
	}
	theme, err := store.GetSetting(ctx, "Casa_Praia", storage.CollectionTheme)
	if err != nil || theme != "sunset" {
		t.Errorf("deleting %q erased %q's settings: theme = %q, %v", "Casa", "Casa_Praia", theme, err)
	}
}

func TestManager_CorruptRegistryFallsBack(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	if err := store.SetRaw(ctx, storage.KeyProfilesList, "{bad"); err != nil {
		t.Fatal(err)
	}

	names, err := m.List(ctx)
	if err != nil {
		t.Fatalf("corrupt registry must not error: %v", err)
	}
	if len(names) != 1 || names[0] != DefaultName {
		t.Errorf("got %v, want just the default", names)
	}
}
