package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/semneura/semneura/internal/model"
)

// Helper function to create test storage.
func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStore(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_RawRoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.GetRaw(ctx, "sn_missing"); err != nil || ok {
		t.Fatalf("absent key: got ok=%v err=%v, want false,nil", ok, err)
	}

	if err := store.SetRaw(ctx, "sn_test_theme", `"emerald"`); err != nil {
		t.Fatalf("SetRaw failed: %v", err)
	}

	got, ok, err := store.GetRaw(ctx, "sn_test_theme")
	if err != nil || !ok {
		t.Fatalf("GetRaw failed: ok=%v err=%v", ok, err)
	}
	if got != `"emerald"` {
		t.Errorf("got %q, want %q", got, `"emerald"`)
	}

	// Overwrite replaces the value.
	if err := store.SetRaw(ctx, "sn_test_theme", `"sunset"`); err != nil {
		t.Fatalf("SetRaw overwrite failed: %v", err)
	}
	got, _, _ = store.GetRaw(ctx, "sn_test_theme")
	if got != `"sunset"` {
		t.Errorf("got %q after overwrite, want %q", got, `"sunset"`)
	}

	if err := store.Delete(ctx, "sn_test_theme"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.GetRaw(ctx, "sn_test_theme"); ok {
		t.Error("key still present after delete")
	}

	// Deleting an absent key is not an error.
	if err := store.Delete(ctx, "sn_test_theme"); err != nil {
		t.Errorf("deleting absent key: %v", err)
	}
}

func TestSQLiteStore_ListKeys(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	for k, v := range map[string]string{
		"sn_a_transactions": "[]",
		"sn_a_reminders":    "[]",
		"sn_b_transactions": "[]",
		"other_key":         "x",
	} {
		if err := store.SetRaw(ctx, k, v); err != nil {
			t.Fatalf("SetRaw(%q) failed: %v", k, err)
		}
	}

	keys, err := store.ListKeys(ctx, "sn_a_")
	if err != nil {
		t.Fatalf("ListKeys failed: %v", err)
	}
	want := []string{"sn_a_reminders", "sn_a_transactions"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("ListKeys = %v, want %v", keys, want)
	}

	keys, _ = store.ListKeys(ctx, "sn_")
	if len(keys) != 3 {
		t.Errorf("namespace scan = %v, want 3 keys", keys)
	}
}

func TestSQLiteStore_LikePatternEscaping(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	// "_" is a LIKE wildcard; an unescaped prefix would match snXfoo too.
	if err := store.SetRaw(ctx, "snXfoo", "1"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetRaw(ctx, "sn_foo", "2"); err != nil {
		t.Fatal(err)
	}

	keys, err := store.ListKeys(ctx, "sn_")
	if err != nil {
		t.Fatalf("ListKeys failed: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"sn_foo"}) {
		t.Errorf("ListKeys = %v, want [sn_foo]", keys)
	}
}

func TestSQLiteStore_ReplaceAll(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_ = store.SetRaw(ctx, "sn_old_transactions", "[]")
	_ = store.SetRaw(ctx, "unrelated", "keep")

	err := store.ReplaceAll(ctx, "sn_", map[string]string{
		"sn_new_transactions": `[{"id":"x"}]`,
		"sn_new_theme":        `"classic"`,
	})
	if err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	if _, ok, _ := store.GetRaw(ctx, "sn_old_transactions"); ok {
		t.Error("old namespaced key survived ReplaceAll")
	}
	if v, ok, _ := store.GetRaw(ctx, "sn_new_transactions"); !ok || v != `[{"id":"x"}]` {
		t.Errorf("new key missing or wrong: %q", v)
	}
	if _, ok, _ := store.GetRaw(ctx, "unrelated"); !ok {
		t.Error("key outside the namespace was removed")
	}
}

func TestSQLiteStore_Collections(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	txns := []model.Transaction{
		{
			ID:            "abc123xyz",
			Description:   `Aluguel, "Apto 101"`,
			Amount:        1500,
			DueDate:       "2026-01-05",
			Status:        model.StatusOpen,
			Type:          model.TypePayable,
			CategoryKind:  model.KindFixed,
			PaymentMethod: model.MethodBoleto,
		},
	}

	if err := store.SaveTransactions(ctx, "Principal", txns); err != nil {
		t.Fatalf("SaveTransactions failed: %v", err)
	}
	got, err := store.LoadTransactions(ctx, "Principal")
	if err != nil {
		t.Fatalf("LoadTransactions failed: %v", err)
	}
	if !reflect.DeepEqual(got, txns) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, txns)
	}

	// Missing collection loads as empty, never errors.
	got, err = store.LoadTransactions(ctx, "Trabalho")
	if err != nil {
		t.Fatalf("LoadTransactions on missing profile failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d items", len(got))
	}
}

func TestSQLiteStore_MalformedJSONFallsBackToEmpty(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	if err := store.SetRaw(ctx, Key("Principal", CollectionTransactions), "{not json"); err != nil {
		t.Fatal(err)
	}

	got, err := store.LoadTransactions(ctx, "Principal")
	if err != nil {
		t.Fatalf("malformed JSON must not error the load path: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty fallback, got %d items", len(got))
	}

	if err := store.SetRaw(ctx, Key("Principal", CollectionBudgets), "[1,2,3]"); err != nil {
		t.Fatal(err)
	}
	budgets, err := store.LoadBudgets(ctx, "Principal")
	if err != nil {
		t.Fatalf("malformed budgets must not error: %v", err)
	}
	if len(budgets) != 0 {
		t.Errorf("expected empty budget fallback, got %v", budgets)
	}
}

func TestSQLiteStore_Settings(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	if v, err := store.GetSetting(ctx, "Principal", CollectionTheme); err != nil || v != "" {
		t.Fatalf("unset setting: got %q, %v", v, err)
	}

	if err := store.SetSetting(ctx, "Principal", CollectionTheme, "midnight"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	v, err := store.GetSetting(ctx, "Principal", CollectionTheme)
	if err != nil || v != "midnight" {
		t.Fatalf("got %q, %v; want midnight", v, err)
	}

	// A legacy raw (non-JSON) value is returned verbatim.
	if err := store.SetRaw(ctx, Key("Principal", CollectionScriptURL), "https://example.com/hook"); err != nil {
		t.Fatal(err)
	}
	v, err = store.GetSetting(ctx, "Principal", CollectionScriptURL)
	if err != nil || v != "https://example.com/hook" {
		t.Fatalf("raw setting: got %q, %v", v, err)
	}
}

func TestKeyDerivation(t *testing.T) {
	if got := Key("Principal", CollectionTransactions); got != "sn_Principal_transactions" {
		t.Errorf("Key = %q", got)
	}
	if got := ProfilePrefix("Casa"); got != "sn_Casa_" {
		t.Errorf("ProfilePrefix = %q", got)
	}
	if KeyProfilesList != "sn_profiles_list_v1" || KeyCurrentProfile != "sn_current_profile_active" {
		t.Error("profile-management keys changed")
	}
}
