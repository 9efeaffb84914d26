package ledger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/model"
	"github.com/semneura/semneura/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.SQLiteStore) {
	t.Helper()
	store, err := storage.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store, "Principal"), store
}

func TestAddTransaction_DefaultsAndValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	txn, err := svc.AddTransaction(ctx, NewTransaction{
		Description: "Luz",
		Amount:      150.5,
		DueDate:     "2026-01-10",
		Type:        model.TypePayable,
	})
	require.NoError(t, err)
	assert.Len(t, txn.ID, 9)
	assert.Equal(t, model.StatusOpen, txn.Status)
	assert.Equal(t, model.KindVariable, txn.CategoryKind)
	assert.Equal(t, model.MethodPix, txn.PaymentMethod)

	// Any status may be set at creation, not just OPEN.
	frozen, err := svc.AddTransaction(ctx, NewTransaction{
		Description: "Financiamento",
		Amount:      900,
		DueDate:     "2026-02-01",
		Type:        model.TypePayable,
		Status:      model.StatusFrozen,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusFrozen, frozen.Status)

	rejects := []NewTransaction{
		{Description: "", Amount: 10, DueDate: "2026-01-10", Type: model.TypePayable},
		{Description: "x", Amount: -5, DueDate: "2026-01-10", Type: model.TypePayable},
		{Description: "x", Amount: 10, DueDate: "10/01/2026", Type: model.TypePayable},
		{Description: "x", Amount: 10, DueDate: "2026-01-10", Type: "TRANSFER"},
	}
	for _, in := range rejects {
		_, err := svc.AddTransaction(ctx, in)
		require.Error(t, err)
		var userErr *common.UserError
		assert.True(t, errors.As(err, &userErr), "validation failures are user errors: %v", err)
	}

	// Rejected inputs never mutate the collection.
	txns, err := svc.Transactions(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestTogglePaid(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	txn, err := svc.AddTransaction(ctx, NewTransaction{
		Description: "Internet", Amount: 99.9, DueDate: "2026-01-20", Type: model.TypePayable,
	})
	require.NoError(t, err)

	got, err := svc.TogglePaid(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, got.Status)

	got, err = svc.TogglePaid(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOpen, got.Status)

	// Toggling any non-PAID status settles it; toggling back yields OPEN,
	// not the original status.
	frozen, err := svc.AddTransaction(ctx, NewTransaction{
		Description: "Parcela", Amount: 10, DueDate: "2026-01-20",
		Type: model.TypePayable, Status: model.StatusFrozen,
	})
	require.NoError(t, err)
	got, err = svc.TogglePaid(ctx, frozen.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, got.Status)

	_, err = svc.TogglePaid(ctx, "nope12345")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestDeleteTransaction(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	txn, err := svc.AddTransaction(ctx, NewTransaction{
		Description: "Mercado", Amount: 200, DueDate: "2026-01-15", Type: model.TypePayable,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(ctx, txn.ID))
	txns, _ := svc.Transactions(ctx, Filter{})
	assert.Empty(t, txns)

	err = svc.DeleteTransaction(ctx, txn.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestTransactions_Filter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, in := range []NewTransaction{
		{Description: "Luz", Amount: 100, DueDate: "2026-01-10", Type: model.TypePayable},
		{Description: "Cliente A", Amount: 500, DueDate: "2026-01-12", Type: model.TypeReceivable},
		{Description: "Agua", Amount: 60, DueDate: "2026-01-14", Type: model.TypePayable, Status: model.StatusPaid},
	} {
		_, err := svc.AddTransaction(ctx, in)
		require.NoError(t, err)
	}

	payables, err := svc.Transactions(ctx, Filter{Type: model.TypePayable})
	require.NoError(t, err)
	assert.Len(t, payables, 2)

	paid, err := svc.Transactions(ctx, Filter{Type: model.TypePayable, Status: model.StatusPaid})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "Agua", paid[0].Description)
}

func TestImportMerge_RegeneratesCollidingIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	existing, err := svc.AddTransaction(ctx, NewTransaction{
		Description: "Luz", Amount: 100, DueDate: "2026-01-10", Type: model.TypePayable,
	})
	require.NoError(t, err)

	imported := []model.Transaction{
		{ID: existing.ID, Description: "Importado", Amount: 50, DueDate: "2026-02-01",
			Status: model.StatusOpen, Type: model.TypePayable,
			CategoryKind: model.KindVariable, PaymentMethod: model.MethodPix},
		{ID: "fresh1234", Description: "Outro", Amount: 70, DueDate: "2026-02-02",
			Status: model.StatusOpen, Type: model.TypePayable,
			CategoryKind: model.KindVariable, PaymentMethod: model.MethodPix},
	}

	n, err := svc.ImportMerge(ctx, imported)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	txns, _ := svc.Transactions(ctx, Filter{})
	require.Len(t, txns, 3)

	ids := make(map[string]bool)
	for _, txn := range txns {
		assert.False(t, ids[txn.ID], "ids must stay unique within the profile")
		ids[txn.ID] = true
	}
}

func TestReminderLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Empty text is allowed at creation.
	rem, err := svc.AddReminder(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, model.PriorityMedium, rem.Priority)
	assert.False(t, rem.CreatedAt.IsZero())

	require.NoError(t, svc.UpdateReminder(ctx, rem.ID, "pagar boleto", model.PriorityHigh))
	require.NoError(t, svc.ToggleReminder(ctx, rem.ID))

	reminders, err := svc.Reminders(ctx)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "pagar boleto", reminders[0].Text)
	assert.Equal(t, model.PriorityHigh, reminders[0].Priority)
	assert.True(t, reminders[0].Completed)

	require.NoError(t, svc.DeleteReminder(ctx, rem.ID))
	err = svc.DeleteReminder(ctx, rem.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = svc.AddReminder(ctx, "x", "URGENTISSIMO")
	assert.Error(t, err, "unknown priority is rejected")
}

func TestBirthdayLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	bd, err := svc.AddBirthday(ctx, "Maria", "1990-06-15")
	require.NoError(t, err)

	_, err = svc.AddBirthday(ctx, "", "1990-06-15")
	assert.Error(t, err)
	_, err = svc.AddBirthday(ctx, "José", "15/06")
	assert.Error(t, err)

	birthdays, err := svc.Birthdays(ctx)
	require.NoError(t, err)
	require.Len(t, birthdays, 1)

	require.NoError(t, svc.DeleteBirthday(ctx, bd.ID))
	err = svc.DeleteBirthday(ctx, bd.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSummarize(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, in := range []NewTransaction{
		{Description: "Luz", Amount: 100, DueDate: "2026-01-10", Type: model.TypePayable, Status: model.StatusPaid},
		{Description: "Agua", Amount: 60, DueDate: "2026-01-14", Type: model.TypePayable},
		{Description: "Conta atrasada", Amount: 40, DueDate: "2025-12-01", Type: model.TypePayable, Status: model.StatusOverdue},
		{Description: "Cliente A", Amount: 500, DueDate: "2026-01-12", Type: model.TypeReceivable, Status: model.StatusPaid},
		{Description: "Cliente B", Amount: 300, DueDate: "2026-01-25", Type: model.TypeReceivable},
	} {
		_, err := svc.AddTransaction(ctx, in)
		require.NoError(t, err)
	}

	sum, err := svc.Summarize(ctx)
	require.NoError(t, err)

	assert.True(t, sum.TotalPayable.Equal(decimal.NewFromInt(200)))
	assert.True(t, sum.TotalReceivable.Equal(decimal.NewFromInt(800)))
	// Only PAID counts as realized; OVERDUE and OPEN do not.
	assert.True(t, sum.PaidPayable.Equal(decimal.NewFromInt(100)))
	assert.True(t, sum.PaidReceivable.Equal(decimal.NewFromInt(500)))
	assert.True(t, sum.ProjectedBalance.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, 2, sum.OpenPayableCount)
	assert.Equal(t, 5, sum.TransactionCount)
}

func TestProfileIsolationThroughService(t *testing.T) {
	_, store := newTestService(t)
	ctx := context.Background()

	a := NewService(store, "Principal")
	b := NewService(store, "Trabalho")

	_, err := a.AddTransaction(ctx, NewTransaction{
		Description: "Luz", Amount: 100, DueDate: "2026-01-10", Type: model.TypePayable,
	})
	require.NoError(t, err)

	txns, err := b.Transactions(ctx, Filter{})
	require.NoError(t, err)
	assert.Empty(t, txns, "writes to one profile must never be visible in another")
}
