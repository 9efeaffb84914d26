// Package ledger implements the operations over one profile's collections:
// transactions, reminders and birthdays. A Service is bound to a single
// profile; profile switching builds a new Service rather than mutating shared
// state.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/model"
	"github.com/semneura/semneura/internal/storage"
)

// Service mutates one profile's data with write-through persistence: every
// mutation re-serializes the affected collection in full.
type Service struct {
	store   *storage.SQLiteStore
	profile string
}

// NewService binds a service to a profile.
func NewService(store *storage.SQLiteStore, profile string) *Service {
	return &Service{store: store, profile: profile}
}

// Profile returns the profile this service operates on.
func (s *Service) Profile() string {
	return s.profile
}

// NewTransaction carries user input for a transaction. Optional fields left
// zero are defaulted at creation.
type NewTransaction struct {
	Description   string
	Amount        float64
	DueDate       string
	Type          model.TransactionType
	Status        model.Status
	CategoryKind  model.CategoryKind
	PaymentMethod model.PaymentMethod
	Observation   string
}

// AddTransaction validates, defaults and persists a new transaction.
// Validation happens before any mutation: no entity is ever created with a
// missing required field.
func (s *Service) AddTransaction(ctx context.Context, in NewTransaction) (model.Transaction, error) {
	txn := model.Transaction{
		ID:            model.NewID(),
		Description:   in.Description,
		Amount:        in.Amount,
		DueDate:       in.DueDate,
		Type:          in.Type,
		Status:        in.Status,
		CategoryKind:  in.CategoryKind,
		PaymentMethod: in.PaymentMethod,
		Observation:   in.Observation,
	}
	if txn.Status == "" {
		txn.Status = model.StatusOpen
	}
	if txn.CategoryKind == "" {
		txn.CategoryKind = model.KindVariable
	}
	if txn.PaymentMethod == "" {
		txn.PaymentMethod = model.MethodPix
	}

	if err := txn.Validate(); err != nil {
		return model.Transaction{}, common.NewUserError("lançamento inválido", err)
	}
	if _, ok := model.ParseTransactionType(string(txn.Type)); !ok {
		return model.Transaction{}, common.NewUserError(
			fmt.Sprintf("tipo de fluxo desconhecido: %q", txn.Type), nil)
	}

	txns, err := s.store.LoadTransactions(ctx, s.profile)
	if err != nil {
		return model.Transaction{}, err
	}
	txns = append(txns, txn)
	if err := s.store.SaveTransactions(ctx, s.profile, txns); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// TogglePaid flips a transaction between PAID and OPEN. This is the only
// status transition available after creation.
func (s *Service) TogglePaid(ctx context.Context, id string) (model.Transaction, error) {
	txns, err := s.store.LoadTransactions(ctx, s.profile)
	if err != nil {
		return model.Transaction{}, err
	}

	for i := range txns {
		if txns[i].ID != id {
			continue
		}
		if txns[i].Status == model.StatusPaid {
			txns[i].Status = model.StatusOpen
		} else {
			txns[i].Status = model.StatusPaid
		}
		if err := s.store.SaveTransactions(ctx, s.profile, txns); err != nil {
			return model.Transaction{}, err
		}
		return txns[i], nil
	}
	return model.Transaction{}, common.NewUserError(
		fmt.Sprintf("lançamento %q não encontrado", id), common.ErrNotFound)
}

// DeleteTransaction removes a transaction by id.
func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	txns, err := s.store.LoadTransactions(ctx, s.profile)
	if err != nil {
		return err
	}

	out := txns[:0]
	found := false
	for _, t := range txns {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		return common.NewUserError(
			fmt.Sprintf("lançamento %q não encontrado", id), common.ErrNotFound)
	}
	return s.store.SaveTransactions(ctx, s.profile, out)
}

// Filter narrows transaction listings. Zero values match everything.
type Filter struct {
	Type   model.TransactionType
	Status model.Status
}

// Transactions lists the profile's transactions, optionally filtered.
func (s *Service) Transactions(ctx context.Context, f Filter) ([]model.Transaction, error) {
	txns, err := s.store.LoadTransactions(ctx, s.profile)
	if err != nil {
		return nil, err
	}

	if f.Type == "" && f.Status == "" {
		return txns, nil
	}
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// ImportMerge appends imported transactions to the profile's list. An
// imported id that collides with an existing one is regenerated so ids stay
// unique within the profile.
func (s *Service) ImportMerge(ctx context.Context, imported []model.Transaction) (int, error) {
	if len(imported) == 0 {
		return 0, nil
	}

	txns, err := s.store.LoadTransactions(ctx, s.profile)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(txns))
	for _, t := range txns {
		seen[t.ID] = true
	}

	for _, t := range imported {
		if seen[t.ID] {
			old := t.ID
			t.ID = model.NewID()
			slog.Warn("Imported id collides with an existing transaction, regenerated",
				"old_id", old, "new_id", t.ID)
		}
		seen[t.ID] = true
		txns = append(txns, t)
	}

	if err := s.store.SaveTransactions(ctx, s.profile, txns); err != nil {
		return 0, err
	}
	return len(imported), nil
}

// AddReminder creates a reminder. Empty text is allowed: reminders are often
// created blank and filled in right after.
func (s *Service) AddReminder(ctx context.Context, text string, priority model.Priority) (model.Reminder, error) {
	if priority == "" {
		priority = model.PriorityMedium
	}
	if _, ok := model.ParsePriority(string(priority)); !ok {
		return model.Reminder{}, common.NewUserError(
			fmt.Sprintf("prioridade desconhecida: %q", priority), nil)
	}

	rem := model.Reminder{
		ID:        model.NewID(),
		Text:      text,
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
	}

	reminders, err := s.store.LoadReminders(ctx, s.profile)
	if err != nil {
		return model.Reminder{}, err
	}
	reminders = append(reminders, rem)
	if err := s.store.SaveReminders(ctx, s.profile, reminders); err != nil {
		return model.Reminder{}, err
	}
	return rem, nil
}

// UpdateReminder edits a reminder's text and priority in place.
func (s *Service) UpdateReminder(ctx context.Context, id, text string, priority model.Priority) error {
	reminders, err := s.store.LoadReminders(ctx, s.profile)
	if err != nil {
		return err
	}
	for i := range reminders {
		if reminders[i].ID != id {
			continue
		}
		reminders[i].Text = text
		if priority != "" {
			if _, ok := model.ParsePriority(string(priority)); !ok {
				return common.NewUserError(
					fmt.Sprintf("prioridade desconhecida: %q", priority), nil)
			}
			reminders[i].Priority = priority
		}
		return s.store.SaveReminders(ctx, s.profile, reminders)
	}
	return common.NewUserError(fmt.Sprintf("lembrete %q não encontrado", id), common.ErrNotFound)
}

// ToggleReminder flips a reminder's completed flag.
func (s *Service) ToggleReminder(ctx context.Context, id string) error {
	reminders, err := s.store.LoadReminders(ctx, s.profile)
	if err != nil {
		return err
	}
	for i := range reminders {
		if reminders[i].ID == id {
			reminders[i].Completed = !reminders[i].Completed
			return s.store.SaveReminders(ctx, s.profile, reminders)
		}
	}
	return common.NewUserError(fmt.Sprintf("lembrete %q não encontrado", id), common.ErrNotFound)
}

// DeleteReminder removes a reminder by id.
func (s *Service) DeleteReminder(ctx context.Context, id string) error {
	reminders, err := s.store.LoadReminders(ctx, s.profile)
	if err != nil {
		return err
	}
	out := reminders[:0]
	found := false
	for _, r := range reminders {
		if r.ID == id {
			found = true
			continue
		}
		out = append(out, r)
	}
	if !found {
		return common.NewUserError(fmt.Sprintf("lembrete %q não encontrado", id), common.ErrNotFound)
	}
	return s.store.SaveReminders(ctx, s.profile, out)
}

// Reminders lists the profile's reminders.
func (s *Service) Reminders(ctx context.Context) ([]model.Reminder, error) {
	return s.store.LoadReminders(ctx, s.profile)
}

// AddBirthday creates a birthday entry. Birthdays are never edited in place.
func (s *Service) AddBirthday(ctx context.Context, name, date string) (model.Birthday, error) {
	if name == "" {
		return model.Birthday{}, common.NewUserError("o nome é obrigatório", model.ErrInvalidBirthday)
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return model.Birthday{}, common.NewUserError(
			fmt.Sprintf("data inválida: %q", date), model.ErrInvalidBirthday)
	}

	bd := model.Birthday{ID: model.NewID(), Name: name, Date: date}
	birthdays, err := s.store.LoadBirthdays(ctx, s.profile)
	if err != nil {
		return model.Birthday{}, err
	}
	birthdays = append(birthdays, bd)
	if err := s.store.SaveBirthdays(ctx, s.profile, birthdays); err != nil {
		return model.Birthday{}, err
	}
	return bd, nil
}

// DeleteBirthday removes a birthday by id.
func (s *Service) DeleteBirthday(ctx context.Context, id string) error {
	birthdays, err := s.store.LoadBirthdays(ctx, s.profile)
	if err != nil {
		return err
	}
	out := birthdays[:0]
	found := false
	for _, b := range birthdays {
		if b.ID == id {
			found = true
			continue
		}
		out = append(out, b)
	}
	if !found {
		return common.NewUserError(fmt.Sprintf("aniversário %q não encontrado", id), common.ErrNotFound)
	}
	return s.store.SaveBirthdays(ctx, s.profile, out)
}

// Birthdays lists the profile's birthdays.
func (s *Service) Birthdays(ctx context.Context) ([]model.Birthday, error) {
	return s.store.LoadBirthdays(ctx, s.profile)
}
