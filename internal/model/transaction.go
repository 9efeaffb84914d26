// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"time"
)

// TransactionType indicates the flow direction of a transaction.
// The wire values are the Portuguese labels used by storage and CSV files.
type TransactionType string

const (
	// TypePayable represents money owed (contas a pagar).
	TypePayable TransactionType = "PAGAR"
	// TypeReceivable represents money expected (contas a receber).
	TypeReceivable TransactionType = "RECEBER"
)

// ParseTransactionType reports whether s matches a known flow direction.
// The raw value is returned unchanged either way so boundaries can keep
// unrecognized values instead of coercing them.
func ParseTransactionType(s string) (TransactionType, bool) {
	t := TransactionType(s)
	switch t {
	case TypePayable, TypeReceivable:
		return t, true
	}
	return t, false
}

// Status indicates the settlement state of a transaction. PAID is the only
// status with settlement semantics; all others differ in urgency display only.
type Status string

// Transaction status constants.
const (
	StatusPaid      Status = "PAID"
	StatusOpen      Status = "OPEN"
	StatusScheduled Status = "SCHEDULED"
	StatusOverdue   Status = "OVERDUE"
	StatusCancelled Status = "CANCELLED"
	StatusFrozen    Status = "FROZEN"
	StatusOther     Status = "OTHER"
)

// ParseStatus reports whether s matches a known status.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	switch st {
	case StatusPaid, StatusOpen, StatusScheduled, StatusOverdue, StatusCancelled, StatusFrozen, StatusOther:
		return st, true
	}
	return st, false
}

// CategoryKind is a coarse budgeting tag, distinct from the free-text keyword
// categories used by the spend report.
type CategoryKind string

// Category kind constants.
const (
	KindFixed     CategoryKind = "FIXED"
	KindVariable  CategoryKind = "VARIABLE"
	KindRecurring CategoryKind = "RECURRING"
)

// ParseCategoryKind reports whether s matches a known category kind.
func ParseCategoryKind(s string) (CategoryKind, bool) {
	k := CategoryKind(s)
	switch k {
	case KindFixed, KindVariable, KindRecurring:
		return k, true
	}
	return k, false
}

// PaymentMethod indicates how a transaction is settled.
type PaymentMethod string

// Payment method constants.
const (
	MethodPix    PaymentMethod = "PIX"
	MethodBoleto PaymentMethod = "BOLETO"
	MethodCard   PaymentMethod = "CARD"
	MethodCash   PaymentMethod = "CASH"
	MethodOther  PaymentMethod = "OTHER"
)

// ParsePaymentMethod reports whether s matches a known payment method.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	m := PaymentMethod(s)
	switch m {
	case MethodPix, MethodBoleto, MethodCard, MethodCash, MethodOther:
		return m, true
	}
	return m, false
}

// DateLayout is the calendar date format used for due dates and birthdays.
const DateLayout = "2006-01-02"

// Transaction represents a single ledger entry owned by a profile.
type Transaction struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        float64         `json:"amount"`
	DueDate       string          `json:"dueDate"`
	Status        Status          `json:"status"`
	Type          TransactionType `json:"type"`
	CategoryKind  CategoryKind    `json:"categoryKind"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Observation   string          `json:"observation,omitempty"`
}

// Validate checks the invariants required before a transaction is persisted.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if t.Description == "" {
		return fmt.Errorf("%w: missing description", ErrInvalidTransaction)
	}
	if t.Amount < 0 {
		return fmt.Errorf("%w: negative amount %v", ErrInvalidTransaction, t.Amount)
	}
	if _, err := time.Parse(DateLayout, t.DueDate); err != nil {
		return fmt.Errorf("%w: due date %q is not a valid YYYY-MM-DD date", ErrInvalidTransaction, t.DueDate)
	}
	return nil
}
