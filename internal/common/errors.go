// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Profile errors.
	ErrProfileExists    = errors.New("profile already exists")
	ErrProfileReserved  = errors.New("the default profile cannot be deleted")
	ErrLastProfile      = errors.New("at least one profile must exist")
	ErrUnknownProfile   = errors.New("unknown profile")

	// Interchange errors.
	ErrEmptyExport   = errors.New("no transactions to export")
	ErrInvalidBackup = errors.New("file does not contain sem-neura data")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
