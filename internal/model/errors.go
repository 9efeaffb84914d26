package model

import "errors"

// Validation errors shared across boundaries.
var (
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidReminder    = errors.New("invalid reminder")
	ErrInvalidBirthday    = errors.New("invalid birthday")
)
