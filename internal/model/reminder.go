package model

import "time"

// Priority indicates the urgency of a reminder.
type Priority string

// Reminder priority constants.
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParsePriority reports whether s matches a known priority.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(s)
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	}
	return p, false
}

// Reminder is a free-form note. Text may be empty at creation, pending the
// user's immediate edit.
type Reminder struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Priority  Priority  `json:"priority"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Birthday is a named calendar date. The year may be a placeholder.
type Birthday struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}
