// Package domain contains core business entities and interfaces.
package domain

import (
	"strconv"
	"strings"
	"time"
)

// Task represents a single to-do item managed by taskdeck.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time  `json:"createdAt"`             // Creation time, immutable
	DueDate     *time.Time `json:"dueDate,omitempty"`     // Due date (nil = no due date)
	CompletedAt *time.Time `json:"completedAt,omitempty"` // Set when completed, cleared on reopen
	CategoryID  *int       `json:"categoryId,omitempty"`  // Owning category (nil = uncategorized)
	Title       string     `json:"title"`                 // Title (required)
	Description string     `json:"description,omitempty"` // Description (optional)
	Priority    Priority   `json:"priority"`              // Priority level
	ID          int        `json:"-"`                     // Task ID (stored as map key, not in value)
	Order       int        `json:"order"`                 // Insertion sequence hint
	Completed   bool       `json:"completed"`             // Completion state
}

// InCategory returns true if the task belongs to the given category.
func (t *Task) InCategory(categoryID int) bool {
	return t.CategoryID != nil && *t.CategoryID == categoryID
}

// MatchesSearch returns true if the task title contains the query,
// case-insensitively. An empty query matches every task.
func (t *Task) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(query))
}

// ParseID converts an identifier that crossed a text boundary (CLI flag,
// route parameter, query string) into the canonical integer form. The
// conversion happens exactly once, here; everything past the boundary
// compares plain ints.
func ParseID(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseDueDate parses a due date in RFC3339 or YYYY-MM-DD form.
// Malformed input yields nil rather than an error: a task with an
// unreadable due date is treated as having none.
func ParseDueDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return &t
	}
	return nil
}
