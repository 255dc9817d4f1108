package domain

import "time"

// Status selects tasks by completion or due-date state.
type Status string

const (
	StatusCompleted Status = "completed" // Completed tasks only
	StatusActive    Status = "active"    // Incomplete tasks only
	StatusToday     Status = "today"     // Due on the current calendar day
	StatusUpcoming  Status = "upcoming"  // Due strictly after now
)

// AllStatuses returns all valid status filter values.
func AllStatuses() []Status {
	return []Status{StatusCompleted, StatusActive, StatusToday, StatusUpcoming}
}

// IsValid returns true if the status is a known filter value.
func (s Status) IsValid() bool {
	switch s {
	case StatusCompleted, StatusActive, StatusToday, StatusUpcoming:
		return true
	default:
		return false
	}
}

// Filter is the set of optional constraints applied when listing tasks.
// The zero value matches every task; supplied constraints are ANDed.
// Fields are ordered to minimize memory padding.
type Filter struct {
	CategoryID *int     // Exact category match (normalized via ParseID at the boundary)
	Search     string   // Case-insensitive substring match against the title
	Priority   Priority // Exact priority match
	Status     Status   // Completion / due-date constraint
}

// IsZero returns true if the filter carries no constraints.
func (f Filter) IsZero() bool {
	return f.CategoryID == nil && f.Search == "" && f.Priority == "" && f.Status == ""
}

// Matches reports whether the task satisfies every supplied constraint.
// Omitted constraints never exclude.
func (f Filter) Matches(t *Task, now time.Time) bool {
	if !t.MatchesSearch(f.Search) {
		return false
	}
	if f.CategoryID != nil && !t.InCategory(*f.CategoryID) {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}

	switch f.Status {
	case StatusCompleted:
		return t.Completed
	case StatusActive:
		return !t.Completed
	case StatusToday:
		return Classify(t.DueDate, now) == BucketToday
	case StatusUpcoming:
		return t.DueDate != nil && t.DueDate.After(now)
	}
	return true
}

// FilterTasks returns the tasks matching the filter, preserving input
// order. The input slice is never mutated.
func FilterTasks(tasks []*Task, f Filter, now time.Time) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t, now) {
			out = append(out, t)
		}
	}
	return out
}
