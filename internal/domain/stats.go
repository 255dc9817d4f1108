package domain

import (
	"math"
	"time"
)

// Stats summarizes a task collection.
// Fields are ordered to minimize memory padding.
type Stats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Active         int `json:"active"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completionRate"` // Percentage, 0-100
}

// Groups partitions tasks by due-date bucket. Every task lands in
// exactly one group; the union of all groups equals the input.
type Groups struct {
	Overdue  []*Task `json:"overdue"`
	Today    []*Task `json:"today"`
	Tomorrow []*Task `json:"tomorrow"`
	ThisWeek []*Task `json:"thisWeek"`
	Later    []*Task `json:"later"`
	NoDate   []*Task `json:"noDate"`
}

// Summarize derives aggregate counts from a task snapshot. Overdue
// counts incomplete tasks whose due date is strictly before now
// (instant comparison, not calendar-day). An empty snapshot yields a
// zero completion rate, never a division by zero.
func Summarize(tasks []*Task, now time.Time) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		if t.DueDate != nil && t.DueDate.Before(now) {
			s.Overdue++
		}
	}
	s.Active = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
	}
	return s
}

// GroupByDueDate partitions tasks into due-date buckets anchored at the
// start of now's calendar day. Input order is preserved within each
// bucket; the input slice is never mutated.
func GroupByDueDate(tasks []*Task, now time.Time) Groups {
	var g Groups
	for _, t := range tasks {
		switch Classify(t.DueDate, now) {
		case BucketOverdue:
			g.Overdue = append(g.Overdue, t)
		case BucketToday:
			g.Today = append(g.Today, t)
		case BucketTomorrow:
			g.Tomorrow = append(g.Tomorrow, t)
		case BucketThisWeek:
			g.ThisWeek = append(g.ThisWeek, t)
		case BucketFuture:
			g.Later = append(g.Later, t)
		default:
			g.NoDate = append(g.NoDate, t)
		}
	}
	return g
}
