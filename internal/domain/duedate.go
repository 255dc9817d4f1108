package domain

import "time"

// Bucket is a coarse due-date classification relative to "now".
type Bucket string

const (
	BucketNone     Bucket = "none"      // No due date
	BucketOverdue  Bucket = "overdue"   // Strictly before the start of today
	BucketToday    Bucket = "today"     // Same calendar day as now
	BucketTomorrow Bucket = "tomorrow"  // Calendar day after now
	BucketThisWeek Bucket = "this-week" // After tomorrow, within seven days of today
	BucketFuture   Bucket = "future"    // Later than this week
)

// Display returns a human-readable representation of the bucket.
func (b Bucket) Display() string {
	switch b {
	case BucketNone:
		return "No date"
	case BucketOverdue:
		return "Overdue"
	case BucketToday:
		return "Today"
	case BucketTomorrow:
		return "Tomorrow"
	case BucketThisWeek:
		return "This Week"
	case BucketFuture:
		return "Later"
	default:
		return string(b)
	}
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Classify maps a due date to a bucket relative to now. Comparisons are
// calendar-day based: a due date earlier today is BucketToday, never
// BucketOverdue. The week window is rolling, anchored at the start of
// today, and runs seven days forward inclusive.
func Classify(due *time.Time, now time.Time) Bucket {
	if due == nil {
		return BucketNone
	}

	today := StartOfDay(now)
	day := StartOfDay(due.In(now.Location()))

	switch {
	case day.Before(today):
		return BucketOverdue
	case day.Equal(today):
		return BucketToday
	case day.Equal(today.AddDate(0, 0, 1)):
		return BucketTomorrow
	case !day.After(today.AddDate(0, 0, 7)):
		return BucketThisWeek
	default:
		return BucketFuture
	}
}
