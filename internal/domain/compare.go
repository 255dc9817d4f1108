package domain

import "sort"

// Compare defines the ascending display order over tasks and returns
// -1, 0, or 1. Rules apply in order until one discriminates:
//
//  1. Incomplete before completed.
//  2. Priority rank (urgent < high < medium < low; unknown ranks medium).
//  3. Earlier due date first; with a due date before without; both absent
//     falls through.
//  4. Newer creation time first.
func Compare(a, b *Task) int {
	if a.Completed != b.Completed {
		if a.Completed {
			return 1
		}
		return -1
	}

	if ar, br := a.Priority.Rank(), b.Priority.Rank(); ar != br {
		if ar < br {
			return -1
		}
		return 1
	}

	switch {
	case a.DueDate != nil && b.DueDate != nil:
		if a.DueDate.Before(*b.DueDate) {
			return -1
		}
		if b.DueDate.Before(*a.DueDate) {
			return 1
		}
	case a.DueDate != nil:
		return -1
	case b.DueDate != nil:
		return 1
	}

	if a.CreatedAt.After(b.CreatedAt) {
		return -1
	}
	if b.CreatedAt.After(a.CreatedAt) {
		return 1
	}
	return 0
}

// SortTasks returns a new slice sorted by Compare. The sort is stable:
// equal-rank tasks keep their relative input order, and the input slice
// is never mutated.
func SortTasks(tasks []*Task) []*Task {
	out := make([]*Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j]) < 0
	})
	return out
}
