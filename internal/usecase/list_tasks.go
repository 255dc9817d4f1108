package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.Filter // Display filter (zero value = everything)
}

// ListTasksOutput contains the filtered, sorted task list and the
// summary derived from the same snapshot.
type ListTasksOutput struct {
	Tasks []*domain.Task // Filtered and sorted for display
	Stats domain.Stats   // Summary over the full snapshot
}

// ListTasks is the use case for listing tasks. It fetches a full
// snapshot from the store, applies the display filter, sorts the
// result, and summarizes the unfiltered snapshot. Every call
// recomputes from a fresh snapshot; nothing is patched incrementally.
type ListTasks struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, clock domain.Clock) *ListTasks {
	return &ListTasks{
		tasks: tasks,
		clock: clock,
	}
}

// Execute lists tasks matching the given filter.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	snapshot, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	now := uc.clock.Now()
	filtered := domain.FilterTasks(snapshot, in.Filter, now)

	return &ListTasksOutput{
		Tasks: domain.SortTasks(filtered),
		Stats: domain.Summarize(snapshot, now),
	}, nil
}
