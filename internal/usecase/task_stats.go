package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// TaskStatsOutput contains summary counts and due-date groupings.
type TaskStatsOutput struct {
	Stats  domain.Stats  // Aggregate counts
	Groups domain.Groups // Tasks partitioned by due-date bucket
}

// TaskStats is the use case for deriving the dashboard summary: counts
// plus the agenda grouping, both computed from one snapshot so they
// cannot disagree.
type TaskStats struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewTaskStats creates a new TaskStats use case.
func NewTaskStats(tasks domain.TaskRepository, clock domain.Clock) *TaskStats {
	return &TaskStats{
		tasks: tasks,
		clock: clock,
	}
}

// Execute computes stats and groups over the current snapshot.
func (uc *TaskStats) Execute(_ context.Context) (*TaskStatsOutput, error) {
	snapshot, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	now := uc.clock.Now()
	return &TaskStatsOutput{
		Stats:  domain.Summarize(snapshot, now),
		Groups: domain.GroupByDueDate(snapshot, now),
	}, nil
}
