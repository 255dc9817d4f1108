package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestListTasks_Execute_FiltersAndSorts(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Low prio", Priority: domain.PriorityLow, CreatedAt: now.AddDate(0, 0, -2)}
	tasks.Tasks[2] = &domain.Task{ID: 2, Title: "Urgent fix", Priority: domain.PriorityUrgent, CreatedAt: now.AddDate(0, 0, -1)}
	tasks.Tasks[3] = &domain.Task{ID: 3, Title: "Done already", Completed: true, CreatedAt: now.AddDate(0, 0, -3)}

	uc := NewListTasks(tasks, &testutil.MockClock{NowTime: now})
	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	// Urgent first, completed last.
	assert.Equal(t, 2, out.Tasks[0].ID)
	assert.Equal(t, 1, out.Tasks[1].ID)
	assert.Equal(t, 3, out.Tasks[2].ID)

	// Stats cover the unfiltered snapshot.
	assert.Equal(t, 3, out.Stats.Total)
	assert.Equal(t, 1, out.Stats.Completed)
	assert.Equal(t, 2, out.Stats.Active)
}

func TestListTasks_Execute_AppliesFilter(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Ship release"}
	tasks.Tasks[2] = &domain.Task{ID: 2, Title: "Buy milk", Completed: true}

	uc := NewListTasks(tasks, &testutil.MockClock{NowTime: now})
	out, err := uc.Execute(context.Background(), ListTasksInput{
		Filter: domain.Filter{Status: domain.StatusActive},
	})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, 1, out.Tasks[0].ID)
	// Filtering narrows the list, not the summary.
	assert.Equal(t, 2, out.Stats.Total)
}

func TestTaskStats_Execute(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Late", DueDate: &yesterday}
	tasks.Tasks[2] = &domain.Task{ID: 2, Title: "Soon", DueDate: &tomorrow}
	tasks.Tasks[3] = &domain.Task{ID: 3, Title: "Whenever"}

	uc := NewTaskStats(tasks, &testutil.MockClock{NowTime: now})
	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, out.Stats.Total)
	assert.Equal(t, 1, out.Stats.Overdue)
	assert.Len(t, out.Groups.Overdue, 1)
	assert.Len(t, out.Groups.Tomorrow, 1)
	assert.Len(t, out.Groups.NoDate, 1)
}
