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

func TestCompleteTask_Execute_Success(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Task"}
	clock := &testutil.MockClock{NowTime: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	uc := NewCompleteTask(tasks, clock, nil)
	out, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: 1})

	require.NoError(t, err)
	assert.True(t, out.Task.Completed)
	require.NotNil(t, out.Task.CompletedAt)
	assert.Equal(t, clock.NowTime, *out.Task.CompletedAt)
}

func TestCompleteTask_Execute_AlreadyCompletedIsNoop(t *testing.T) {
	stamped := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Task", Completed: true, CompletedAt: &stamped}
	clock := &testutil.MockClock{NowTime: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	uc := NewCompleteTask(tasks, clock, nil)
	out, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: 1})

	require.NoError(t, err)
	assert.True(t, out.Task.Completed)
	// The original completion stamp is preserved.
	assert.Equal(t, stamped, *out.Task.CompletedAt)
}

func TestCompleteTask_Execute_NotFound(t *testing.T) {
	uc := NewCompleteTask(testutil.NewMockTaskRepository(), &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: 9})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestReopenTask_Execute_ClearsCompletion(t *testing.T) {
	stamped := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Task", Completed: true, CompletedAt: &stamped}

	uc := NewReopenTask(tasks, nil)
	out, err := uc.Execute(context.Background(), ReopenTaskInput{TaskID: 1})

	require.NoError(t, err)
	assert.False(t, out.Task.Completed)
	assert.Nil(t, out.Task.CompletedAt)
}

func TestReopenTask_Execute_ActiveIsNoop(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Task"}

	uc := NewReopenTask(tasks, nil)
	out, err := uc.Execute(context.Background(), ReopenTaskInput{TaskID: 1})

	require.NoError(t, err)
	assert.False(t, out.Task.Completed)
}

func TestReopenTask_Execute_NotFound(t *testing.T) {
	uc := NewReopenTask(testutil.NewMockTaskRepository(), nil)

	_, err := uc.Execute(context.Background(), ReopenTaskInput{TaskID: 9})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
