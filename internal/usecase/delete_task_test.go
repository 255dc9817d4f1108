package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestDeleteTask_Execute_Success(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Task"}

	uc := NewDeleteTask(tasks, nil)
	err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: 1})

	require.NoError(t, err)
	assert.Empty(t, tasks.Tasks)
}

func TestDeleteTask_Execute_NotFound(t *testing.T) {
	uc := NewDeleteTask(testutil.NewMockTaskRepository(), nil)

	err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: 3})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
