package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestNewTask_Execute_Success(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	categories := testutil.NewMockCategoryRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}

	uc := NewNewTask(tasks, categories, clock, nil)
	out, err := uc.Execute(context.Background(), NewTaskInput{
		Title:    "Write report",
		Priority: "high",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Task.ID)
	assert.Equal(t, "Write report", out.Task.Title)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, clock.NowTime, out.Task.CreatedAt)
	assert.False(t, out.Task.Completed)
	assert.Nil(t, out.Task.CompletedAt)
	require.Len(t, tasks.Tasks, 1)
}

func TestNewTask_Execute_DefaultPriorityIsMedium(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	categories := testutil.NewMockCategoryRepository()
	clock := &testutil.MockClock{NowTime: time.Now()}

	uc := NewNewTask(tasks, categories, clock, nil)
	out, err := uc.Execute(context.Background(), NewTaskInput{Title: "Untyped"})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, out.Task.Priority)
}

func TestNewTask_Execute_EmptyTitle(t *testing.T) {
	uc := NewNewTask(testutil.NewMockTaskRepository(), testutil.NewMockCategoryRepository(), &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), NewTaskInput{Title: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestNewTask_Execute_UnknownPriorityRejected(t *testing.T) {
	uc := NewNewTask(testutil.NewMockTaskRepository(), testutil.NewMockCategoryRepository(), &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), NewTaskInput{Title: "Task", Priority: "critical"})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestNewTask_Execute_MissingCategory(t *testing.T) {
	uc := NewNewTask(testutil.NewMockTaskRepository(), testutil.NewMockCategoryRepository(), &testutil.MockClock{}, nil)

	missing := 99
	_, err := uc.Execute(context.Background(), NewTaskInput{Title: "Task", CategoryID: &missing})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestNewTask_Execute_SaveError(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	tasks.SaveErr = errors.New("disk full")

	uc := NewNewTask(tasks, testutil.NewMockCategoryRepository(), &testutil.MockClock{}, nil)
	_, err := uc.Execute(context.Background(), NewTaskInput{Title: "Task"})
	assert.ErrorContains(t, err, "disk full")
}
