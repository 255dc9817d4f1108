package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ReopenTaskInput contains the parameters for reopening a task.
type ReopenTaskInput struct {
	TaskID int // Task to reopen
}

// ReopenTaskOutput contains the result of reopening a task.
type ReopenTaskOutput struct {
	Task *domain.Task // The reopened task
}

// ReopenTask is the use case for marking a completed task active again.
// It clears Completed and CompletedAt; reopening an active task is a
// no-op.
type ReopenTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewReopenTask creates a new ReopenTask use case.
func NewReopenTask(tasks domain.TaskRepository, logger domain.Logger) *ReopenTask {
	return &ReopenTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute marks the task as active.
func (uc *ReopenTask) Execute(_ context.Context, in ReopenTaskInput) (*ReopenTaskOutput, error) {
	task, err := getTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	if task.Completed {
		task.Completed = false
		task.CompletedAt = nil

		if err := uc.tasks.Save(task); err != nil {
			return nil, fmt.Errorf("save task: %w", err)
		}

		if uc.logger != nil {
			uc.logger.Info(task.ID, "task", "reopened")
		}
	}

	return &ReopenTaskOutput{Task: task}, nil
}
