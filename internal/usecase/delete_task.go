package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task to delete
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the task. Deleting an unknown ID is reported as
// ErrTaskNotFound, never silently ignored.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) error {
	if _, err := getTask(uc.tasks, in.TaskID); err != nil {
		return err
	}

	if err := uc.tasks.Delete(in.TaskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", "deleted")
	}
	return nil
}
