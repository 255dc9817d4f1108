package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID int // Task to complete
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task *domain.Task // The completed task
}

// CompleteTask is the use case for marking a task as complete. It sets
// Completed and stamps CompletedAt; completing an already-completed
// task is a no-op.
type CompleteTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute marks the task as complete.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := getTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	if !task.Completed {
		now := uc.clock.Now()
		task.Completed = true
		task.CompletedAt = &now

		if err := uc.tasks.Save(task); err != nil {
			return nil, fmt.Errorf("save task: %w", err)
		}

		if uc.logger != nil {
			uc.logger.Info(task.ID, "task", "completed")
		}
	}

	return &CompleteTaskOutput{Task: task}, nil
}
