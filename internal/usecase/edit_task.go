package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// EditTaskInput contains the parameters for updating a task. Nil fields
// are left untouched; supplied fields replace the stored value.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Title       *string     // New title (must be non-empty if set)
	Description *string     // New description
	Priority    *string     // New priority
	DueDate     **time.Time // New due date (outer nil = keep, inner nil = clear)
	CategoryID  **int       // New category (outer nil = keep, inner nil = detach)
	TaskID      int         // Task to update
}

// EditTaskOutput contains the result of updating a task.
type EditTaskOutput struct {
	Task *domain.Task // The updated task
}

// EditTask is the use case for partially updating a task.
type EditTask struct {
	tasks      domain.TaskRepository
	categories domain.CategoryRepository
	logger     domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, categories domain.CategoryRepository, logger domain.Logger) *EditTask {
	return &EditTask{
		tasks:      tasks,
		categories: categories,
		logger:     logger,
	}
}

// Execute merges the supplied fields into the stored task and saves the
// full updated record.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Title == nil && in.Description == nil && in.Priority == nil && in.DueDate == nil && in.CategoryID == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	task, err := getTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.ErrEmptyTitle
		}
		task.Title = title
	}

	if in.Description != nil {
		task.Description = *in.Description
	}

	if in.Priority != nil {
		priority := domain.ParsePriority(*in.Priority)
		if !priority.IsValid() {
			return nil, fmt.Errorf("%q: %w", *in.Priority, domain.ErrInvalidPriority)
		}
		task.Priority = priority
	}

	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}

	if in.CategoryID != nil {
		if *in.CategoryID != nil {
			if _, err := getCategory(uc.categories, **in.CategoryID); err != nil {
				return nil, err
			}
		}
		task.CategoryID = *in.CategoryID
	}

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", "updated")
	}

	return &EditTaskOutput{Task: task}, nil
}
