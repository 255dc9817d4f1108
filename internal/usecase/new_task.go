// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	DueDate     *time.Time // Due date (optional)
	CategoryID  *int       // Owning category (optional)
	Title       string     // Task title (required)
	Description string     // Task description (optional)
	Priority    string     // Priority (optional, defaults to medium)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task *domain.Task // The created task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks      domain.TaskRepository
	categories domain.CategoryRepository
	clock      domain.Clock
	logger     domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskRepository, categories domain.CategoryRepository, clock domain.Clock, logger domain.Logger) *NewTask {
	return &NewTask{
		tasks:      tasks,
		categories: categories,
		clock:      clock,
		logger:     logger,
	}
}

// Execute creates a new task with the given input.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	// Validate title before anything reaches the store
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	priority := domain.ParsePriority(in.Priority)
	if !priority.IsValid() {
		return nil, fmt.Errorf("%q: %w", in.Priority, domain.ErrInvalidPriority)
	}

	// Validate category exists if specified
	if in.CategoryID != nil {
		category, err := uc.categories.Get(*in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("get category: %w", err)
		}
		if category == nil {
			return nil, domain.ErrCategoryNotFound
		}
	}

	id, err := uc.tasks.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	task := &domain.Task{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Priority:    priority,
		CategoryID:  in.CategoryID,
		DueDate:     in.DueDate,
		CreatedAt:   uc.clock.Now(),
		Order:       id,
	}

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(id, "task", fmt.Sprintf("created: %q", task.Title))
	}

	return &NewTaskOutput{Task: task}, nil
}
