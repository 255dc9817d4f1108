package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID int // Task to show
}

// ShowTaskOutput contains the task and its resolved category.
type ShowTaskOutput struct {
	Task     *domain.Task     // The task
	Category *domain.Category // Resolved category (nil if none or missing)
	Bucket   domain.Bucket    // Due-date classification at call time
}

// ShowTask is the use case for displaying a single task with its
// category resolved. A dangling category reference renders the task as
// category-less rather than failing.
type ShowTask struct {
	tasks      domain.TaskRepository
	categories domain.CategoryRepository
	clock      domain.Clock
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository, categories domain.CategoryRepository, clock domain.Clock) *ShowTask {
	return &ShowTask{
		tasks:      tasks,
		categories: categories,
		clock:      clock,
	}
}

// Execute fetches the task and resolves its category.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := getTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	out := &ShowTaskOutput{
		Task:   task,
		Bucket: domain.Classify(task.DueDate, uc.clock.Now()),
	}

	if task.CategoryID != nil {
		category, err := uc.categories.Get(*task.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("get category: %w", err)
		}
		// Missing category is tolerated: the task displays uncategorized.
		out.Category = category
	}

	return out, nil
}
