package usecase

import (
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// getTask fetches a task and maps the missing case to ErrTaskNotFound.
func getTask(tasks domain.TaskRepository, id int) (*domain.Task, error) {
	task, err := tasks.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// getCategory fetches a category and maps the missing case to
// ErrCategoryNotFound.
func getCategory(categories domain.CategoryRepository, id int) (*domain.Category, error) {
	category, err := categories.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}
