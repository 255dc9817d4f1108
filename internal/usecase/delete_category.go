package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// DeleteCategoryInput contains the parameters for deleting a category.
type DeleteCategoryInput struct {
	CategoryID int // Category to delete
}

// DeleteCategoryOutput reports what the deletion touched.
type DeleteCategoryOutput struct {
	DetachedTasks int // Number of tasks left uncategorized
}

// DeleteCategory is the use case for deleting a category. Tasks in the
// category are detached, not deleted.
type DeleteCategory struct {
	categories domain.CategoryRepository
	tasks      domain.TaskRepository
	logger     domain.Logger
}

// NewDeleteCategory creates a new DeleteCategory use case.
func NewDeleteCategory(categories domain.CategoryRepository, tasks domain.TaskRepository, logger domain.Logger) *DeleteCategory {
	return &DeleteCategory{
		categories: categories,
		tasks:      tasks,
		logger:     logger,
	}
}

// Execute removes the category and detaches its tasks.
func (uc *DeleteCategory) Execute(_ context.Context, in DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if _, err := getCategory(uc.categories, in.CategoryID); err != nil {
		return nil, err
	}

	members, err := uc.tasks.List(domain.TaskFilter{CategoryID: &in.CategoryID})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	for _, task := range members {
		task.CategoryID = nil
		if err := uc.tasks.Save(task); err != nil {
			return nil, fmt.Errorf("detach task #%d: %w", task.ID, err)
		}
	}

	if err := uc.categories.Delete(in.CategoryID); err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(0, "category", fmt.Sprintf("deleted: #%d (%d tasks detached)", in.CategoryID, len(members)))
	}

	return &DeleteCategoryOutput{DetachedTasks: len(members)}, nil
}
