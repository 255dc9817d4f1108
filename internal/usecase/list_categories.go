package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// CategoryWithCount pairs a category with its live task count. The
// stored TaskCount field is informational only and may be stale; the
// count here is recomputed from the task snapshot.
type CategoryWithCount struct {
	Category *domain.Category
	Count    int
}

// ListCategoriesOutput contains the categories ordered for display.
type ListCategoriesOutput struct {
	Categories []CategoryWithCount
}

// ListCategories is the use case for listing categories.
type ListCategories struct {
	categories domain.CategoryRepository
	tasks      domain.TaskRepository
}

// NewListCategories creates a new ListCategories use case.
func NewListCategories(categories domain.CategoryRepository, tasks domain.TaskRepository) *ListCategories {
	return &ListCategories{
		categories: categories,
		tasks:      tasks,
	}
}

// Execute lists categories ordered by Order then ID, with live counts.
func (uc *ListCategories) Execute(_ context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categories.List()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	counts := make(map[int]int)
	for _, t := range tasks {
		if t.CategoryID != nil {
			counts[*t.CategoryID]++
		}
	}

	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Order != categories[j].Order {
			return categories[i].Order < categories[j].Order
		}
		return categories[i].ID < categories[j].ID
	})

	out := make([]CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryWithCount{Category: c, Count: counts[c.ID]})
	}

	return &ListCategoriesOutput{Categories: out}, nil
}
