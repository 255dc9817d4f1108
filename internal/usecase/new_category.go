package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// NewCategoryInput contains the parameters for creating a category.
type NewCategoryInput struct {
	Name  string // Category name (required)
	Color string // Display color (optional)
}

// NewCategoryOutput contains the result of creating a category.
type NewCategoryOutput struct {
	Category *domain.Category // The created category
}

// NewCategory is the use case for creating a category.
type NewCategory struct {
	categories domain.CategoryRepository
	logger     domain.Logger
}

// NewNewCategory creates a new NewCategory use case.
func NewNewCategory(categories domain.CategoryRepository, logger domain.Logger) *NewCategory {
	return &NewCategory{
		categories: categories,
		logger:     logger,
	}
}

// Execute creates a new category with the given input.
func (uc *NewCategory) Execute(_ context.Context, in NewCategoryInput) (*NewCategoryOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	id, err := uc.categories.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate category ID: %w", err)
	}

	category := &domain.Category{
		ID:    id,
		Name:  name,
		Color: in.Color,
		Order: id,
	}

	if err := uc.categories.Save(category); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(0, "category", fmt.Sprintf("created: %q", name))
	}

	return &NewCategoryOutput{Category: category}, nil
}
