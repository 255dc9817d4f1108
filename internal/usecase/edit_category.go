package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// EditCategoryInput contains the parameters for updating a category.
// Nil fields are left untouched.
type EditCategoryInput struct {
	Name       *string // New name (must be non-empty if set)
	Color      *string // New color
	Order      *int    // New display order
	CategoryID int     // Category to update
}

// EditCategoryOutput contains the result of updating a category.
type EditCategoryOutput struct {
	Category *domain.Category // The updated category
}

// EditCategory is the use case for partially updating a category.
type EditCategory struct {
	categories domain.CategoryRepository
	logger     domain.Logger
}

// NewEditCategory creates a new EditCategory use case.
func NewEditCategory(categories domain.CategoryRepository, logger domain.Logger) *EditCategory {
	return &EditCategory{
		categories: categories,
		logger:     logger,
	}
}

// Execute merges the supplied fields into the stored category.
func (uc *EditCategory) Execute(_ context.Context, in EditCategoryInput) (*EditCategoryOutput, error) {
	if in.Name == nil && in.Color == nil && in.Order == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	category, err := getCategory(uc.categories, in.CategoryID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrEmptyName
		}
		category.Name = name
	}
	if in.Color != nil {
		category.Color = *in.Color
	}
	if in.Order != nil {
		category.Order = *in.Order
	}

	if err := uc.categories.Save(category); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(0, "category", fmt.Sprintf("updated: #%d", category.ID))
	}

	return &EditCategoryOutput{Category: category}, nil
}
