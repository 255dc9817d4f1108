package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestNewCategory_Execute_Success(t *testing.T) {
	categories := testutil.NewMockCategoryRepository()

	uc := NewNewCategory(categories, nil)
	out, err := uc.Execute(context.Background(), NewCategoryInput{Name: "Work", Color: "#5b21b6"})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Category.ID)
	assert.Equal(t, "Work", out.Category.Name)
	assert.Equal(t, "#5b21b6", out.Category.Color)
}

func TestNewCategory_Execute_EmptyName(t *testing.T) {
	uc := NewNewCategory(testutil.NewMockCategoryRepository(), nil)

	_, err := uc.Execute(context.Background(), NewCategoryInput{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestEditCategory_Execute_Rename(t *testing.T) {
	categories := testutil.NewMockCategoryRepository()
	categories.Categories[1] = &domain.Category{ID: 1, Name: "Old"}

	uc := NewEditCategory(categories, nil)
	out, err := uc.Execute(context.Background(), EditCategoryInput{CategoryID: 1, Name: strPtr("New")})

	require.NoError(t, err)
	assert.Equal(t, "New", out.Category.Name)
}

func TestEditCategory_Execute_NoFields(t *testing.T) {
	uc := NewEditCategory(testutil.NewMockCategoryRepository(), nil)

	_, err := uc.Execute(context.Background(), EditCategoryInput{CategoryID: 1})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestEditCategory_Execute_NotFound(t *testing.T) {
	uc := NewEditCategory(testutil.NewMockCategoryRepository(), nil)

	_, err := uc.Execute(context.Background(), EditCategoryInput{CategoryID: 8, Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDeleteCategory_Execute_DetachesTasks(t *testing.T) {
	one := 1
	categories := testutil.NewMockCategoryRepository()
	categories.Categories[1] = &domain.Category{ID: 1, Name: "Work"}
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[10] = &domain.Task{ID: 10, Title: "Member", CategoryID: &one}
	tasks.Tasks[11] = &domain.Task{ID: 11, Title: "Outsider"}

	uc := NewDeleteCategory(categories, tasks, nil)
	out, err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, out.DetachedTasks)
	assert.Empty(t, categories.Categories)
	// The member task survives, uncategorized.
	require.NotNil(t, tasks.Tasks[10])
	assert.Nil(t, tasks.Tasks[10].CategoryID)
}

func TestDeleteCategory_Execute_NotFound(t *testing.T) {
	uc := NewDeleteCategory(testutil.NewMockCategoryRepository(), testutil.NewMockTaskRepository(), nil)

	_, err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: 4})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestListCategories_Execute_OrderAndCounts(t *testing.T) {
	one, two := 1, 2
	categories := testutil.NewMockCategoryRepository()
	categories.Categories[1] = &domain.Category{ID: 1, Name: "Work", Order: 2}
	categories.Categories[2] = &domain.Category{ID: 2, Name: "Home", Order: 1}
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks[10] = &domain.Task{ID: 10, Title: "a", CategoryID: &one}
	tasks.Tasks[11] = &domain.Task{ID: 11, Title: "b", CategoryID: &one}
	tasks.Tasks[12] = &domain.Task{ID: 12, Title: "c", CategoryID: &two}

	uc := NewListCategories(categories, tasks)
	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Home", out.Categories[0].Category.Name)
	assert.Equal(t, 1, out.Categories[0].Count)
	assert.Equal(t, "Work", out.Categories[1].Category.Name)
	assert.Equal(t, 2, out.Categories[1].Count)
}
