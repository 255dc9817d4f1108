// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"sort"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks   map[int]*domain.Task
	SaveErr error
	GetErr  error
	ListErr error
	NextIDN int
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:   make(map[int]*domain.Task),
		NextIDN: 1,
	}
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

// List returns tasks matching the store-side filter, ordered by ID for
// deterministic tests.
func (m *MockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if filter.CategoryID != nil && !t.InCategory(*filter.CategoryID) {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		tasks = append(tasks, t)
	}
	sortByID(tasks)
	return tasks, nil
}

// Save saves a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id int) error {
	delete(m.Tasks, id)
	return nil
}

// NextID returns the next available task ID.
func (m *MockTaskRepository) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockCategoryRepository is a test double for domain.CategoryRepository.
type MockCategoryRepository struct {
	Categories map[int]*domain.Category
	SaveErr    error
	GetErr     error
	NextIDN    int
}

// NewMockCategoryRepository creates a new MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int]*domain.Category),
		NextIDN:    1,
	}
}

// Get retrieves a category by ID.
func (m *MockCategoryRepository) Get(id int) (*domain.Category, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	category, ok := m.Categories[id]
	if !ok {
		return nil, nil
	}
	return category, nil
}

// List returns all categories ordered by ID.
func (m *MockCategoryRepository) List() ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, c)
	}
	sortCategoriesByID(categories)
	return categories, nil
}

// Save saves a category.
func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Categories[category.ID] = category
	return nil
}

// Delete removes a category by ID.
func (m *MockCategoryRepository) Delete(id int) error {
	delete(m.Categories, id)
	return nil
}

// NextID returns the next available category ID.
func (m *MockCategoryRepository) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	Initialized bool
}

// Initialize is a no-op for testing.
func (m *MockStoreInitializer) Initialize() error {
	return nil
}

// IsInitialized returns the configured value.
func (m *MockStoreInitializer) IsInitialized() bool {
	return m.Initialized
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

func (NopLogger) Debug(int, string, string) {}
func (NopLogger) Info(int, string, string)  {}
func (NopLogger) Warn(int, string, string)  {}
func (NopLogger) Error(int, string, string) {}

func sortByID(tasks []*domain.Task) {
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
}

func sortCategoriesByID(categories []*domain.Category) {
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
}
