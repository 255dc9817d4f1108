// Package memstore provides an in-memory implementation of the task and
// category repositories. It backs tests and the default ephemeral mode;
// callers receive copies, never references into the store's own maps.
package memstore

import (
	"sort"
	"sync"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Store implements domain.TaskRepository and domain.CategoryRepository
// with mutex-guarded maps.
type Store struct {
	tasks          map[int]*domain.Task
	categories     map[int]*domain.Category
	mu             sync.RWMutex
	nextTaskID     int
	nextCategoryID int
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		tasks:          make(map[int]*domain.Task),
		categories:     make(map[int]*domain.Category),
		nextTaskID:     1,
		nextCategoryID: 1,
	}
}

// Initialize is a no-op; the store is ready on construction.
func (s *Store) Initialize() error {
	return nil
}

// IsInitialized always reports true for the in-memory store.
func (s *Store) IsInitialized() bool {
	return true
}

// Tasks returns the task repository view of the store.
func (s *Store) Tasks() domain.TaskRepository {
	return (*taskRepo)(s)
}

// Categories returns the category repository view of the store.
func (s *Store) Categories() domain.CategoryRepository {
	return (*categoryRepo)(s)
}

type taskRepo Store

// Get retrieves a task by ID.
func (r *taskRepo) Get(id int) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return cloneTask(t), nil
}

// List retrieves a snapshot of tasks matching the filter, ordered by
// insertion sequence.
func (r *taskRepo) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if filter.CategoryID != nil && !t.InCategory(*filter.CategoryID) {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		tasks = append(tasks, cloneTask(t))
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })
	return tasks, nil
}

// Save creates or updates a task.
func (r *taskRepo) Save(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[task.ID] = cloneTask(task)
	return nil
}

// Delete removes a task by ID.
func (r *taskRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tasks, id)
	return nil
}

// NextID returns the next available task ID.
func (r *taskRepo) NextID() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextTaskID
	r.nextTaskID++
	return id, nil
}

type categoryRepo Store

// Get retrieves a category by ID.
func (r *categoryRepo) Get(id int) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

// List retrieves a snapshot of all categories ordered by ID.
func (r *categoryRepo) List() ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		categories = append(categories, &clone)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// Save creates or updates a category.
func (r *categoryRepo) Save(category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

// Delete removes a category by ID.
func (r *categoryRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.categories, id)
	return nil
}

// NextID returns the next available category ID.
func (r *categoryRepo) NextID() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextCategoryID
	r.nextCategoryID++
	return id, nil
}

func cloneTask(t *domain.Task) *domain.Task {
	clone := *t
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		clone.CompletedAt = &at
	}
	if t.CategoryID != nil {
		id := *t.CategoryID
		clone.CategoryID = &id
	}
	return &clone
}
