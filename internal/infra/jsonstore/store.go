// Package jsonstore provides a JSON file-based implementation of the
// task and category repositories.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"syscall"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// storeData represents the JSON file structure.
// Fields are ordered to minimize memory padding.
type storeData struct {
	Tasks      map[string]*domain.Task     `json:"tasks"`
	Categories map[string]*domain.Category `json:"categories"`
	Meta       meta                        `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextTaskID     int `json:"nextTaskID"`
	NextCategoryID int `json:"nextCategoryID"`
}

// Store implements both repositories using a single JSON file guarded
// by an flock-based lock file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; Initialize creates it.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Tasks returns the task repository view of the store.
func (s *Store) Tasks() domain.TaskRepository {
	return (*taskRepo)(s)
}

// Categories returns the category repository view of the store.
func (s *Store) Categories() domain.CategoryRepository {
	return (*categoryRepo)(s)
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	data := &storeData{
		Meta:       meta{NextTaskID: 1, NextCategoryID: 1},
		Tasks:      make(map[string]*domain.Task),
		Categories: make(map[string]*domain.Category),
	}
	return s.write(data)
}

type taskRepo Store

// Get retrieves a task by ID. Returns nil if not found.
func (r *taskRepo) Get(id int) (*domain.Task, error) {
	var task *domain.Task
	err := (*Store)(r).withLock(func(data *storeData) error {
		if t, ok := data.Tasks[strconv.Itoa(id)]; ok {
			task = t
			task.ID = id
		}
		return nil
	})
	return task, err
}

// List retrieves tasks matching the store-side filter, ordered by
// insertion sequence.
func (r *taskRepo) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := (*Store)(r).withLock(func(data *storeData) error {
		for key, t := range data.Tasks {
			id, _ := strconv.Atoi(key)
			t.ID = id

			if filter.CategoryID != nil && !t.InCategory(*filter.CategoryID) {
				continue
			}
			if filter.Completed != nil && t.Completed != *filter.Completed {
				continue
			}
			tasks = append(tasks, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortTasksByOrder(tasks)
	return tasks, nil
}

// Save creates or updates a task.
func (r *taskRepo) Save(task *domain.Task) error {
	return (*Store)(r).withLockWrite(func(data *storeData) error {
		data.Tasks[strconv.Itoa(task.ID)] = task
		return nil
	})
}

// Delete removes a task by ID.
func (r *taskRepo) Delete(id int) error {
	return (*Store)(r).withLockWrite(func(data *storeData) error {
		delete(data.Tasks, strconv.Itoa(id))
		return nil
	})
}

// NextID returns the next available task ID.
func (r *taskRepo) NextID() (int, error) {
	var id int
	err := (*Store)(r).withLockWrite(func(data *storeData) error {
		id = data.Meta.NextTaskID
		data.Meta.NextTaskID++
		return nil
	})
	return id, err
}

type categoryRepo Store

// Get retrieves a category by ID. Returns nil if not found.
func (r *categoryRepo) Get(id int) (*domain.Category, error) {
	var category *domain.Category
	err := (*Store)(r).withLock(func(data *storeData) error {
		if c, ok := data.Categories[strconv.Itoa(id)]; ok {
			category = c
			category.ID = id
		}
		return nil
	})
	return category, err
}

// List retrieves all categories ordered by ID.
func (r *categoryRepo) List() ([]*domain.Category, error) {
	var categories []*domain.Category
	err := (*Store)(r).withLock(func(data *storeData) error {
		for key, c := range data.Categories {
			id, _ := strconv.Atoi(key)
			c.ID = id
			categories = append(categories, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortCategoriesByID(categories)
	return categories, nil
}

// Save creates or updates a category.
func (r *categoryRepo) Save(category *domain.Category) error {
	return (*Store)(r).withLockWrite(func(data *storeData) error {
		data.Categories[strconv.Itoa(category.ID)] = category
		return nil
	})
}

// Delete removes a category by ID.
func (r *categoryRepo) Delete(id int) error {
	return (*Store)(r).withLockWrite(func(data *storeData) error {
		delete(data.Categories, strconv.Itoa(id))
		return nil
	})
}

// NextID returns the next available category ID.
func (r *categoryRepo) NextID() (int, error) {
	var id int
	err := (*Store)(r).withLockWrite(func(data *storeData) error {
		id = data.Meta.NextCategoryID
		data.Meta.NextCategoryID++
		return nil
	})
	return id, err
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	// Ensure maps are initialized
	if data.Tasks == nil {
		data.Tasks = make(map[string]*domain.Task)
	}
	if data.Categories == nil {
		data.Categories = make(map[string]*domain.Category)
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func sortTasksByOrder(tasks []*domain.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Order != tasks[j].Order {
			return tasks[i].Order < tasks[j].Order
		}
		return tasks[i].ID < tasks[j].ID
	})
}

func sortCategoriesByID(categories []*domain.Category) {
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
}

// Ensure Store views implement the repository interfaces.
var (
	_ domain.TaskRepository     = (*taskRepo)(nil)
	_ domain.CategoryRepository = (*categoryRepo)(nil)
	_ domain.StoreInitializer   = (*Store)(nil)
)
