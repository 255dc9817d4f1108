package domain

import "time"

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error

	// IsInitialized reports whether the store exists.
	IsInitialized() bool
}

// TaskRepository manages task persistence. List hands back a full
// snapshot; rich filtering and ordering are the pure core's job.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves tasks matching the store-side filter.
	List(filter TaskFilter) ([]*Task, error)

	// Save creates or updates a task.
	Save(task *Task) error

	// Delete removes a task by ID.
	Delete(id int) error

	// NextID returns the next available task ID.
	NextID() (int, error)
}

// TaskFilter narrows a store snapshot. Both fields optional; this is
// store-side pre-selection only, not the display-filter contract.
type TaskFilter struct {
	CategoryID *int  // Only tasks in this category
	Completed  *bool // Only tasks with this completion state
}

// CategoryRepository manages category persistence.
type CategoryRepository interface {
	// Get retrieves a category by ID. Returns nil if not found.
	Get(id int) (*Category, error)

	// List retrieves all categories.
	List() ([]*Category, error)

	// Save creates or updates a category.
	Save(category *Category) error

	// Delete removes a category by ID.
	Delete(id int) error

	// NextID returns the next available category ID.
	NextID() (int, error)
}

// Logger records application events tagged with a category.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
