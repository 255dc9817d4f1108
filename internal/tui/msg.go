package tui

import (
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task list is loaded from the store.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
	Stats domain.Stats
}

func (MsgTasksLoaded) sealed() {}

// MsgCategoriesLoaded is sent when categories are loaded from the store.
type MsgCategoriesLoaded struct {
	Categories []usecase.CategoryWithCount
}

func (MsgCategoriesLoaded) sealed() {}

// MsgTaskToggled is sent when a task's completion state is flipped.
type MsgTaskToggled struct {
	TaskID int
}

func (MsgTaskToggled) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	TaskID int
}

func (MsgTaskCreated) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID int
}

func (MsgTaskDeleted) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
