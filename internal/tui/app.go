package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices - contain pointers)
	tasks      []*domain.Task
	categories []usecase.CategoryWithCount

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	searchInput textinput.Model
	titleInput  textinput.Model

	// Filter state
	filter domain.Filter
	stats  domain.Stats

	// Numeric state (smaller types last)
	mode          Mode
	width         int
	height        int
	cursor        int
	confirmTaskID int
	priorityIdx   int
	statusIdx     int
	categoryIdx   int
	grouped       bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	si := textinput.New()
	si.Placeholder = "Search tasks..."
	si.CharLimit = 100

	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	return &Model{
		container:   c,
		mode:        ModeNormal,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		searchInput: si,
		titleInput:  ti,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		m.loadCategories(),
	)
}

// loadTasks returns a command that loads the task list through the
// current filter. Stats always cover the full store snapshot.
func (m *Model) loadTasks() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{Filter: filter})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Stats: out.Stats}
	}
}

// loadCategories returns a command that loads the category list.
func (m *Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListCategoriesUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgCategoriesLoaded{Categories: out.Categories}
	}
}

// toggleTask returns a command that flips the completion state of a task.
func (m *Model) toggleTask(task *domain.Task) tea.Cmd {
	id := task.ID
	completed := task.Completed
	return func() tea.Msg {
		var err error
		if completed {
			_, err = m.container.ReopenTaskUseCase().Execute(context.Background(), usecase.ReopenTaskInput{TaskID: id})
		} else {
			_, err = m.container.CompleteTaskUseCase().Execute(context.Background(), usecase.CompleteTaskInput{TaskID: id})
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{TaskID: id}
	}
}

// createTask returns a command that creates a task with the given title.
func (m *Model) createTask(title string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{Title: title})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{TaskID: out.Task.ID}
	}
}

// deleteTask returns a command that deletes the given task.
func (m *Model) deleteTask(id int) tea.Cmd {
	return func() tea.Msg {
		if err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: id}
	}
}

// SelectedTask returns the task under the cursor, or nil if the list is
// empty.
func (m *Model) SelectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// clampCursor keeps the cursor inside the task list after reloads.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the TUI event loop and blocks until quit.
func Run(c *app.Container) error {
	p := tea.NewProgram(New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
