package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// errDisplayDuration is how long an error stays on screen.
const errDisplayDuration = 3 * time.Second

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.stats = msg.Stats
		m.clampCursor()
		return m, nil

	case MsgCategoriesLoaded:
		m.categories = msg.Categories
		if m.categoryIdx > len(m.categories) {
			m.categoryIdx = 0
			m.filter.CategoryID = nil
		}
		return m, nil

	case MsgTaskToggled, MsgTaskDeleted:
		return m, tea.Batch(m.loadTasks(), m.loadCategories())

	case MsgTaskCreated:
		return m, tea.Batch(m.loadTasks(), m.loadCategories())

	case MsgError:
		m.err = msg.Err
		return m, tea.Tick(errDisplayDuration, func(time.Time) tea.Msg {
			return MsgClearError{}
		})

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// updateKey routes key presses by mode.
func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeSearch:
		return m.updateSearchMode(msg)
	case ModeConfirm:
		return m.updateConfirmMode(msg)
	case ModeInputTitle:
		return m.updateInputTitleMode(msg)
	case ModeHelp:
		m.mode = ModeNormal
		return m, nil
	case ModeNormal:
	}
	return m.updateNormalMode(msg)
}

func (m *Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if task := m.SelectedTask(); task != nil {
			return m, m.toggleTask(task)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.titleInput.SetValue("")
		m.titleInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task := m.SelectedTask(); task != nil {
			m.mode = ModeConfirm
			m.confirmTaskID = task.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Priority):
		m.cyclePriorityFilter()
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Status):
		m.cycleStatusFilter()
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Category):
		m.cycleCategoryFilter()
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Agenda):
		m.grouped = !m.grouped
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.loadTasks(), m.loadCategories())

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if !m.filter.IsZero() {
			m.resetFilter()
			return m, m.loadTasks()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filter.Search = ""
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Live search: every keystroke narrows the list.
	m.filter.Search = m.searchInput.Value()
	return m, tea.Batch(cmd, m.loadTasks())
}

func (m *Model) updateConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) {
		id := m.confirmTaskID
		m.mode = ModeNormal
		m.confirmTaskID = 0
		return m, m.deleteTask(id)
	}
	m.mode = ModeNormal
	m.confirmTaskID = 0
	return m, nil
}

func (m *Model) updateInputTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		title := m.titleInput.Value()
		m.mode = ModeNormal
		m.titleInput.Blur()
		if title == "" {
			return m, nil
		}
		return m, m.createTask(title)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// cyclePriorityFilter advances the priority filter: all -> urgent ->
// high -> medium -> low -> all.
func (m *Model) cyclePriorityFilter() {
	priorities := domain.AllPriorities()
	m.priorityIdx = (m.priorityIdx + 1) % (len(priorities) + 1)
	if m.priorityIdx == 0 {
		m.filter.Priority = ""
		return
	}
	m.filter.Priority = priorities[m.priorityIdx-1]
}

// cycleStatusFilter advances the status filter through all known values.
func (m *Model) cycleStatusFilter() {
	statuses := domain.AllStatuses()
	m.statusIdx = (m.statusIdx + 1) % (len(statuses) + 1)
	if m.statusIdx == 0 {
		m.filter.Status = ""
		return
	}
	m.filter.Status = statuses[m.statusIdx-1]
}

// cycleCategoryFilter advances the category filter through the loaded
// categories.
func (m *Model) cycleCategoryFilter() {
	if len(m.categories) == 0 {
		return
	}
	m.categoryIdx = (m.categoryIdx + 1) % (len(m.categories) + 1)
	if m.categoryIdx == 0 {
		m.filter.CategoryID = nil
		return
	}
	id := m.categories[m.categoryIdx-1].Category.ID
	m.filter.CategoryID = &id
}

// resetFilter clears every filter constraint.
func (m *Model) resetFilter() {
	m.filter = domain.Filter{}
	m.priorityIdx = 0
	m.statusIdx = 0
	m.categoryIdx = 0
	m.searchInput.SetValue("")
}
