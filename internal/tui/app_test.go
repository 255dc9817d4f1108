package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func newTestModel(t *testing.T, tasks ...*domain.Task) *Model {
	t.Helper()
	repo := testutil.NewMockTaskRepository()
	for _, task := range tasks {
		repo.Tasks[task.ID] = task
	}
	clock := &testutil.MockClock{NowTime: time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)}
	c := app.NewWithDeps(app.Paths{}, repo, testutil.NewMockCategoryRepository(), &testutil.MockStoreInitializer{Initialized: true}, clock)

	m := New(c)
	m.width = 100
	m.height = 40
	return m
}

func loadInitial(t *testing.T, m *Model) {
	t.Helper()
	for _, cmd := range []tea.Cmd{m.loadTasks(), m.loadCategories()} {
		msg := cmd()
		if err, ok := msg.(MsgError); ok {
			require.NoError(t, err.Err)
		}
		_, _ = m.Update(msg)
	}
}

func keyPress(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestTasksLoadedSetsStats(t *testing.T) {
	m := newTestModel(t,
		&domain.Task{ID: 1, Title: "open", Priority: domain.PriorityMedium},
		&domain.Task{ID: 2, Title: "done", Priority: domain.PriorityMedium, Completed: true},
	)
	loadInitial(t, m)

	assert.Len(t, m.tasks, 2)
	assert.Equal(t, 2, m.stats.Total)
	assert.Equal(t, 1, m.stats.Completed)
	assert.Equal(t, 50, m.stats.CompletionRate)
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t,
		&domain.Task{ID: 1, Title: "a", Priority: domain.PriorityMedium},
		&domain.Task{ID: 2, Title: "b", Priority: domain.PriorityMedium},
	)
	loadInitial(t, m)

	assert.Equal(t, 0, m.cursor)
	keyPress(m, "j")
	assert.Equal(t, 1, m.cursor)
	keyPress(m, "j") // clamped at the end
	assert.Equal(t, 1, m.cursor)
	keyPress(m, "k")
	assert.Equal(t, 0, m.cursor)
}

func TestToggleCommitsThroughUseCase(t *testing.T) {
	m := newTestModel(t, &domain.Task{ID: 1, Title: "flip", Priority: domain.PriorityMedium})
	loadInitial(t, m)

	cmd := keyPress(m, "space")
	require.NotNil(t, cmd)
	msg := cmd()
	toggled, ok := msg.(MsgTaskToggled)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, 1, toggled.TaskID)

	// Reload reflects the committed change.
	loadInitial(t, m)
	assert.True(t, m.tasks[0].Completed)
}

func TestPriorityFilterCycles(t *testing.T) {
	m := newTestModel(t)
	loadInitial(t, m)

	keyPress(m, "p")
	assert.Equal(t, domain.PriorityUrgent, m.filter.Priority)
	keyPress(m, "p")
	assert.Equal(t, domain.PriorityHigh, m.filter.Priority)
	keyPress(m, "p")
	keyPress(m, "p")
	keyPress(m, "p")
	assert.Equal(t, domain.Priority(""), m.filter.Priority)
}

func TestEscapeClearsFilters(t *testing.T) {
	m := newTestModel(t)
	loadInitial(t, m)

	keyPress(m, "p")
	keyPress(m, "s")
	require.False(t, m.filter.IsZero())

	keyPress(m, "esc")
	assert.True(t, m.filter.IsZero())
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel(t, &domain.Task{ID: 7, Title: "doomed", Priority: domain.PriorityMedium})
	loadInitial(t, m)

	keyPress(m, "d")
	assert.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, 7, m.confirmTaskID)

	// Any key but y cancels.
	keyPress(m, "x")
	assert.Equal(t, ModeNormal, m.mode)
	loadInitial(t, m)
	assert.Len(t, m.tasks, 1)

	keyPress(m, "d")
	cmd := keyPress(m, "y")
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(MsgTaskDeleted)
	require.True(t, ok, "got %T", msg)

	loadInitial(t, m)
	assert.Empty(t, m.tasks)
}

func TestNewTaskInputFlow(t *testing.T) {
	m := newTestModel(t)
	loadInitial(t, m)

	keyPress(m, "n")
	assert.Equal(t, ModeInputTitle, m.mode)

	for _, r := range "ship it" {
		keyPress(m, string(r))
	}
	cmd := keyPress(m, "enter")
	require.NotNil(t, cmd)
	msg := cmd()
	created, ok := msg.(MsgTaskCreated)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, 1, created.TaskID)
	assert.Equal(t, ModeNormal, m.mode)
}

func TestViewRendersTasks(t *testing.T) {
	due := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	m := newTestModel(t,
		&domain.Task{ID: 1, Title: "late thing", Priority: domain.PriorityUrgent, DueDate: &due},
	)
	loadInitial(t, m)

	out := m.View()
	assert.Contains(t, out, "late thing")
	assert.Contains(t, out, "Overdue")
	assert.Contains(t, out, "taskdeck")
}

func TestViewGroupedAgenda(t *testing.T) {
	due := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)
	m := newTestModel(t,
		&domain.Task{ID: 1, Title: "due today", Priority: domain.PriorityMedium, DueDate: &due},
		&domain.Task{ID: 2, Title: "whenever", Priority: domain.PriorityMedium},
	)
	loadInitial(t, m)

	keyPress(m, "g")
	out := m.View()
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "No date")
}
