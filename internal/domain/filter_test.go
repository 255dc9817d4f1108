package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestFilter_Matches_EmptyFilterMatchesEverything(t *testing.T) {
	tasks := []*Task{
		{ID: 1, Title: "Write report"},
		{ID: 2, Title: "Buy milk", Completed: true},
		{ID: 3, Title: "Ship release", Priority: PriorityUrgent, DueDate: datePtr(testNow.AddDate(0, 0, -3))},
	}

	for _, task := range tasks {
		assert.True(t, Filter{}.Matches(task, testNow), "task #%d", task.ID)
	}
}

func TestFilter_Matches_Search(t *testing.T) {
	task := &Task{ID: 1, Title: "Prepare Quarterly Report"}

	assert.True(t, Filter{Search: "quarterly"}.Matches(task, testNow))
	assert.True(t, Filter{Search: "REPORT"}.Matches(task, testNow))
	assert.False(t, Filter{Search: "invoice"}.Matches(task, testNow))
}

func TestFilter_Matches_SearchIgnoresDescription(t *testing.T) {
	task := &Task{ID: 1, Title: "Groceries", Description: "milk and eggs"}
	assert.False(t, Filter{Search: "milk"}.Matches(task, testNow))
}

func TestFilter_Matches_Category(t *testing.T) {
	task := &Task{ID: 1, Title: "Task", CategoryID: intPtr(3)}

	assert.True(t, Filter{CategoryID: intPtr(3)}.Matches(task, testNow))
	assert.False(t, Filter{CategoryID: intPtr(4)}.Matches(task, testNow))

	// Category-less tasks never match a category constraint.
	orphan := &Task{ID: 2, Title: "Orphan"}
	assert.False(t, Filter{CategoryID: intPtr(3)}.Matches(orphan, testNow))
}

func TestFilter_Matches_CategoryIDFromTextBoundary(t *testing.T) {
	// A category id arriving as text ("3") must match a task whose
	// category is stored numerically once normalized through ParseID.
	task := &Task{ID: 1, Title: "Task", CategoryID: intPtr(3)}

	id, err := ParseID("3")
	require.NoError(t, err)
	assert.True(t, Filter{CategoryID: &id}.Matches(task, testNow))

	id, err = ParseID(" 3 ")
	require.NoError(t, err)
	assert.True(t, Filter{CategoryID: &id}.Matches(task, testNow))
}

func TestFilter_Matches_Priority(t *testing.T) {
	task := &Task{ID: 1, Title: "Task", Priority: PriorityHigh}

	assert.True(t, Filter{Priority: PriorityHigh}.Matches(task, testNow))
	assert.False(t, Filter{Priority: PriorityLow}.Matches(task, testNow))
}

func TestFilter_Matches_StatusCompleted(t *testing.T) {
	done := &Task{ID: 1, Title: "Done", Completed: true}
	open := &Task{ID: 2, Title: "Open"}

	f := Filter{Status: StatusCompleted}
	assert.True(t, f.Matches(done, testNow))
	assert.False(t, f.Matches(open, testNow))
}

func TestFilter_Matches_StatusActive(t *testing.T) {
	done := &Task{ID: 1, Title: "Done", Completed: true}
	open := &Task{ID: 2, Title: "Open"}

	f := Filter{Status: StatusActive}
	assert.False(t, f.Matches(done, testNow))
	assert.True(t, f.Matches(open, testNow))
}

func TestFilter_Matches_StatusToday(t *testing.T) {
	f := Filter{Status: StatusToday}

	dueToday := &Task{ID: 1, Title: "Today", DueDate: datePtr(StartOfDay(testNow).Add(8 * time.Hour))}
	assert.True(t, f.Matches(dueToday, testNow))

	dueTomorrow := &Task{ID: 2, Title: "Tomorrow", DueDate: datePtr(testNow.AddDate(0, 0, 1))}
	assert.False(t, f.Matches(dueTomorrow, testNow))

	noDue := &Task{ID: 3, Title: "No date"}
	assert.False(t, f.Matches(noDue, testNow))
}

func TestFilter_Matches_StatusUpcoming(t *testing.T) {
	f := Filter{Status: StatusUpcoming}

	future := &Task{ID: 1, Title: "Future", DueDate: datePtr(testNow.Add(time.Hour))}
	assert.True(t, f.Matches(future, testNow))

	past := &Task{ID: 2, Title: "Past", DueDate: datePtr(testNow.Add(-time.Hour))}
	assert.False(t, f.Matches(past, testNow))

	noDue := &Task{ID: 3, Title: "No date"}
	assert.False(t, f.Matches(noDue, testNow))
}

func TestFilter_Matches_ConstraintsAreANDed(t *testing.T) {
	task := &Task{ID: 1, Title: "Ship release", Priority: PriorityUrgent, CategoryID: intPtr(2)}

	both := Filter{Search: "ship", Priority: PriorityUrgent}
	assert.True(t, both.Matches(task, testNow))

	oneFails := Filter{Search: "ship", Priority: PriorityLow}
	assert.False(t, oneFails.Matches(task, testNow))
}

func TestFilterTasks_PreservesOrder(t *testing.T) {
	tasks := []*Task{
		{ID: 1, Title: "alpha"},
		{ID: 2, Title: "beta", Completed: true},
		{ID: 3, Title: "gamma"},
	}

	got := FilterTasks(tasks, Filter{Status: StatusActive}, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = ParseID("forty-two")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = ParseID("")
	assert.ErrorIs(t, err, ErrInvalidID)
}
