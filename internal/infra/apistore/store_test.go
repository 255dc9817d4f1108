package apistore

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/memstore"
	"github.com/taskdeck/taskdeck/internal/server"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	gin.SetMode(gin.TestMode)
	backing := memstore.New()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)}
	srv := server.New(backing.Tasks(), backing.Categories(), clock, &testutil.NopLogger{})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return New(ts.URL)
}

func TestRemoteTaskRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := store.Tasks()

	id, err := repo.NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	due := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	task := &domain.Task{
		ID:        id,
		Title:     "remote task",
		Priority:  domain.PriorityHigh,
		DueDate:   &due,
		CreatedAt: time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC),
		Order:     id,
	}
	require.NoError(t, repo.Save(task))

	got, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "remote task", got.Title)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
}

func TestRemoteGetMissingTask(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Tasks().Get(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRemoteDelete(t *testing.T) {
	store := newTestStore(t)
	repo := store.Tasks()

	require.NoError(t, repo.Save(&domain.Task{ID: 1, Title: "x", Priority: domain.PriorityMedium}))
	require.NoError(t, repo.Delete(1))

	got, err := repo.Get(1)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete(1), domain.ErrTaskNotFound)
}

func TestRemoteListFiltersByCategory(t *testing.T) {
	store := newTestStore(t)
	tasks := store.Tasks()
	categories := store.Categories()

	require.NoError(t, categories.Save(&domain.Category{ID: 1, Name: "work"}))
	catID := 1
	require.NoError(t, tasks.Save(&domain.Task{ID: 1, Title: "in", Priority: domain.PriorityMedium, CategoryID: &catID}))
	require.NoError(t, tasks.Save(&domain.Task{ID: 2, Title: "out", Priority: domain.PriorityMedium}))

	got, err := tasks.List(domain.TaskFilter{CategoryID: &catID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "in", got[0].Title)
}

func TestRemoteCategoryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := store.Categories()

	id, err := repo.NextID()
	require.NoError(t, err)

	require.NoError(t, repo.Save(&domain.Category{ID: id, Name: "home", Color: "#00ff00"}))

	got, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "home", got.Name)
	assert.Equal(t, "#00ff00", got.Color)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInitializeChecksHealth(t *testing.T) {
	store := newTestStore(t)
	assert.True(t, store.IsInitialized())
	assert.NoError(t, store.Initialize())

	unreachable := New("http://127.0.0.1:1")
	assert.False(t, unreachable.IsInitialized())
	assert.Error(t, unreachable.Initialize())
}
