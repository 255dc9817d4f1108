package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "taskdeck.json"))
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return store
}

func TestStore_Initialize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taskdeck.json")

	store := New(path)

	if store.IsInitialized() {
		t.Error("IsInitialized() = true before Initialize")
	}

	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}

	// Initialize again should be idempotent
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() second call error = %v", err)
	}
}

func TestStore_UninitializedReads(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "taskdeck.json"))

	_, err := store.Tasks().List(domain.TaskFilter{})
	if !errors.Is(err, domain.ErrNotInitialized) {
		t.Errorf("List() error = %v, want ErrNotInitialized", err)
	}
}

func TestStore_NextID(t *testing.T) {
	store := newTestStore(t)

	id1, err := store.Tasks().NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id1 != 1 {
		t.Errorf("NextID() = %d, want 1", id1)
	}

	id2, err := store.Tasks().NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id2 != 2 {
		t.Errorf("NextID() = %d, want 2", id2)
	}

	// Category IDs advance independently.
	cid, err := store.Categories().NextID()
	if err != nil {
		t.Fatalf("Categories().NextID() error = %v", err)
	}
	if cid != 1 {
		t.Errorf("Categories().NextID() = %d, want 1", cid)
	}
}

func TestStore_SaveAndGetTask(t *testing.T) {
	store := newTestStore(t)

	due := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	catID := 3
	task := &domain.Task{
		ID:         1,
		Title:      "Test Task",
		Priority:   domain.PriorityHigh,
		DueDate:    &due,
		CategoryID: &catID,
		CreatedAt:  time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		Order:      1,
	}

	if err := store.Tasks().Save(task); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Tasks().Get(1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() = nil, want task")
	}
	if got.Title != "Test Task" {
		t.Errorf("Title = %q, want %q", got.Title, "Test Task")
	}
	if got.Priority != domain.PriorityHigh {
		t.Errorf("Priority = %q, want high", got.Priority)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
	if got.CategoryID == nil || *got.CategoryID != 3 {
		t.Errorf("CategoryID = %v, want 3", got.CategoryID)
	}

	// Unknown IDs return nil, not an error.
	missing, err := store.Tasks().Get(42)
	if err != nil {
		t.Fatalf("Get(42) error = %v", err)
	}
	if missing != nil {
		t.Errorf("Get(42) = %v, want nil", missing)
	}
}

func TestStore_ListTasksFilter(t *testing.T) {
	store := newTestStore(t)

	one := 1
	if err := store.Tasks().Save(&domain.Task{ID: 1, Title: "a", CategoryID: &one, Order: 2}); err != nil {
		t.Fatal(err)
	}
	if err := store.Tasks().Save(&domain.Task{ID: 2, Title: "b", Completed: true, Order: 1}); err != nil {
		t.Fatal(err)
	}

	all, err := store.Tasks().List(domain.TaskFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List() len = %d, want 2", len(all))
	}
	// Ordered by insertion hint, not ID.
	if all[0].ID != 2 || all[1].ID != 1 {
		t.Errorf("List() order = [%d %d], want [2 1]", all[0].ID, all[1].ID)
	}

	inCategory, err := store.Tasks().List(domain.TaskFilter{CategoryID: &one})
	if err != nil {
		t.Fatalf("List(category) error = %v", err)
	}
	if len(inCategory) != 1 || inCategory[0].ID != 1 {
		t.Errorf("List(category) = %v, want task #1 only", inCategory)
	}
}

func TestStore_DeleteTask(t *testing.T) {
	store := newTestStore(t)

	if err := store.Tasks().Save(&domain.Task{ID: 1, Title: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Tasks().Delete(1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, err := store.Tasks().Get(1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() after delete = %v, want nil", got)
	}
}

func TestStore_CategoryRoundTrip(t *testing.T) {
	store := newTestStore(t)

	category := &domain.Category{ID: 1, Name: "Work", Color: "#5b21b6", Order: 1}
	if err := store.Categories().Save(category); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Categories().Get(1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || got.Name != "Work" {
		t.Errorf("Get() = %v, want Work", got)
	}

	list, err := store.Categories().List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() len = %d, want 1", len(list))
	}

	if err := store.Categories().Delete(1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got, err = store.Categories().Get(1)
	if err != nil {
		t.Fatalf("Get() after delete error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() after delete = %v, want nil", got)
	}
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.json")
	first := New(path)
	if err := first.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := first.Tasks().Save(&domain.Task{ID: 1, Title: "persisted"}); err != nil {
		t.Fatal(err)
	}

	second := New(path)
	got, err := second.Tasks().Get(1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || got.Title != "persisted" {
		t.Errorf("Get() = %v, want persisted task", got)
	}
}
