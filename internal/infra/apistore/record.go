package apistore

import (
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// taskRecord is the wire form of a task record.
// Fields are ordered to minimize memory padding.
type taskRecord struct {
	CategoryID  *int    `json:"categoryId"`
	DueDate     *string `json:"dueDate"`
	CompletedAt *string `json:"completedAt"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority"`
	CreatedAt   string  `json:"createdAt"`
	ID          int     `json:"id"`
	Order       int     `json:"order"`
	Completed   bool    `json:"completed"`
}

// categoryRecord is the wire form of a category record.
type categoryRecord struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	ID    int    `json:"id"`
	Order int    `json:"order"`
}

func toTaskRecord(t *domain.Task) taskRecord {
	rec := taskRecord{
		CategoryID:  t.CategoryID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		ID:          t.ID,
		Order:       t.Order,
		Completed:   t.Completed,
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(time.RFC3339)
		rec.DueDate = &due
	}
	if t.CompletedAt != nil {
		at := t.CompletedAt.Format(time.RFC3339)
		rec.CompletedAt = &at
	}
	return rec
}

func (rec taskRecord) toTask() *domain.Task {
	t := &domain.Task{
		CategoryID:  rec.CategoryID,
		Title:       rec.Title,
		Description: rec.Description,
		Priority:    domain.Priority(rec.Priority),
		ID:          rec.ID,
		Order:       rec.Order,
		Completed:   rec.Completed,
	}
	if ts, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
		t.CreatedAt = ts
	}
	if rec.DueDate != nil {
		if ts, err := time.Parse(time.RFC3339, *rec.DueDate); err == nil {
			t.DueDate = &ts
		}
	}
	if rec.CompletedAt != nil {
		if ts, err := time.Parse(time.RFC3339, *rec.CompletedAt); err == nil {
			t.CompletedAt = &ts
		}
	}
	return t
}

func toCategoryRecord(c *domain.Category) categoryRecord {
	return categoryRecord{
		Name:  c.Name,
		Color: c.Color,
		ID:    c.ID,
		Order: c.Order,
	}
}

func (rec categoryRecord) toCategory() *domain.Category {
	return &domain.Category{
		Name:  rec.Name,
		Color: rec.Color,
		ID:    rec.ID,
		Order: rec.Order,
	}
}
