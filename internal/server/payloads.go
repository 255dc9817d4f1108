package server

import (
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// taskPayload is the wire representation of a task.
type taskPayload struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority"`
	CategoryID  *int    `json:"categoryId"`
	DueDate     *string `json:"dueDate"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completedAt"`
	CreatedAt   string  `json:"createdAt"`
	Order       int     `json:"order"`
}

// categoryPayload is the wire representation of a category.
type categoryPayload struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	TaskCount int    `json:"taskCount"`
	Order     int    `json:"order"`
}

// groupsPayload buckets task payloads for the agenda view.
type groupsPayload struct {
	Overdue  []taskPayload `json:"overdue"`
	Today    []taskPayload `json:"today"`
	Tomorrow []taskPayload `json:"tomorrow"`
	ThisWeek []taskPayload `json:"thisWeek"`
	Later    []taskPayload `json:"later"`
	NoDate   []taskPayload `json:"noDate"`
}

func toTaskPayload(t *domain.Task) taskPayload {
	p := taskPayload{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		CategoryID:  t.CategoryID,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		Order:       t.Order,
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(time.RFC3339)
		p.DueDate = &due
	}
	if t.CompletedAt != nil {
		at := t.CompletedAt.Format(time.RFC3339)
		p.CompletedAt = &at
	}
	return p
}

func toTaskPayloads(tasks []*domain.Task) []taskPayload {
	out := make([]taskPayload, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskPayload(t))
	}
	return out
}

func toCategoryPayload(c *domain.Category, count int) categoryPayload {
	return categoryPayload{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		TaskCount: count,
		Order:     c.Order,
	}
}

func toGroupsPayload(g domain.Groups) groupsPayload {
	return groupsPayload{
		Overdue:  toTaskPayloads(g.Overdue),
		Today:    toTaskPayloads(g.Today),
		Tomorrow: toTaskPayloads(g.Tomorrow),
		ThisWeek: toTaskPayloads(g.ThisWeek),
		Later:    toTaskPayloads(g.Later),
		NoDate:   toTaskPayloads(g.NoDate),
	}
}
