package memstore

import (
	"fmt"
	"os"

	"github.com/taskdeck/taskdeck/internal/domain"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML fixture layout.
type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
	Tasks      []seedTask     `yaml:"tasks"`
}

type seedCategory struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Order int    `yaml:"order"`
}

type seedTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    string `yaml:"priority"`
	Category    string `yaml:"category"` // Category name, resolved against the categories above
	DueDate     string `yaml:"dueDate"`  // RFC3339 or YYYY-MM-DD; malformed = no due date
	CreatedAt   string `yaml:"createdAt"`
	Completed   bool   `yaml:"completed"`
}

// Seed populates the store from a YAML fixture file. Categories are
// created first so tasks can reference them by name. Tasks with an
// unknown category load as uncategorized.
func (s *Store) Seed(path string, clock domain.Clock) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	categoryIDs := make(map[string]int, len(seed.Categories))
	for _, sc := range seed.Categories {
		id, _ := s.Categories().NextID()
		category := &domain.Category{
			ID:    id,
			Name:  sc.Name,
			Color: sc.Color,
			Order: sc.Order,
		}
		if category.Order == 0 {
			category.Order = id
		}
		if err := s.Categories().Save(category); err != nil {
			return fmt.Errorf("seed category %q: %w", sc.Name, err)
		}
		categoryIDs[sc.Name] = id
	}

	for _, st := range seed.Tasks {
		id, _ := s.Tasks().NextID()
		task := &domain.Task{
			ID:          id,
			Title:       st.Title,
			Description: st.Description,
			Priority:    domain.ParsePriority(st.Priority),
			DueDate:     domain.ParseDueDate(st.DueDate),
			Completed:   st.Completed,
			CreatedAt:   clock.Now(),
			Order:       id,
		}
		if created := domain.ParseDueDate(st.CreatedAt); created != nil {
			task.CreatedAt = *created
		}
		if catID, ok := categoryIDs[st.Category]; ok && st.Category != "" {
			task.CategoryID = &catID
		}
		if task.Completed {
			at := task.CreatedAt
			task.CompletedAt = &at
		}
		if err := s.Tasks().Save(task); err != nil {
			return fmt.Errorf("seed task %q: %w", st.Title, err)
		}
	}

	return nil
}
