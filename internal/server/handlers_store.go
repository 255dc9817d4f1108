package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func fromTaskPayload(p taskPayload) *domain.Task {
	t := &domain.Task{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Priority:    domain.Priority(p.Priority),
		CategoryID:  p.CategoryID,
		Completed:   p.Completed,
		Order:       p.Order,
	}
	if ts, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		t.CreatedAt = ts
	}
	if p.DueDate != nil {
		if ts, err := time.Parse(time.RFC3339, *p.DueDate); err == nil {
			t.DueDate = &ts
		}
	}
	if p.CompletedAt != nil {
		if ts, err := time.Parse(time.RFC3339, *p.CompletedAt); err == nil {
			t.CompletedAt = &ts
		}
	}
	return t
}

func fromCategoryPayload(p categoryPayload) *domain.Category {
	return &domain.Category{
		ID:    p.ID,
		Name:  p.Name,
		Color: p.Color,
		Order: p.Order,
	}
}

// GET /api/store/tasks?category=&completed=
func (s *Server) handleStoreListTasks(c *gin.Context) {
	var filter domain.TaskFilter
	if raw := c.Query("category"); raw != "" {
		id, err := domain.ParseID(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("completed"); raw != "" {
		done, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "completed must be a boolean"})
			return
		}
		filter.Completed = &done
	}

	tasks, err := s.tasks.List(filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": toTaskPayloads(tasks)})
}

// GET /api/store/tasks/:id
func (s *Server) handleStoreGetTask(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	task, err := s.tasks.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if task == nil {
		writeError(c, domain.ErrTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, toTaskPayload(task))
}

// PUT /api/store/tasks/:id
func (s *Server) handleStorePutTask(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	var p taskPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := fromTaskPayload(p)
	task.ID = id
	if err := s.tasks.Save(task); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskPayload(task))
}

// DELETE /api/store/tasks/:id
func (s *Server) handleStoreDeleteTask(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if err := s.tasks.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// POST /api/store/tasks/next-id
func (s *Server) handleStoreNextTaskID(c *gin.Context) {
	id, err := s.tasks.NextID()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GET /api/store/categories
func (s *Server) handleStoreListCategories(c *gin.Context) {
	categories, err := s.categories.List()
	if err != nil {
		writeError(c, err)
		return
	}

	payloads := make([]categoryPayload, 0, len(categories))
	for _, cat := range categories {
		payloads = append(payloads, toCategoryPayload(cat, 0))
	}
	c.JSON(http.StatusOK, gin.H{"categories": payloads})
}

// GET /api/store/categories/:id
func (s *Server) handleStoreGetCategory(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	category, err := s.categories.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if category == nil {
		writeError(c, domain.ErrCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, toCategoryPayload(category, 0))
}

// PUT /api/store/categories/:id
func (s *Server) handleStorePutCategory(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	var p categoryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := fromCategoryPayload(p)
	category.ID = id
	if err := s.categories.Save(category); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryPayload(category, 0))
}

// DELETE /api/store/categories/:id
func (s *Server) handleStoreDeleteCategory(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if err := s.categories.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// POST /api/store/categories/next-id
func (s *Server) handleStoreNextCategoryID(c *gin.Context) {
	id, err := s.categories.NextID()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
