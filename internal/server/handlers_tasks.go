package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// createTaskRequest is the request body for creating a task.
type createTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	CategoryID  *int    `json:"categoryId"`
	DueDate     *string `json:"dueDate"`
}

// updateTaskRequest is the request body for patching a task. Absent
// fields are left untouched; explicit nulls clear nullable fields. The
// nullable fields are raw JSON so that absent and null stay distinct.
type updateTaskRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Priority    *string         `json:"priority"`
	CategoryID  json.RawMessage `json:"categoryId"`
	DueDate     json.RawMessage `json:"dueDate"`
}

func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// GET /api/tasks?search=&category=&priority=&status=
func (s *Server) handleListTasks(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := s.listTasks.Execute(c.Request.Context(), usecase.ListTasksInput{Filter: filter})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": toTaskPayloads(out.Tasks),
		"stats": out.Stats,
	})
}

// filterFromQuery builds the display filter from query parameters.
// Identifier text is normalized exactly once, here.
func filterFromQuery(c *gin.Context) (domain.Filter, error) {
	var filter domain.Filter
	filter.Search = c.Query("search")

	if raw := c.Query("category"); raw != "" {
		id, err := domain.ParseID(raw)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = &id
	}

	if raw := c.Query("priority"); raw != "" {
		priority := domain.ParsePriority(raw)
		if !priority.IsValid() {
			return filter, domain.ErrInvalidPriority
		}
		filter.Priority = priority
	}

	if raw := c.Query("status"); raw != "" {
		status := domain.Status(raw)
		if !status.IsValid() {
			return filter, domain.ErrInvalidStatus
		}
		filter.Status = status
	}

	return filter, nil
}

// POST /api/tasks
func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := usecase.NewTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		CategoryID:  req.CategoryID,
	}
	if req.DueDate != nil {
		in.DueDate = domain.ParseDueDate(*req.DueDate)
	}

	out, err := s.newTask.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTaskPayload(out.Task))
}

// GET /api/tasks/:id
func (s *Server) handleGetTask(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := s.showTask.Execute(c.Request.Context(), usecase.ShowTaskInput{TaskID: id})
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{
		"task":   toTaskPayload(out.Task),
		"bucket": out.Bucket,
	}
	if out.Category != nil {
		resp["category"] = toCategoryPayload(out.Category, 0)
	}
	c.JSON(http.StatusOK, resp)
}

// PATCH /api/tasks/:id
func (s *Server) handleUpdateTask(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := usecase.EditTaskInput{
		TaskID:      id,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if req.CategoryID != nil {
		var catID *int
		if !isJSONNull(req.CategoryID) {
			var n int
			if err := json.Unmarshal(req.CategoryID, &n); err != nil {
				writeError(c, domain.ErrInvalidID)
				return
			}
			catID = &n
		}
		in.CategoryID = &catID
	}
	if req.DueDate != nil {
		var due *time.Time
		if !isJSONNull(req.DueDate) {
			var raw string
			if err := json.Unmarshal(req.DueDate, &raw); err == nil {
				due = domain.ParseDueDate(raw)
			}
		}
		in.DueDate = &due
	}

	out, err := s.editTask.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskPayload(out.Task))
}

// DELETE /api/tasks/:id
func (s *Server) handleDeleteTask(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if err := s.deleteTask.Execute(c.Request.Context(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// POST /api/tasks/:id/toggle
func (s *Server) handleToggleTask(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := s.showTask.Execute(c.Request.Context(), usecase.ShowTaskInput{TaskID: id})
	if err != nil {
		writeError(c, err)
		return
	}

	var task *domain.Task
	if out.Task.Completed {
		reopened, err := s.reopenTask.Execute(c.Request.Context(), usecase.ReopenTaskInput{TaskID: id})
		if err != nil {
			writeError(c, err)
			return
		}
		task = reopened.Task
	} else {
		completed, err := s.completeTask.Execute(c.Request.Context(), usecase.CompleteTaskInput{TaskID: id})
		if err != nil {
			writeError(c, err)
			return
		}
		task = completed.Task
	}

	c.JSON(http.StatusOK, toTaskPayload(task))
}

// GET /api/stats
func (s *Server) handleStats(c *gin.Context) {
	out, err := s.taskStats.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Stats)
}

// GET /api/agenda
func (s *Server) handleAgenda(c *gin.Context) {
	out, err := s.taskStats.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGroupsPayload(out.Groups))
}
