package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// createCategoryRequest is the request body for creating a category.
type createCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// updateCategoryRequest is the request body for patching a category.
type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Order *int    `json:"order"`
}

// GET /api/categories
func (s *Server) handleListCategories(c *gin.Context) {
	out, err := s.listCategories.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	payloads := make([]categoryPayload, 0, len(out.Categories))
	for _, cc := range out.Categories {
		payloads = append(payloads, toCategoryPayload(cc.Category, cc.Count))
	}
	c.JSON(http.StatusOK, gin.H{"categories": payloads})
}

// POST /api/categories
func (s *Server) handleCreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := s.newCategory.Execute(c.Request.Context(), usecase.NewCategoryInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCategoryPayload(out.Category, 0))
}

// GET /api/categories/:id
func (s *Server) handleGetCategory(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := s.listCategories.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	for _, cc := range out.Categories {
		if cc.Category.ID == id {
			c.JSON(http.StatusOK, toCategoryPayload(cc.Category, cc.Count))
			return
		}
	}
	writeError(c, domain.ErrCategoryNotFound)
}

// PATCH /api/categories/:id
func (s *Server) handleUpdateCategory(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := s.editCategory.Execute(c.Request.Context(), usecase.EditCategoryInput{
		CategoryID: id,
		Name:       req.Name,
		Color:      req.Color,
		Order:      req.Order,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryPayload(out.Category, 0))
}

// DELETE /api/categories/:id
func (s *Server) handleDeleteCategory(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := s.deleteCategory.Execute(c.Request.Context(), usecase.DeleteCategoryInput{CategoryID: id})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true, "detachedTasks": out.DetachedTasks})
}
