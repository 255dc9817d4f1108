// Package server exposes the Record Store and the derived task views
// over HTTP. It is the remote backing that the apistore client talks
// to, and doubles as the API for browser frontends.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Server wires the use cases to gin handlers.
type Server struct {
	newTask        *usecase.NewTask
	editTask       *usecase.EditTask
	completeTask   *usecase.CompleteTask
	reopenTask     *usecase.ReopenTask
	deleteTask     *usecase.DeleteTask
	showTask       *usecase.ShowTask
	listTasks      *usecase.ListTasks
	taskStats      *usecase.TaskStats
	newCategory    *usecase.NewCategory
	editCategory   *usecase.EditCategory
	deleteCategory *usecase.DeleteCategory
	listCategories *usecase.ListCategories
	tasks          domain.TaskRepository
	categories     domain.CategoryRepository
	logger         domain.Logger
}

// New creates a Server over the given repositories.
func New(tasks domain.TaskRepository, categories domain.CategoryRepository, clock domain.Clock, logger domain.Logger) *Server {
	return &Server{
		newTask:        usecase.NewNewTask(tasks, categories, clock, logger),
		editTask:       usecase.NewEditTask(tasks, categories, logger),
		completeTask:   usecase.NewCompleteTask(tasks, clock, logger),
		reopenTask:     usecase.NewReopenTask(tasks, logger),
		deleteTask:     usecase.NewDeleteTask(tasks, logger),
		showTask:       usecase.NewShowTask(tasks, categories, clock),
		listTasks:      usecase.NewListTasks(tasks, clock),
		taskStats:      usecase.NewTaskStats(tasks, clock),
		newCategory:    usecase.NewNewCategory(categories, logger),
		editCategory:   usecase.NewEditCategory(categories, logger),
		deleteCategory: usecase.NewDeleteCategory(categories, tasks, logger),
		listCategories: usecase.NewListCategories(categories, tasks),
		tasks:          tasks,
		categories:     categories,
		logger:         logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.GET("/tasks", s.handleListTasks)
		api.POST("/tasks", s.handleCreateTask)
		api.GET("/tasks/:id", s.handleGetTask)
		api.PATCH("/tasks/:id", s.handleUpdateTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)
		api.POST("/tasks/:id/toggle", s.handleToggleTask)

		api.GET("/categories", s.handleListCategories)
		api.POST("/categories", s.handleCreateCategory)
		api.GET("/categories/:id", s.handleGetCategory)
		api.PATCH("/categories/:id", s.handleUpdateCategory)
		api.DELETE("/categories/:id", s.handleDeleteCategory)

		api.GET("/stats", s.handleStats)
		api.GET("/agenda", s.handleAgenda)

		// Raw record endpoints for remote store clients. These bypass
		// the use cases and speak repository semantics directly.
		store := api.Group("/store")
		{
			store.GET("/tasks", s.handleStoreListTasks)
			store.GET("/tasks/:id", s.handleStoreGetTask)
			store.PUT("/tasks/:id", s.handleStorePutTask)
			store.DELETE("/tasks/:id", s.handleStoreDeleteTask)
			store.POST("/tasks/next-id", s.handleStoreNextTaskID)

			store.GET("/categories", s.handleStoreListCategories)
			store.GET("/categories/:id", s.handleStoreGetCategory)
			store.PUT("/categories/:id", s.handleStorePutCategory)
			store.DELETE("/categories/:id", s.handleStoreDeleteCategory)
			store.POST("/categories/next-id", s.handleStoreNextCategoryID)
		}
	}

	return r
}

// Run starts the HTTP server on the given address and blocks.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
