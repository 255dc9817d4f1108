// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/apistore"
	"github.com/taskdeck/taskdeck/internal/infra/config"
	"github.com/taskdeck/taskdeck/internal/infra/jsonstore"
	"github.com/taskdeck/taskdeck/internal/infra/logging"
	"github.com/taskdeck/taskdeck/internal/infra/memstore"
	"github.com/taskdeck/taskdeck/internal/server"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// DataDirName is the per-project data directory holding the JSON store
// and the log file.
const DataDirName = ".taskdeck"

// Paths holds the filesystem locations the application works with.
type Paths struct {
	ProjectDir string // Directory taskdeck was started in
	DataDir    string // Path to the .taskdeck data directory
	StorePath  string // Path to tasks.json
}

func newPaths(projectDir string) Paths {
	dataDir := filepath.Join(projectDir, DataDirName)
	return Paths{
		ProjectDir: projectDir,
		DataDir:    dataDir,
		StorePath:  filepath.Join(dataDir, "tasks.json"),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	Categories       domain.CategoryRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	ConfigLoader     domain.ConfigLoader

	// Pointer fields
	Logger    *logging.Logger
	AppConfig *domain.Config

	// Configuration
	Paths Paths
}

// New creates a new Container rooted at the given project directory.
func New(projectDir string) (*Container, error) {
	paths := newPaths(projectDir)

	configLoader := config.NewLoader(projectDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(paths.DataDir, logging.ParseLevel(appConfig.Log.Level))

	c := &Container{
		Clock:        domain.RealClock{},
		ConfigLoader: configLoader,
		Logger:       logger,
		AppConfig:    appConfig,
		Paths:        paths,
	}

	if err := c.bindStore(appConfig); err != nil {
		return nil, err
	}
	return c, nil
}

// bindStore selects the Record Store backing from config.
func (c *Container) bindStore(cfg *domain.Config) error {
	switch cfg.Store.Type {
	case domain.StoreTypeMemory, "":
		store := memstore.New()
		if cfg.Store.Seed != "" {
			if err := store.Seed(cfg.Store.Seed, c.Clock); err != nil {
				return fmt.Errorf("load seed: %w", err)
			}
		}
		c.Tasks = store.Tasks()
		c.Categories = store.Categories()
		c.StoreInitializer = store

	case domain.StoreTypeJSON:
		path := cfg.Store.Path
		if path == "" {
			path = c.Paths.StorePath
		}
		store := jsonstore.New(path)
		c.Tasks = store.Tasks()
		c.Categories = store.Categories()
		c.StoreInitializer = store

	case domain.StoreTypeAPI:
		store := apistore.New(cfg.API.URL)
		c.Tasks = store.Tasks()
		c.Categories = store.Categories()
		c.StoreInitializer = store

	default:
		return fmt.Errorf("unknown store type %q", cfg.Store.Type)
	}
	return nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(paths Paths, tasks domain.TaskRepository, categories domain.CategoryRepository, storeInit domain.StoreInitializer, clock domain.Clock) *Container {
	return &Container{
		Tasks:            tasks,
		Categories:       categories,
		StoreInitializer: storeInit,
		Clock:            clock,
		AppConfig:        domain.NewDefaultConfig(),
		Paths:            paths,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.Logger != nil {
		return c.Logger.Close()
	}
	return nil
}

// logger returns the domain logger port, nil-safe for test containers.
func (c *Container) logger() domain.Logger {
	if c.Logger == nil {
		return nil
	}
	return c.Logger
}

// UseCase factory methods

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks, c.Categories, c.Clock, c.logger())
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Categories, c.logger())
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Clock, c.logger())
}

// ReopenTaskUseCase returns a new ReopenTask use case.
func (c *Container) ReopenTaskUseCase() *usecase.ReopenTask {
	return usecase.NewReopenTask(c.Tasks, c.logger())
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.logger())
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks, c.Categories, c.Clock)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Clock)
}

// TaskStatsUseCase returns a new TaskStats use case.
func (c *Container) TaskStatsUseCase() *usecase.TaskStats {
	return usecase.NewTaskStats(c.Tasks, c.Clock)
}

// NewCategoryUseCase returns a new NewCategory use case.
func (c *Container) NewCategoryUseCase() *usecase.NewCategory {
	return usecase.NewNewCategory(c.Categories, c.logger())
}

// EditCategoryUseCase returns a new EditCategory use case.
func (c *Container) EditCategoryUseCase() *usecase.EditCategory {
	return usecase.NewEditCategory(c.Categories, c.logger())
}

// DeleteCategoryUseCase returns a new DeleteCategory use case.
func (c *Container) DeleteCategoryUseCase() *usecase.DeleteCategory {
	return usecase.NewDeleteCategory(c.Categories, c.Tasks, c.logger())
}

// ListCategoriesUseCase returns a new ListCategories use case.
func (c *Container) ListCategoriesUseCase() *usecase.ListCategories {
	return usecase.NewListCategories(c.Categories, c.Tasks)
}

// Server returns the HTTP API server over the container's store.
func (c *Container) Server() *server.Server {
	return server.New(c.Tasks, c.Categories, c.Clock, c.logger())
}
