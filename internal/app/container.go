// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/trustyhq/trusty/internal/domain"
	"github.com/trustyhq/trusty/internal/infra/claude"
	"github.com/trustyhq/trusty/internal/infra/config"
	"github.com/trustyhq/trusty/internal/infra/executor"
	"github.com/trustyhq/trusty/internal/infra/logging"
	"github.com/trustyhq/trusty/internal/infra/taskstore"
	"github.com/trustyhq/trusty/internal/usecase"
)

// Paths holds the filesystem layout for a project.
type Paths struct {
	RootDir   string // Working directory trusty was invoked from
	TrustyDir string // Path to .trusty
	TasksDir  string // Path to .trusty/tasks
}

// newPaths derives the project layout from the working directory.
func newPaths(dir string) Paths {
	return Paths{
		RootDir:   dir,
		TrustyDir: domain.TrustyDir(dir),
		TasksDir:  domain.TasksDir(dir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	Generator        domain.Generator
	Executor         domain.CommandExecutor
	ConfigLoader     domain.ConfigLoader
	Logger           domain.Logger

	// Configuration
	AppConfig *domain.Config
	Paths     Paths
}

// New creates a new Container rooted at the given directory.
func New(dir string) (*Container, error) {
	paths := newPaths(dir)

	configLoader := config.NewLoader(paths.TrustyDir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	store := taskstore.New(paths.TasksDir)
	logger := logging.New(paths.TrustyDir, logging.ParseLevel(cfg.Log.Level))
	exec := executor.NewClient()
	generator := claude.NewClient(cfg.Claude.Command, cfg.Claude.Model, exec)

	return &Container{
		Tasks:            store,
		StoreInitializer: store,
		Clock:            domain.RealClock{},
		Generator:        generator,
		Executor:         exec,
		ConfigLoader:     configLoader,
		Logger:           logger,
		AppConfig:        cfg,
		Paths:            paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(paths Paths, tasks domain.TaskRepository, storeInit domain.StoreInitializer, clock domain.Clock, generator domain.Generator, cfg *domain.Config) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Clock:            clock,
		Generator:        generator,
		Logger:           domain.NopLogger{},
		AppConfig:        cfg,
		Paths:            paths,
	}
}

// Close releases resources held by the container, such as the log file.
func (c *Container) Close() {
	if closer, ok := c.Logger.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}

// defaultPriority returns the configured default priority, falling back to
// medium when the configured value does not parse.
func (c *Container) defaultPriority() domain.Priority {
	p, err := domain.ParsePriority(c.AppConfig.Tasks.DefaultPriority)
	if err != nil {
		return domain.PriorityMedium
	}
	return p
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Generator, c.Clock, c.Logger, c.defaultPriority())
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks)
}

// SetStatusUseCase returns a new SetStatus use case.
func (c *Container) SetStatusUseCase() *usecase.SetStatus {
	return usecase.NewSetStatus(c.Tasks, c.Clock, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.SetStatusUseCase())
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Clock, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// AddDependencyUseCase returns a new AddDependency use case.
func (c *Container) AddDependencyUseCase() *usecase.AddDependency {
	return usecase.NewAddDependency(c.Tasks, c.Clock)
}

// RemoveDependencyUseCase returns a new RemoveDependency use case.
func (c *Container) RemoveDependencyUseCase() *usecase.RemoveDependency {
	return usecase.NewRemoveDependency(c.Tasks, c.Clock)
}

// AddSubtaskUseCase returns a new AddSubtask use case.
func (c *Container) AddSubtaskUseCase() *usecase.AddSubtask {
	return usecase.NewAddSubtask(c.Tasks, c.Generator, c.Clock, c.Logger)
}

// RemoveSubtaskUseCase returns a new RemoveSubtask use case.
func (c *Container) RemoveSubtaskUseCase() *usecase.RemoveSubtask {
	return usecase.NewRemoveSubtask(c.Tasks, c.Clock)
}

// DecomposeTaskUseCase returns a new DecomposeTask use case.
func (c *Container) DecomposeTaskUseCase() *usecase.DecomposeTask {
	return usecase.NewDecomposeTask(c.Tasks, c.Generator, c.Clock, c.Logger)
}

// NukeTasksUseCase returns a new NukeTasks use case.
func (c *Container) NukeTasksUseCase() *usecase.NukeTasks {
	return usecase.NewNukeTasks(c.Tasks, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Clock, c.Logger, c.defaultPriority())
}
