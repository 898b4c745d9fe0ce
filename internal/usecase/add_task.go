package usecase

import (
	"context"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Title        string   // Task title (required unless Prompt is set)
	Description  string   // Task description (optional)
	Priority     string   // Priority string (empty = configured default)
	Prompt       string   // Natural-language prompt for AI generation
	Tags         []string // Tags (optional)
	Dependencies []int    // Dependency task IDs (optional)
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	Task      *domain.Task // The created task
	Generated bool         // True if fields came from the generator
}

// AddTask is the use case for creating a new task, either from explicit
// fields or from a natural-language prompt via the generator.
type AddTask struct {
	tasks           domain.TaskRepository
	generator       domain.Generator
	clock           domain.Clock
	logger          domain.Logger
	defaultPriority domain.Priority
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, generator domain.Generator, clock domain.Clock, logger domain.Logger, defaultPriority domain.Priority) *AddTask {
	return &AddTask{
		tasks:           tasks,
		generator:       generator,
		clock:           clock,
		logger:          logger,
		defaultPriority: defaultPriority,
	}
}

// Execute creates a new task with the given input.
func (uc *AddTask) Execute(ctx context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	// The ID is derived fresh from the current task set, never from a
	// stored counter. Gaps from deletions are not refilled.
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	id := domain.NextID(all)

	fields, generated, err := uc.resolveFields(ctx, in)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	task := domain.NewTask(id, fields.Title, fields.Description, fields.Priority, now)
	task.Tags = fields.Tags
	for _, dep := range in.Dependencies {
		task.AddDependency(dep, now)
	}

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(id, "task", fmt.Sprintf("created: %q", fields.Title))
	}

	return &AddTaskOutput{Task: task, Generated: generated}, nil
}

func (uc *AddTask) resolveFields(ctx context.Context, in AddTaskInput) (taskFields, bool, error) {
	if in.Prompt != "" {
		if uc.generator == nil {
			return taskFields{}, false, domain.ErrNoGenerator
		}
		g, err := uc.generator.Generate(ctx, in.Prompt)
		if err != nil {
			return taskFields{}, false, err
		}
		fields, err := fieldsFromGenerated(g)
		if err != nil {
			return taskFields{}, false, err
		}
		return fields, true, nil
	}

	if in.Title == "" {
		return taskFields{}, false, domain.ErrEmptyTitle
	}

	priorityStr := in.Priority
	if priorityStr == "" {
		priorityStr = string(uc.defaultPriority)
	}
	priority, err := domain.ParsePriority(priorityStr)
	if err != nil {
		return taskFields{}, false, err
	}

	return taskFields{
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Tags:        in.Tags,
	}, false, nil
}
