package usecase

import (
	"context"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// AddSubtaskInput contains the parameters for creating a subtask.
// Fields are ordered to minimize memory padding.
type AddSubtaskInput struct {
	Title       string   // Subtask title (required unless Prompt is set)
	Description string   // Subtask description (optional)
	Priority    string   // Priority string (empty = inherit from parent)
	Prompt      string   // Natural-language prompt for AI generation
	Tags        []string // Tags (nil = inherit from parent)
	ParentID    int      // Parent task ID
}

// AddSubtaskOutput contains the result of creating a subtask.
type AddSubtaskOutput struct {
	Task      *domain.Task // The created subtask
	Generated bool         // True if fields came from the generator
}

// AddSubtask is the use case for creating a child task and linking it into
// its parent's subtask list.
type AddSubtask struct {
	tasks     domain.TaskRepository
	generator domain.Generator
	clock     domain.Clock
	logger    domain.Logger
}

// NewAddSubtask creates a new AddSubtask use case.
func NewAddSubtask(tasks domain.TaskRepository, generator domain.Generator, clock domain.Clock, logger domain.Logger) *AddSubtask {
	return &AddSubtask{tasks: tasks, generator: generator, clock: clock, logger: logger}
}

// Execute creates the subtask and appends its ID to the parent. The child
// save and the parent save are two independent store writes with no
// rollback: if the parent save fails, the child record persists as an
// orphan. That is the accepted trade-off for a single-user local tool.
func (uc *AddSubtask) Execute(ctx context.Context, in AddSubtaskInput) (*AddSubtaskOutput, error) {
	parent, err := uc.tasks.Get(in.ParentID)
	if err != nil {
		return nil, err
	}

	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	id := domain.NextID(all)

	fields, generated, err := uc.resolveFields(ctx, parent, in)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	subtask := domain.NewTask(id, fields.Title, fields.Description, fields.Priority, now)
	subtask.Tags = fields.Tags

	if err := uc.tasks.Save(subtask); err != nil {
		return nil, fmt.Errorf("save subtask: %w", err)
	}

	// Reload the parent before linking; the subtask save may have been
	// preceded by other writes.
	parent, err = uc.tasks.Get(in.ParentID)
	if err != nil {
		return nil, fmt.Errorf("reload parent: %w", err)
	}
	parent.AddSubtask(id, uc.clock.Now())
	if err := uc.tasks.Save(parent); err != nil {
		return nil, fmt.Errorf("save parent: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(id, "subtask", fmt.Sprintf("created %q under #%d", fields.Title, in.ParentID))
	}

	return &AddSubtaskOutput{Task: subtask, Generated: generated}, nil
}

func (uc *AddSubtask) resolveFields(ctx context.Context, parent *domain.Task, in AddSubtaskInput) (taskFields, bool, error) {
	if in.Prompt != "" {
		if uc.generator == nil {
			return taskFields{}, false, domain.ErrNoGenerator
		}
		prompt := fmt.Sprintf("Parent task: '%s'. %s", parent.Title, in.Prompt)
		g, err := uc.generator.Generate(ctx, prompt)
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

	// Omitted priority and tags are inherited from the parent.
	priority := parent.Priority
	if in.Priority != "" {
		parsed, err := domain.ParsePriority(in.Priority)
		if err != nil {
			return taskFields{}, false, err
		}
		priority = parsed
	}
	tags := in.Tags
	if tags == nil {
		tags = append([]string(nil), parent.Tags...)
	}

	return taskFields{
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Tags:        tags,
	}, false, nil
}
