package usecase

import (
	"context"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// DecomposeTaskInput contains the parameters for decomposing a task.
type DecomposeTaskInput struct {
	TaskID  int  // Task to decompose
	Count   int  // Number of subtasks to generate
	Preview bool // Generate and return fields without creating tasks
}

// DecomposeTaskOutput contains the result of decomposing a task.
type DecomposeTaskOutput struct {
	Fields  []domain.GeneratedFields // Generated fields (preview mode)
	Created []*domain.Task           // Created subtasks (non-preview mode)
}

// DecomposeTask is the use case for breaking a task into AI-generated
// subtasks.
type DecomposeTask struct {
	tasks     domain.TaskRepository
	generator domain.Generator
	clock     domain.Clock
	logger    domain.Logger
}

// NewDecomposeTask creates a new DecomposeTask use case.
func NewDecomposeTask(tasks domain.TaskRepository, generator domain.Generator, clock domain.Clock, logger domain.Logger) *DecomposeTask {
	return &DecomposeTask{tasks: tasks, generator: generator, clock: clock, logger: logger}
}

// Execute generates Count subtask field sets for the task. In preview mode
// the fields are returned without touching the store. Otherwise each
// subtask is created and linked in turn: child saved, parent reloaded and
// saved. A failure partway through leaves the subtasks created so far in
// place; there is no rollback.
func (uc *DecomposeTask) Execute(ctx context.Context, in DecomposeTaskInput) (*DecomposeTaskOutput, error) {
	if uc.generator == nil {
		return nil, domain.ErrNoGenerator
	}

	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, err
	}

	fields, err := uc.generator.Decompose(ctx, task, in.Count)
	if err != nil {
		return nil, err
	}

	if in.Preview {
		return &DecomposeTaskOutput{Fields: fields}, nil
	}

	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	nextID := domain.NextID(all)

	created := make([]*domain.Task, 0, len(fields))
	for _, f := range fields {
		resolved, err := fieldsFromGenerated(&f)
		if err != nil {
			return nil, err
		}

		now := uc.clock.Now()
		subtask := domain.NewTask(nextID, resolved.Title, resolved.Description, resolved.Priority, now)
		subtask.Tags = resolved.Tags
		if err := uc.tasks.Save(subtask); err != nil {
			return nil, fmt.Errorf("save subtask: %w", err)
		}

		parent, err := uc.tasks.Get(in.TaskID)
		if err != nil {
			return nil, fmt.Errorf("reload parent: %w", err)
		}
		parent.AddSubtask(nextID, uc.clock.Now())
		if err := uc.tasks.Save(parent); err != nil {
			return nil, fmt.Errorf("save parent: %w", err)
		}

		created = append(created, subtask)
		nextID++
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "decompose", fmt.Sprintf("created %d subtask(s)", len(created)))
	}

	return &DecomposeTaskOutput{Created: created}, nil
}
