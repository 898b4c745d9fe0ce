package usecase

import (
	"context"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// EditTaskInput contains the parameters for editing a task. Nil fields are
// left unchanged.
type EditTaskInput struct {
	Title       *string
	Description *string
	Priority    *string
	Complexity  *string
	TaskID      int
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The updated task
}

// EditTask is the use case for updating a task's fields.
type EditTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *EditTask {
	return &EditTask{tasks: tasks, clock: clock, logger: logger}
}

// Execute applies the given field updates. The record is loaded, mutated in
// memory, and saved back whole.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Title == nil && in.Description == nil && in.Priority == nil && in.Complexity == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Priority != nil {
		priority, err := domain.ParsePriority(*in.Priority)
		if err != nil {
			return nil, err
		}
		task.Priority = priority
	}
	if in.Complexity != nil {
		complexity, err := domain.ParseComplexity(*in.Complexity)
		if err != nil {
			return nil, err
		}
		task.Complexity = &complexity
	}

	task.UpdatedAt = uc.clock.Now()
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", "edited")
	}

	return &EditTaskOutput{Task: task}, nil
}
