package usecase

import (
	"context"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// RemoveDependencyInput contains the parameters for removing a dependency.
type RemoveDependencyInput struct {
	TaskID       int // Task to modify
	DependencyID int // Dependency to remove
}

// RemoveDependency is the use case for removing a dependency from a task.
type RemoveDependency struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewRemoveDependency creates a new RemoveDependency use case.
func NewRemoveDependency(tasks domain.TaskRepository, clock domain.Clock) *RemoveDependency {
	return &RemoveDependency{tasks: tasks, clock: clock}
}

// Execute removes the dependency. Removing an ID that is not present is a
// no-op beyond the timestamp touch.
func (uc *RemoveDependency) Execute(_ context.Context, in RemoveDependencyInput) error {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return err
	}
	task.RemoveDependency(in.DependencyID, uc.clock.Now())
	if err := uc.tasks.Save(task); err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}
