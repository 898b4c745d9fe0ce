package usecase

import (
	"context"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// AddDependencyInput contains the parameters for adding a dependency.
type AddDependencyInput struct {
	TaskID       int // Task to modify
	DependencyID int // Task that must be done first
}

// AddDependency is the use case for adding a dependency to a task.
type AddDependency struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewAddDependency creates a new AddDependency use case.
func NewAddDependency(tasks domain.TaskRepository, clock domain.Clock) *AddDependency {
	return &AddDependency{tasks: tasks, clock: clock}
}

// Execute adds the dependency. The dependency ID is not checked against the
// store; referential integrity is not enforced at write time.
func (uc *AddDependency) Execute(_ context.Context, in AddDependencyInput) error {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return err
	}
	task.AddDependency(in.DependencyID, uc.clock.Now())
	if err := uc.tasks.Save(task); err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}
