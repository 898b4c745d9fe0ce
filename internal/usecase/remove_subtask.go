package usecase

import (
	"context"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// RemoveSubtaskInput contains the parameters for unlinking a subtask.
type RemoveSubtaskInput struct {
	ParentID  int // Parent task to modify
	SubtaskID int // Subtask ID to remove from the parent's list
}

// RemoveSubtaskOutput contains the result of unlinking a subtask.
type RemoveSubtaskOutput struct {
	Removed bool // False if the ID was not in the parent's list
}

// RemoveSubtask is the use case for removing a subtask reference from a
// parent. The child task record itself is not deleted.
type RemoveSubtask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewRemoveSubtask creates a new RemoveSubtask use case.
func NewRemoveSubtask(tasks domain.TaskRepository, clock domain.Clock) *RemoveSubtask {
	return &RemoveSubtask{tasks: tasks, clock: clock}
}

// Execute removes the subtask ID from the parent's list.
func (uc *RemoveSubtask) Execute(_ context.Context, in RemoveSubtaskInput) (*RemoveSubtaskOutput, error) {
	parent, err := uc.tasks.Get(in.ParentID)
	if err != nil {
		return nil, err
	}

	removed := parent.RemoveSubtask(in.SubtaskID, uc.clock.Now())
	if !removed {
		return &RemoveSubtaskOutput{Removed: false}, nil
	}

	if err := uc.tasks.Save(parent); err != nil {
		return nil, fmt.Errorf("save parent: %w", err)
	}
	return &RemoveSubtaskOutput{Removed: true}, nil
}
