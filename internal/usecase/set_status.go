package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// SetStatusInput contains the parameters for a status change.
type SetStatusInput struct {
	TaskID  int           // Task ID to update
	Status  domain.Status // New stored status
	Cascade bool          // Also set the status on every descendant subtask
}

// SetStatusOutput contains the result of a status change.
type SetStatusOutput struct {
	Status  domain.Status // The status that was applied
	Updated int           // Number of tasks updated (1 without cascade)
}

// SetStatus is the use case for changing a task's stored status, optionally
// cascading the change through its subtask tree.
type SetStatus struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewSetStatus creates a new SetStatus use case.
func NewSetStatus(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *SetStatus {
	return &SetStatus{tasks: tasks, clock: clock, logger: logger}
}

// Execute sets the stored status. No validation against subtask state is
// performed: the effective status query layer is what reconciles a parent
// with its children.
func (uc *SetStatus) Execute(_ context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}

	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, err
	}

	task.SetStatus(in.Status, uc.clock.Now())
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	updated := 1
	if in.Cascade && len(task.Subtasks) > 0 {
		n, err := uc.cascade(task.Subtasks, in.Status)
		if err != nil {
			return nil, err
		}
		updated += n
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "status", fmt.Sprintf("set to %s (%d task(s) updated)", in.Status, updated))
	}

	return &SetStatusOutput{Status: in.Status, Updated: updated}, nil
}

// cascade walks the subtask tree depth-first through the store, setting the
// status on each node. Dangling IDs are skipped, not errors.
func (uc *SetStatus) cascade(subtaskIDs []int, status domain.Status) (int, error) {
	count := 0
	for _, id := range subtaskIDs {
		sub, err := uc.tasks.Get(id)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				continue
			}
			return count, fmt.Errorf("get subtask %d: %w", id, err)
		}

		sub.SetStatus(status, uc.clock.Now())
		if err := uc.tasks.Save(sub); err != nil {
			return count, fmt.Errorf("save subtask %d: %w", id, err)
		}
		count++

		if len(sub.Subtasks) > 0 {
			n, err := uc.cascade(sub.Subtasks, status)
			count += n
			if err != nil {
				return count, err
			}
		}
	}
	return count, nil
}
