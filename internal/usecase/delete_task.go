package usecase

import (
	"context"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{tasks: tasks, logger: logger}
}

// Execute deletes a task. Dependency and subtask references to the deleted
// ID held by other tasks are not cleaned up; readers tolerate the dangling
// references.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) error {
	if err := uc.tasks.Delete(in.TaskID); err != nil {
		return err
	}
	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("deleted #%d", in.TaskID))
	}
	return nil
}
