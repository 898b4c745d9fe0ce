package usecase

import (
	"context"

	"github.com/trustyhq/trusty/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID int  // Task ID to complete
	All    bool // Also complete every descendant subtask
}

// CompleteTask marks a task done. It is a thin wrapper over SetStatus.
type CompleteTask struct {
	setStatus *SetStatus
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(setStatus *SetStatus) *CompleteTask {
	return &CompleteTask{setStatus: setStatus}
}

// Execute sets the task's status to done, cascading when All is set.
func (uc *CompleteTask) Execute(ctx context.Context, in CompleteTaskInput) (*SetStatusOutput, error) {
	return uc.setStatus.Execute(ctx, SetStatusInput{
		TaskID:  in.TaskID,
		Status:  domain.StatusDone,
		Cascade: in.All,
	})
}
