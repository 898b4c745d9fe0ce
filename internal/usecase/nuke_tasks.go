package usecase

import (
	"context"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// NukeTasksOutput contains the result of deleting all tasks.
type NukeTasksOutput struct {
	Errors  []error // One entry per task that could not be deleted
	Deleted int     // Number of tasks deleted
}

// NukeTasks is the use case for deleting every task in the store.
type NukeTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewNukeTasks creates a new NukeTasks use case.
func NewNukeTasks(tasks domain.TaskRepository, logger domain.Logger) *NukeTasks {
	return &NukeTasks{tasks: tasks, logger: logger}
}

// Execute deletes every task individually, collecting per-task failures
// instead of stopping at the first one.
func (uc *NukeTasks) Execute(_ context.Context) (*NukeTasksOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := &NukeTasksOutput{}
	for _, task := range all {
		if err := uc.tasks.Delete(task.ID); err != nil {
			out.Errors = append(out.Errors, fmt.Errorf("delete task #%d: %w", task.ID, err))
			continue
		}
		out.Deleted++
	}

	if uc.logger != nil {
		uc.logger.Info(0, "nuke", fmt.Sprintf("deleted %d task(s), %d error(s)", out.Deleted, len(out.Errors)))
	}

	return out, nil
}
