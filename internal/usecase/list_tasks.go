package usecase

import (
	"context"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// TaskView is a task annotated with its derived state for display.
// Fields are ordered to minimize memory padding.
type TaskView struct {
	Task      *domain.Task  // The stored task
	Effective domain.Status // Status derived from the subtask subtree
	Completed int           // Effectively-done subtasks
	Total     int           // Subtask list length, dangling IDs included
	Ready     bool          // Pending with all dependencies effectively done
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Views []TaskView // All tasks sorted by ID
}

// ListTasks is the use case for listing all tasks with derived state.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists every task. Derived state is recomputed from the full task
// set on each call; nothing is cached.
func (uc *ListTasks) Execute(_ context.Context) (*ListTasksOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	completed := domain.CompletedIDs(all)
	views := make([]TaskView, 0, len(all))
	for _, t := range all {
		done, total := t.SubtaskProgress(all)
		views = append(views, TaskView{
			Task:      t,
			Effective: t.EffectiveStatus(all),
			Ready:     t.IsReady(completed),
			Completed: done,
			Total:     total,
		})
	}

	return &ListTasksOutput{Views: views}, nil
}
