package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID int // Task ID to show
}

// SubtaskRow is one entry of a task's subtask list. Task is nil when the
// ID no longer resolves to a stored task.
type SubtaskRow struct {
	Task *domain.Task
	ID   int
}

// ShowTaskOutput contains a task and its derived state.
type ShowTaskOutput struct {
	Task      *domain.Task  // The requested task
	Effective domain.Status // Status derived from the subtask subtree
	Subtasks  []SubtaskRow  // Resolved subtask rows, in list order
	Completed int           // Effectively-done subtasks
	Total     int           // Subtask list length, dangling IDs included
}

// ShowTask is the use case for inspecting a single task.
type ShowTask struct {
	tasks domain.TaskRepository
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository) *ShowTask {
	return &ShowTask{tasks: tasks}
}

// Execute loads a task and computes its derived state. Dangling subtask
// references are reported as unresolved rows, never as errors.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	subtasks := make([]SubtaskRow, 0, len(task.Subtasks))
	for _, id := range task.Subtasks {
		row := SubtaskRow{ID: id}
		for _, t := range all {
			if t.ID == id {
				row.Task = t
				break
			}
		}
		subtasks = append(subtasks, row)
	}

	done, total := task.SubtaskProgress(all)
	return &ShowTaskOutput{
		Task:      task,
		Effective: task.EffectiveStatus(all),
		Completed: done,
		Total:     total,
		Subtasks:  subtasks,
	}, nil
}
