package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// ImportTasksInput contains the parameters for creating tasks from a file.
type ImportTasksInput struct {
	Content string // File content (Markdown with YAML frontmatter blocks)
	DryRun  bool   // Parse and validate without creating tasks
}

// ImportedTask describes one task created (or that would be created) from
// file input. Fields are ordered to minimize memory padding.
type ImportedTask struct {
	ParentID *int     // Resolved parent, nil for root tasks
	Title    string
	Priority domain.Priority
	Tags     []string
	ID       int // Assigned ID (relative index in dry-run mode)
}

// ImportTasksOutput contains the result of an import.
type ImportTasksOutput struct {
	Tasks []ImportedTask
}

// ImportTasks is the use case for creating tasks in bulk from a Markdown
// file.
type ImportTasks struct {
	tasks           domain.TaskRepository
	clock           domain.Clock
	logger          domain.Logger
	defaultPriority domain.Priority
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger, defaultPriority domain.Priority) *ImportTasks {
	return &ImportTasks{tasks: tasks, clock: clock, logger: logger, defaultPriority: defaultPriority}
}

// Execute parses the file and creates its tasks. Parent references may be
// relative (an earlier task in the same file) or absolute with a # prefix;
// a parent link means the child's ID is appended to the parent's subtask
// list. Creation is sequential with no rollback: a failure partway leaves
// the tasks created so far in place.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	resolved := make([]ImportedTask, 0, len(drafts))
	for i, draft := range drafts {
		priority := uc.defaultPriority
		if draft.Priority != "" {
			priority, err = domain.ParsePriority(draft.Priority)
			if err != nil {
				return nil, fmt.Errorf("task %d: %w", i+1, err)
			}
		}
		resolved = append(resolved, ImportedTask{
			Title:    draft.Title,
			Priority: priority,
			Tags:     draft.Tags,
		})
	}

	if in.DryRun {
		return uc.dryRun(drafts, resolved)
	}

	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	nextID := domain.NextID(all)

	// Relative parent refs resolve against IDs assigned in this file.
	createdIDs := make(map[int]int, len(drafts))
	out := &ImportTasksOutput{Tasks: make([]ImportedTask, 0, len(drafts))}

	for i, draft := range drafts {
		parentID, err := domain.ResolveParentRef(draft.ParentRef, createdIDs)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		if parentID != nil {
			if _, err := uc.tasks.Get(*parentID); err != nil {
				if errors.Is(err, domain.ErrTaskNotFound) {
					return nil, fmt.Errorf("task %d: %w", i+1, domain.ErrParentNotFound)
				}
				return nil, fmt.Errorf("task %d: get parent: %w", i+1, err)
			}
		}

		now := uc.clock.Now()
		task := domain.NewTask(nextID, draft.Title, draft.Description, resolved[i].Priority, now)
		task.Tags = resolved[i].Tags
		if err := uc.tasks.Save(task); err != nil {
			return nil, fmt.Errorf("task %d: save: %w", i+1, err)
		}

		if parentID != nil {
			parent, err := uc.tasks.Get(*parentID)
			if err != nil {
				return nil, fmt.Errorf("task %d: reload parent: %w", i+1, err)
			}
			parent.AddSubtask(nextID, uc.clock.Now())
			if err := uc.tasks.Save(parent); err != nil {
				return nil, fmt.Errorf("task %d: save parent: %w", i+1, err)
			}
		}

		createdIDs[i+1] = nextID
		imported := resolved[i]
		imported.ID = nextID
		imported.ParentID = parentID
		out.Tasks = append(out.Tasks, imported)
		nextID++
	}

	if uc.logger != nil {
		uc.logger.Info(0, "import", fmt.Sprintf("created %d task(s) from file", len(out.Tasks)))
	}

	return out, nil
}

// dryRun resolves parent refs against relative pseudo-IDs and reports what
// would be created.
func (uc *ImportTasks) dryRun(drafts []domain.TaskDraft, resolved []ImportedTask) (*ImportTasksOutput, error) {
	relativeIDs := make(map[int]int, len(drafts))
	for i := range drafts {
		relativeIDs[i+1] = i + 1
	}

	out := &ImportTasksOutput{Tasks: make([]ImportedTask, 0, len(drafts))}
	for i, draft := range drafts {
		parentID, err := domain.ResolveParentRef(draft.ParentRef, relativeIDs)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		imported := resolved[i]
		imported.ID = i + 1
		imported.ParentID = parentID
		out.Tasks = append(out.Tasks, imported)
	}
	return out, nil
}
