// Package domain contains core business entities and interfaces.
package domain

import (
	"slices"
	"time"
)

// Task represents a single unit of work managed by trusty.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt    time.Time   `json:"created_at"`             // Creation time
	UpdatedAt    time.Time   `json:"updated_at"`             // Advances on every mutation
	CompletedAt  *time.Time  `json:"completed_at,omitempty"` // Set when status first becomes done
	Complexity   *Complexity `json:"complexity,omitempty"`   // Estimated difficulty (optional)
	Title        string      `json:"title"`                  // Title (required)
	Description  string      `json:"description"`            // Description (optional)
	Status       Status      `json:"status"`                 // Stored status
	Priority     Priority    `json:"priority"`               // Importance
	Dependencies []int       `json:"dependencies"`           // Task IDs that must be done first (set semantics)
	Subtasks     []int       `json:"subtasks"`               // Child task IDs, insertion order is meaningful
	Tags         []string    `json:"tags"`                   // Free-text tags, duplicates permitted
	ID           int         `json:"id"`                     // Unique, assigned once, never reused
}

// NewTask creates a task with the given identity and defaults:
// status pending, no complexity, empty dependencies/subtasks/tags.
func NewTask(id int, title, description string, priority Priority, now time.Time) *Task {
	return &Task{
		ID:           id,
		Title:        title,
		Description:  description,
		Status:       StatusPending,
		Priority:     priority,
		Dependencies: []int{},
		Subtasks:     []int{},
		Tags:         []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SetStatus sets the stored status and bumps UpdatedAt. Transitioning to
// done records CompletedAt; transitioning away from done leaves the old
// CompletedAt in place.
func (t *Task) SetStatus(status Status, now time.Time) {
	t.Status = status
	t.UpdatedAt = now
	if status == StatusDone {
		completed := now
		t.CompletedAt = &completed
	}
}

// AddDependency adds a dependency ID. Adding an existing ID is a no-op
// beyond the timestamp touch.
func (t *Task) AddDependency(depID int, now time.Time) {
	if !slices.Contains(t.Dependencies, depID) {
		t.Dependencies = append(t.Dependencies, depID)
	}
	t.UpdatedAt = now
}

// RemoveDependency removes a dependency ID. Removing a missing ID is a
// no-op beyond the timestamp touch.
func (t *Task) RemoveDependency(depID int, now time.Time) {
	t.Dependencies = slices.DeleteFunc(t.Dependencies, func(id int) bool {
		return id == depID
	})
	t.UpdatedAt = now
}

// AddSubtask appends a child task ID. Duplicate appends are not
// deduplicated; that is the caller's responsibility.
func (t *Task) AddSubtask(childID int, now time.Time) {
	t.Subtasks = append(t.Subtasks, childID)
	t.UpdatedAt = now
}

// RemoveSubtask removes every occurrence of childID from the subtask list.
// Returns true if anything was removed.
func (t *Task) RemoveSubtask(childID int, now time.Time) bool {
	before := len(t.Subtasks)
	t.Subtasks = slices.DeleteFunc(t.Subtasks, func(id int) bool {
		return id == childID
	})
	if len(t.Subtasks) == before {
		return false
	}
	t.UpdatedAt = now
	return true
}

// IsReady reports whether the task is ready to start: stored status is
// pending and every dependency appears in completed. A task in any other
// stored status is never ready, regardless of its dependencies.
func (t *Task) IsReady(completed map[int]bool) bool {
	if t.Status != StatusPending {
		return false
	}
	for _, dep := range t.Dependencies {
		if !completed[dep] {
			return false
		}
	}
	return true
}

// EffectiveStatus derives the task's status from its subtask subtree.
// Subtask IDs that do not resolve in all are skipped; if none resolve, the
// stored status is used.
//
// Precedence: cancellation and blockage outrank partial progress, and
// partial progress outranks the default pending reading. Reordering these
// rules changes observable behavior.
func (t *Task) EffectiveStatus(all []*Task) Status {
	if len(t.Subtasks) == 0 {
		return t.Status
	}

	var statuses []Status
	for _, id := range t.Subtasks {
		if sub := findTask(all, id); sub != nil {
			statuses = append(statuses, sub.EffectiveStatus(all))
		}
	}
	if len(statuses) == 0 {
		return t.Status
	}

	switch {
	case allAre(statuses, StatusDone):
		return StatusDone
	case anyIs(statuses, StatusCancelled):
		return StatusBlocked
	case anyIs(statuses, StatusBlocked):
		return StatusBlocked
	case anyIs(statuses, StatusInProgress):
		return StatusInProgress
	case allAre(statuses, StatusDeferred):
		return StatusDeferred
	default:
		return StatusPending
	}
}

// SubtaskProgress returns how many subtasks are effectively done and the
// total subtask count. The total is the literal list length, dangling IDs
// included; the completed count only considers IDs that resolve and whose
// recursive effective status is done.
func (t *Task) SubtaskProgress(all []*Task) (completed, total int) {
	total = len(t.Subtasks)
	for _, id := range t.Subtasks {
		if sub := findTask(all, id); sub != nil && sub.EffectiveStatus(all) == StatusDone {
			completed++
		}
	}
	return completed, total
}

// NextID returns the identifier for the next task to create: one past the
// highest existing ID, or 1 for an empty set. Gaps left by deletions are
// never refilled.
func NextID(tasks []*Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// CompletedIDs returns the set of task IDs whose effective status is done,
// for use with IsReady.
func CompletedIDs(all []*Task) map[int]bool {
	completed := make(map[int]bool, len(all))
	for _, t := range all {
		if t.EffectiveStatus(all) == StatusDone {
			completed[t.ID] = true
		}
	}
	return completed
}

func findTask(all []*Task, id int) *Task {
	for _, t := range all {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func allAre(statuses []Status, want Status) bool {
	for _, s := range statuses {
		if s != want {
			return false
		}
	}
	return true
}

func anyIs(statuses []Status, want Status) bool {
	return slices.Contains(statuses, want)
}
