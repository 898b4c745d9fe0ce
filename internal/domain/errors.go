package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrParentNotFound     = errors.New("parent task not found")
	ErrEmptyTitle         = errors.New("title is required when not using --prompt")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidComplexity  = errors.New("invalid complexity")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrNotInitialized     = errors.New("trusty not initialized (run 'trusty init' first)")
	ErrGeneration         = errors.New("task generation failed")
	ErrClaudeNotFound     = errors.New("claude CLI not found (install with: npm install -g @anthropic-ai/claude-code)")
	ErrNoGenerator        = errors.New("no task generator configured")
	ErrEmptyFile          = errors.New("file is empty")
	ErrNoTasksInFile      = errors.New("no tasks found in file")
	ErrInvalidParentRef   = errors.New("invalid parent reference")
	ErrEmptyAgentName     = errors.New("agent name cannot be empty")
	ErrInvalidSubtaskGoal = errors.New("subtask count must be positive")
)
