package domain

import (
	"fmt"
	"strings"
)

// Status represents the stored lifecycle state of a task.
//
// A task's stored status is what users set directly. The status derived
// from a task's subtask subtree is computed by Task.EffectiveStatus and is
// never persisted.
type Status string

const (
	StatusPending    Status = "pending"     // Created, not started
	StatusInProgress Status = "in-progress" // Being worked on
	StatusDone       Status = "done"        // Completed
	StatusBlocked    Status = "blocked"     // Cannot proceed
	StatusDeferred   Status = "deferred"    // Postponed
	StatusCancelled  Status = "cancelled"   // Abandoned
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusDone,
		StatusBlocked,
		StatusDeferred,
		StatusCancelled,
	}
}

// ParseStatus parses a status string. Input is case-insensitive; the
// canonical form is lowercase kebab-case.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "in-progress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	case "blocked":
		return StatusBlocked, nil
	case "deferred":
		return StatusDeferred, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: %q (use pending, in-progress, done, blocked, deferred, or cancelled)", ErrInvalidStatus, s)
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusBlocked, StatusDeferred, StatusCancelled:
		return true
	default:
		return false
	}
}

// Glyph returns the single-character marker used in terminal output.
func (s Status) Glyph() string {
	switch s {
	case StatusPending:
		return "○"
	case StatusInProgress:
		return "◐"
	case StatusDone:
		return "●"
	case StatusBlocked:
		return "◻"
	case StatusDeferred:
		return "◇"
	case StatusCancelled:
		return "✗"
	default:
		return "?"
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	return s.Glyph() + " " + string(s)
}

// Priority represents the importance of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority parses a priority string. Input is case-insensitive.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("%w: %q (use high, medium, or low)", ErrInvalidPriority, s)
	}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Complexity represents the estimated difficulty of a task.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// ParseComplexity parses a complexity string. Input is case-insensitive.
func ParseComplexity(s string) (Complexity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return ComplexitySimple, nil
	case "medium":
		return ComplexityMedium, nil
	case "complex":
		return ComplexityComplex, nil
	default:
		return "", fmt.Errorf("%w: %q (use simple, medium, or complex)", ErrInvalidComplexity, s)
	}
}
