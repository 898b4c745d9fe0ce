package usecase

import (
	"fmt"

	"github.com/trustyhq/trusty/internal/domain"
)

// taskFields is the validated field set from which a task is built.
// Fields are ordered to minimize memory padding.
type taskFields struct {
	Title       string
	Description string
	Tags        []string
	Priority    domain.Priority
}

// fieldsFromGenerated validates generator output. Generated priority
// strings outside the closed vocabulary are rejected before a task is
// built from them.
func fieldsFromGenerated(g *domain.GeneratedFields) (taskFields, error) {
	if g.Title == "" {
		return taskFields{}, fmt.Errorf("%w: generated task has no title", domain.ErrGeneration)
	}
	priority, err := domain.ParsePriority(g.Priority)
	if err != nil {
		return taskFields{}, fmt.Errorf("generated priority: %w", err)
	}
	return taskFields{
		Title:       g.Title,
		Description: g.Description,
		Priority:    priority,
		Tags:        g.Tags,
	}, nil
}
