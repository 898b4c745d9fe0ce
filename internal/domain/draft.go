package domain

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents a task to be created from file input. Parent can be
// either a relative index (1-based, within the same file) or an absolute
// task ID written with a leading # (quote it, YAML treats # as a comment).
type TaskDraft struct {
	Title       string   `yaml:"title"`
	Priority    string   `yaml:"priority"`
	ParentRef   string   `yaml:"parent"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"-"`
}

// ParseTaskDrafts parses a Markdown file containing one or more task
// definitions. Each task is a YAML frontmatter block followed by an
// optional description body:
//
//	---
//	title: Task Title
//	priority: high
//	tags: [backend, auth]
//	parent: "#12"
//	---
//	Task description here.
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	blocks := splitDraftBlocks(content)
	if len(blocks) == 0 {
		return nil, ErrNoTasksInFile
	}

	drafts := make([]TaskDraft, 0, len(blocks))
	for i, block := range blocks {
		var draft TaskDraft
		if err := yaml.Unmarshal([]byte(block.frontmatter), &draft); err != nil {
			return nil, fmt.Errorf("task %d: parse frontmatter: %w", i+1, err)
		}
		if draft.Title == "" {
			return nil, fmt.Errorf("task %d: %w", i+1, ErrEmptyTitle)
		}
		draft.Description = strings.TrimSpace(block.body)
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

type draftBlock struct {
	frontmatter string
	body        string
}

// splitDraftBlocks splits file content into frontmatter/body pairs. A "---"
// line opens frontmatter; the next "---" line closes it. Everything up to
// the next opening "---" (or EOF) is the body. A "---" inside a body only
// starts a new block when the following line looks like a frontmatter key,
// so horizontal rules in descriptions survive.
func splitDraftBlocks(content string) []draftBlock {
	lines := strings.Split(content, "\n")

	var blocks []draftBlock
	var front, body []string
	inFront := false
	open := false

	flush := func() {
		if open {
			blocks = append(blocks, draftBlock{
				frontmatter: strings.Join(front, "\n"),
				body:        strings.Join(body, "\n"),
			})
		}
		front, body = nil, nil
		open = false
	}

	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		switch {
		case trimmed == "---" && !open:
			inFront = true
			open = true
		case trimmed == "---" && inFront:
			inFront = false
		case trimmed == "---" && i+1 < len(lines) && isDraftKey(lines[i+1]):
			flush()
			inFront = true
			open = true
		case inFront:
			front = append(front, line)
		case open:
			body = append(body, line)
		}
	}
	flush()

	return blocks
}

func isDraftKey(line string) bool {
	for _, key := range []string{"title:", "priority:", "tags:", "parent:"} {
		if strings.HasPrefix(line, key) {
			return true
		}
	}
	return false
}

// ResolveParentRef resolves a parent reference to an actual task ID.
// ref can be:
//   - a relative index (1-based) referring to a task in the same file: "1"
//   - an absolute task ID with # prefix: "#123"
//
// createdIDs maps relative index (1-based) to created task ID. A relative
// index outside the file's range is treated as an absolute ID.
func ResolveParentRef(ref string, createdIDs map[int]int) (*int, error) {
	if ref == "" {
		return nil, nil
	}

	if rest, ok := strings.CutPrefix(ref, "#"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParentRef, ref)
		}
		return &n, nil
	}

	n, err := strconv.Atoi(ref)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidParentRef, ref)
	}
	if id, ok := createdIDs[n]; ok {
		return &id, nil
	}
	return &n, nil
}
