// Package claude integrates with the Claude Code CLI to synthesize task
// fields from natural-language prompts.
package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trustyhq/trusty/internal/domain"
)

const generateSystemPrompt = `You are a task generation assistant. Given a user's prompt about something they need to do, generate a structured task with the following JSON format:
{
  "title": "Brief, actionable task title",
  "description": "Detailed description of what needs to be done",
  "priority": "high|medium|low",
  "tags": ["tag1", "tag2", "tag3"]
}

Rules:
- Title should be concise and action-oriented (5-10 words)
- Description should provide context and details
- Priority: "high" for urgent/critical, "medium" for normal, "low" for nice-to-have
- Tags should be relevant categories (e.g., "backend", "frontend", "testing", "documentation", "refactoring", "bugfix", "feature")
- Output ONLY valid JSON, no additional text`

const decomposePromptFormat = `You are a task decomposition assistant. Given a parent task, break it down into %d logical subtasks that, when completed, will accomplish the parent task.

Parent task details:
- Title: %s
- Description: %s
- Priority: %s
- Tags: %s

Generate a JSON response with the following format:
{
  "subtasks": [
    {
      "title": "Brief, actionable subtask title",
      "description": "Detailed description of what needs to be done",
      "priority": "high|medium|low",
      "tags": ["tag1", "tag2"]
    },
    ...
  ]
}

Rules:
- Each subtask should be a concrete, actionable step
- Subtasks should be logically ordered when possible
- Subtask priorities can be the same as parent or adjusted based on importance
- Tags should include relevant parent tags plus any subtask-specific ones
- Ensure subtasks cover all aspects of the parent task
- Output ONLY valid JSON, no additional text`

// Client implements domain.Generator by shelling out to the claude CLI.
type Client struct {
	exec    domain.CommandExecutor
	command string
	model   string
}

// NewClient creates a new Client. command is the claude executable (name or
// path) and model is passed via --model.
func NewClient(command, model string, exec domain.CommandExecutor) *Client {
	if command == "" {
		command = "claude"
	}
	if model == "" {
		model = "sonnet"
	}
	return &Client{command: command, model: model, exec: exec}
}

// Ensure Client implements domain.Generator.
var _ domain.Generator = (*Client)(nil)

// Generate produces task fields for a single task from a prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (*domain.GeneratedFields, error) {
	response, err := c.run(ctx, generateSystemPrompt+"\n\nUser prompt: "+prompt)
	if err != nil {
		return nil, err
	}

	var fields domain.GeneratedFields
	if err := json.Unmarshal([]byte(extractJSON(response)), &fields); err != nil {
		return nil, fmt.Errorf("%w: unparseable response: %s", domain.ErrGeneration, strings.TrimSpace(response))
	}
	return &fields, nil
}

// decomposeResponse is the JSON envelope the decompose prompt asks for.
type decomposeResponse struct {
	Subtasks []domain.GeneratedFields `json:"subtasks"`
}

// Decompose produces task fields for count subtasks of the given task.
func (c *Client) Decompose(ctx context.Context, task *domain.Task, count int) ([]domain.GeneratedFields, error) {
	if count <= 0 {
		return nil, domain.ErrInvalidSubtaskGoal
	}

	prompt := fmt.Sprintf(decomposePromptFormat,
		count, task.Title, task.Description, task.Priority, strings.Join(task.Tags, ", "))

	response, err := c.run(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var decomposed decomposeResponse
	if err := json.Unmarshal([]byte(extractJSON(response)), &decomposed); err != nil {
		return nil, fmt.Errorf("%w: unparseable response: %s", domain.ErrGeneration, strings.TrimSpace(response))
	}
	return decomposed.Subtasks, nil
}

// run resolves the claude binary and executes it with the given prompt.
func (c *Client) run(ctx context.Context, prompt string) (string, error) {
	bin, err := c.resolve()
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	cmd := &domain.ExecCommand{
		Program: bin,
		Args:    []string{"--model", c.model, "-p", "--output-format", "text", prompt},
	}
	if err := c.exec.ExecuteWithContext(ctx, cmd, &stdout, &stderr); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%w: claude CLI: %s", domain.ErrGeneration, msg)
	}
	return stdout.String(), nil
}

// resolve probes the configured command, then "claude" from PATH.
func (c *Client) resolve() (string, error) {
	candidates := []string{c.command}
	if c.command != "claude" {
		candidates = append(candidates, "claude")
	}
	for _, candidate := range candidates {
		probe := &domain.ExecCommand{Program: candidate, Args: []string{"--version"}}
		if _, err := c.exec.Execute(probe); err == nil {
			return candidate, nil
		}
	}
	return "", domain.ErrClaudeNotFound
}

// extractJSON strips a ```json markdown fence from a response, if present.
func extractJSON(response string) string {
	if start := strings.Index(response, "```json"); start != -1 {
		if end := strings.LastIndex(response, "```"); end > start {
			return strings.TrimSpace(response[start+len("```json") : end])
		}
	}
	return strings.TrimSpace(response)
}
