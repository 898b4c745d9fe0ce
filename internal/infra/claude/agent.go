package claude

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/trustyhq/trusty/internal/domain"
)

// AgentDefinition describes a Claude Code agent that drives trusty on the
// user's behalf.
type AgentDefinition struct {
	Name  string `yaml:"name"`
	Model string `yaml:"model,omitempty"`
	Color string `yaml:"color,omitempty"`
}

const agentBody = `You are a project management assistant that uses the trusty CLI
to track tasks for this project.

Available commands:
- trusty list                       Show all tasks with effective status
- trusty add --title <t>            Create a task (or --prompt for AI generation)
- trusty show <id> --with-subtasks  Inspect a task and its subtask tree
- trusty set-status --id <id> --status <s> [--cascade]
- trusty add-subtask --task <id> --title <t>
- trusty decompose <id> --count <n> Break a task into AI-generated subtasks
- trusty complete <id> [--all]      Mark a task (and optionally subtasks) done

Statuses: pending, in-progress, done, blocked, deferred, cancelled.
Priorities: high, medium, low.

When asked about project state, run 'trusty list' first. Parent task status
is derived from subtasks automatically; set status on leaf tasks and let
aggregation do the rest.
`

// InstallAgent writes the agent definition markdown into the Claude agents
// directory (project-local .claude/agents, or the user's global one) and
// returns the installed path.
func InstallAgent(def AgentDefinition, global bool) (string, error) {
	if def.Name == "" {
		return "", domain.ErrEmptyAgentName
	}

	dir, err := agentsDir(global)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create agents directory: %w", err)
	}

	frontmatter, err := yaml.Marshal(def)
	if err != nil {
		return "", fmt.Errorf("marshal agent frontmatter: %w", err)
	}

	content := "---\n" + string(frontmatter) + "---\n\n" + agentBody
	path := filepath.Join(dir, def.Name+".md")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write agent file: %w", err)
	}
	return path, nil
}

func agentsDir(global bool) (string, error) {
	if global {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, ".claude", "agents"), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get current directory: %w", err)
	}
	return filepath.Join(cwd, ".claude", "agents"), nil
}
