// Package cli provides the command-line interface for trusty.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupAI    = "ai"
)

// NewRootCommand creates the root command for trusty.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "trusty",
		Short: "A task tracker with subtask-aware status aggregation",
		Long: `trusty is a CLI for tracking tasks with priorities, tags,
dependencies, and parent/child subtasks.

A parent task's displayed status is derived from its subtask tree:
when all subtasks are done the parent reads done, a cancelled or
blocked subtask blocks the parent, and partial progress reads as
in-progress. The stored status you set directly is kept separately
and is what commands like set-status modify.

Task data lives under .trusty/tasks in the current directory
(one JSON file per task). Run 'trusty init' to get started.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupAI, Title: "AI Commands:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	agentCmd := newAddAgentCommand()
	agentCmd.GroupID = groupSetup

	demoCmd := newDemoCommand(c)
	demoCmd.GroupID = groupSetup

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	setStatusCmd := newSetStatusCommand(c)
	setStatusCmd.GroupID = groupTask

	completeCmd := newCompleteCommand(c)
	completeCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	deleteCmd := newDeleteCommand(c)
	deleteCmd.GroupID = groupTask

	addDepCmd := newAddDepCommand(c)
	addDepCmd.GroupID = groupTask

	removeDepCmd := newRemoveDepCommand(c)
	removeDepCmd.GroupID = groupTask

	addSubtaskCmd := newAddSubtaskCommand(c)
	addSubtaskCmd.GroupID = groupTask

	removeSubtaskCmd := newRemoveSubtaskCommand(c)
	removeSubtaskCmd.GroupID = groupTask

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupTask

	nukeCmd := newNukeCommand(c)
	nukeCmd.GroupID = groupTask

	// AI commands
	decomposeCmd := newDecomposeCommand(c)
	decomposeCmd.GroupID = groupAI

	// Add subcommands
	root.AddCommand(
		initCmd,
		agentCmd,
		demoCmd,
		addCmd,
		listCmd,
		showCmd,
		setStatusCmd,
		completeCmd,
		editCmd,
		deleteCmd,
		addDepCmd,
		removeDepCmd,
		addSubtaskCmd,
		removeSubtaskCmd,
		importCmd,
		nukeCmd,
		decomposeCmd,
	)

	return root
}

// generationContext derives the context for generator calls, applying the
// configured timeout when one is set.
func generationContext(c *app.Container, cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if c.AppConfig != nil && c.AppConfig.Claude.TimeoutSeconds > 0 {
		return context.WithTimeout(ctx, time.Duration(c.AppConfig.Claude.TimeoutSeconds)*time.Second)
	}
	return ctx, func() {}
}
