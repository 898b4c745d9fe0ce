package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title        string
		Description  string
		Priority     string
		Prompt       string
		Tags         []string
		Dependencies []int
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task.

The task is created with status 'pending'. Either provide the fields
directly with --title, or let the configured AI fill in title,
description, priority and tags from a one-line --prompt.

Examples:
  # Create a task directly
  trusty add --title "Fix login flow" --priority high

  # Create a task with dependencies and tags
  trusty add --title "Deploy v2" --dep 3 --dep 7 --tag release

  # Let the AI draft the task from a prompt
  trusty add --prompt "migrate the billing tables to the new schema"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := generationContext(c, cmd)
			defer cancel()

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(ctx, usecase.AddTaskInput{
				Title:        opts.Title,
				Description:  opts.Description,
				Priority:     opts.Priority,
				Prompt:       opts.Prompt,
				Tags:         opts.Tags,
				Dependencies: opts.Dependencies,
			})
			if err != nil {
				return err
			}

			if out.Generated {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s (generated)\n", out.Task.ID, out.Task.Title)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	// Flags (--title is conditionally required based on --prompt)
	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required unless --prompt is used)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Task description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: high, medium or low (default from config)")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tags (can specify multiple)")
	cmd.Flags().IntSliceVar(&opts.Dependencies, "dep", nil, "IDs of tasks this task depends on (can specify multiple)")
	cmd.Flags().StringVar(&opts.Prompt, "prompt", "", "Generate task fields from this prompt via AI")

	return cmd
}
