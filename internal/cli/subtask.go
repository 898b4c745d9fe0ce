package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/usecase"
)

// newAddSubtaskCommand creates the add-subtask command.
func newAddSubtaskCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ParentID    int
		Title       string
		Description string
		Priority    string
		Prompt      string
		Tags        []string
	}

	cmd := &cobra.Command{
		Use:   "add-subtask",
		Short: "Add a subtask under a parent task",
		Long: `Add a subtask under a parent task.

The subtask is a full task of its own with a fresh ID; the parent's
subtask list is updated to reference it. Priority and tags default
to the parent's when omitted. With --prompt the subtask fields are
generated by AI with the parent's title as context.

Examples:
  trusty add-subtask --task 3 --title "Write migration script"
  trusty add-subtask --task 3 --prompt "cover the rollback path"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := generationContext(c, cmd)
			defer cancel()

			uc := c.AddSubtaskUseCase()
			out, err := uc.Execute(ctx, usecase.AddSubtaskInput{
				ParentID:    opts.ParentID,
				Title:       opts.Title,
				Description: opts.Description,
				Priority:    opts.Priority,
				Prompt:      opts.Prompt,
				Tags:        opts.Tags,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created subtask #%d under #%d: %s\n", out.Task.ID, opts.ParentID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.ParentID, "task", 0, "Parent task ID (required)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Subtask title (required unless --prompt is used)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Subtask description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: high, medium or low (default: parent's)")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tags (default: parent's)")
	cmd.Flags().StringVar(&opts.Prompt, "prompt", "", "Generate subtask fields from this prompt via AI")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

// newRemoveSubtaskCommand creates the remove-subtask command.
func newRemoveSubtaskCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ParentID  int
		SubtaskID int
	}

	cmd := &cobra.Command{
		Use:   "remove-subtask",
		Short: "Detach a subtask from its parent",
		Long: `Detach a subtask from its parent.

The subtask itself is kept as an independent task; only the
parent's reference to it is removed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.RemoveSubtaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RemoveSubtaskInput{
				ParentID:  opts.ParentID,
				SubtaskID: opts.SubtaskID,
			})
			if err != nil {
				return err
			}

			if !out.Removed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d has no subtask #%d\n", opts.ParentID, opts.SubtaskID)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Detached subtask #%d from #%d\n", opts.SubtaskID, opts.ParentID)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.ParentID, "task", 0, "Parent task ID (required)")
	cmd.Flags().IntVar(&opts.SubtaskID, "subtask", 0, "Subtask ID to detach (required)")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("subtask")

	return cmd
}
