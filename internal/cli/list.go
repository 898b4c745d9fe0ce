package cli

import (
	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long: `List all tasks.

The STATUS column shows each task's effective status, which for a
parent task is derived from its subtask tree. Tasks whose
dependencies are all complete are marked (ready).`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			renderTaskList(cmd.OutOrStdout(), out.Views)
			return nil
		},
	}
}
