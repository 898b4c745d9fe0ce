package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/usecase"
)

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var withSubtasks bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show details of a task",
		Long: `Show details of a task.

When the task has subtasks, the status line also reports the
effective status derived from the subtask tree, and --with-subtasks
lists each subtask with its own status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			renderTaskDetails(cmd.OutOrStdout(), out, withSubtasks)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSubtasks, "with-subtasks", false, "List each subtask with its status")

	return cmd
}
