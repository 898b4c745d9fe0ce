package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/usecase"
)

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long: `Delete a task.

References to the deleted task from other tasks' dependency and
subtask lists are left in place and ignored by later commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			uc := c.DeleteTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
}
