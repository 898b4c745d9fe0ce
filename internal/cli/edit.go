package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/usecase"
)

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Complexity  string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of a task",
		Long: `Edit fields of a task.

Only the flags you pass are changed; omitted fields keep their
current values. At least one field flag is required.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			input := usecase.EditTaskInput{TaskID: id}
			if cmd.Flags().Changed("title") {
				input.Title = &opts.Title
			}
			if cmd.Flags().Changed("description") {
				input.Description = &opts.Description
			}
			if cmd.Flags().Changed("priority") {
				input.Priority = &opts.Priority
			}
			if cmd.Flags().Changed("complexity") {
				input.Complexity = &opts.Complexity
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "description", "", "New description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority: high, medium or low")
	cmd.Flags().StringVar(&opts.Complexity, "complexity", "", "New complexity: simple, medium or complex")

	return cmd
}
