package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
)

// newNukeCommand creates the nuke command.
func newNukeCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "nuke",
		Short: "Delete all tasks",
		Long: `Delete all tasks.

Without --force, the first tasks to be deleted are listed and a
'yes' answer is required before anything is removed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			if !force {
				list, err := c.ListTasksUseCase().Execute(cmd.Context())
				if err != nil {
					return err
				}
				if len(list.Views) == 0 {
					_, _ = fmt.Fprintln(w, "No tasks to delete")
					return nil
				}

				_, _ = fmt.Fprintf(w, "This will delete all %d tasks:\n", len(list.Views))
				preview := list.Views
				if len(preview) > 10 {
					preview = preview[:10]
				}
				for _, v := range preview {
					_, _ = fmt.Fprintf(w, "  #%d %s\n", v.Task.ID, v.Task.Title)
				}
				if len(list.Views) > 10 {
					_, _ = fmt.Fprintf(w, "  ... and %d more\n", len(list.Views)-10)
				}

				ok, err := confirm(cmd, "Type 'yes' to confirm: ")
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(w, "Aborted")
					return nil
				}
			}

			uc := c.NukeTasksUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(w, "Deleted %d tasks\n", out.Deleted)
			if len(out.Errors) > 0 {
				return fmt.Errorf("%d tasks could not be deleted: %w", len(out.Errors), errors.Join(out.Errors...))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
