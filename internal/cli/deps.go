package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/usecase"
)

// newAddDepCommand creates the add-dep command.
func newAddDepCommand(c *app.Container) *cobra.Command {
	var opts struct {
		TaskID       int
		DependencyID int
	}

	cmd := &cobra.Command{
		Use:   "add-dep",
		Short: "Add a dependency to a task",
		Long: `Add a dependency to a task.

A task is (ready) in 'trusty list' only once all of its
dependencies are complete. The dependency ID is not checked for
existence; a later delete of the dependency is tolerated.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.AddDependencyUseCase()
			err := uc.Execute(cmd.Context(), usecase.AddDependencyInput{
				TaskID:       opts.TaskID,
				DependencyID: opts.DependencyID,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d now depends on #%d\n", opts.TaskID, opts.DependencyID)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.TaskID, "task", 0, "Task ID (required)")
	cmd.Flags().IntVar(&opts.DependencyID, "dep", 0, "Dependency task ID (required)")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("dep")

	return cmd
}

// newRemoveDepCommand creates the remove-dep command.
func newRemoveDepCommand(c *app.Container) *cobra.Command {
	var opts struct {
		TaskID       int
		DependencyID int
	}

	cmd := &cobra.Command{
		Use:   "remove-dep",
		Short: "Remove a dependency from a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.RemoveDependencyUseCase()
			err := uc.Execute(cmd.Context(), usecase.RemoveDependencyInput{
				TaskID:       opts.TaskID,
				DependencyID: opts.DependencyID,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d no longer depends on #%d\n", opts.TaskID, opts.DependencyID)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.TaskID, "task", 0, "Task ID (required)")
	cmd.Flags().IntVar(&opts.DependencyID, "dep", 0, "Dependency task ID (required)")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("dep")

	return cmd
}
