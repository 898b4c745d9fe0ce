package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/domain"
	"github.com/trustyhq/trusty/internal/usecase"
)

// newSetStatusCommand creates the set-status command.
func newSetStatusCommand(c *app.Container) *cobra.Command {
	var opts struct {
		TaskID  int
		Status  string
		Cascade bool
	}

	cmd := &cobra.Command{
		Use:   "set-status",
		Short: "Set the stored status of a task",
		Long: fmt.Sprintf(`Set the stored status of a task.

Valid statuses: %s

This changes the task's stored status only. The status shown by
'list' and 'show' for a parent task is derived from its subtasks
and may differ. With --cascade the same status is also applied to
every subtask, recursively.`, strings.Join(statusNames(), ", ")),
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := domain.ParseStatus(opts.Status)
			if err != nil {
				return err
			}

			uc := c.SetStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetStatusInput{
				TaskID:  opts.TaskID,
				Status:  status,
				Cascade: opts.Cascade,
			})
			if err != nil {
				return err
			}

			if out.Updated > 1 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %d tasks to %s\n", out.Updated, out.Status)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s\n", opts.TaskID, out.Status)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.TaskID, "id", 0, "Task ID (required)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status (required)")
	cmd.Flags().BoolVar(&opts.Cascade, "cascade", false, "Apply the status to all subtasks recursively")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

// newCompleteCommand creates the complete command.
func newCompleteCommand(c *app.Container) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as done",
		Long: `Mark a task as done.

With --all, every subtask is also marked done, recursively. Without
it only the stored status of this task changes; a parent with
unfinished subtasks keeps showing a derived in-progress status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{
				TaskID: id,
				All:    all,
			})
			if err != nil {
				return err
			}

			if out.Updated > 1 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed %d tasks\n", out.Updated)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Also complete all subtasks recursively")

	return cmd
}

func statusNames() []string {
	statuses := domain.AllStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}
