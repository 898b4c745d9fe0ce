package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/usecase"
)

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create tasks from a Markdown file",
		Long: `Create tasks from a Markdown file.

File format:
  ---
  title: Task 1
  priority: high
  tags: [backend]
  ---
  Description here.

  ---
  title: Task 2
  parent: 1          # Relative: refers to Task 1 in this file
  ---

  ---
  title: Task 3
  parent: "#123"     # Absolute: refers to existing task #123
  ---`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			uc := c.ImportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: string(content),
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dryRun {
				_, _ = fmt.Fprintf(w, "Would create %d tasks:\n", len(out.Tasks))
				for _, t := range out.Tasks {
					if t.ParentID != nil {
						_, _ = fmt.Fprintf(w, "  %d. %s [%s] (parent: %d)\n", t.ID, t.Title, t.Priority, *t.ParentID)
						continue
					}
					_, _ = fmt.Fprintf(w, "  %d. %s [%s]\n", t.ID, t.Title, t.Priority)
				}
				return nil
			}

			for _, t := range out.Tasks {
				if t.ParentID != nil {
					_, _ = fmt.Fprintf(w, "Created task #%d: %s (subtask of #%d)\n", t.ID, t.Title, *t.ParentID)
					continue
				}
				_, _ = fmt.Fprintf(w, "Created task #%d: %s\n", t.ID, t.Title)
			}
			_, _ = fmt.Fprintf(w, "Imported %d tasks\n", len(out.Tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and list tasks without creating them")

	return cmd
}
