package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/usecase"
)

// newDecomposeCommand creates the decompose command.
func newDecomposeCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Count   int
		Preview bool
		Yes     bool
	}

	cmd := &cobra.Command{
		Use:   "decompose <id>",
		Short: "Break a task into AI-generated subtasks",
		Long: `Break a task into AI-generated subtasks.

The configured AI is asked for --count subtask drafts, each of which
is created and linked under the task. With --preview the drafts are
printed without creating anything.

If the task already has subtasks you are asked to confirm, since the
new subtasks are added alongside the existing ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			// Confirm when the task already has subtasks
			if !opts.Preview && !opts.Yes {
				show, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: id})
				if err != nil {
					return err
				}
				if len(show.Subtasks) > 0 {
					prompt := fmt.Sprintf("Task #%d already has %d subtasks. Add %d more? [y/N]: ",
						id, len(show.Subtasks), opts.Count)
					ok, err := confirm(cmd, prompt)
					if err != nil {
						return err
					}
					if !ok {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
						return nil
					}
				}
			}

			ctx, cancel := generationContext(c, cmd)
			defer cancel()

			uc := c.DecomposeTaskUseCase()
			out, err := uc.Execute(ctx, usecase.DecomposeTaskInput{
				TaskID:  id,
				Count:   opts.Count,
				Preview: opts.Preview,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.Preview {
				styles := DefaultStyles()
				for i, f := range out.Fields {
					_, _ = fmt.Fprintf(w, "%d. %s [%s]\n", i+1, f.Title, f.Priority)
					if f.Description != "" {
						_, _ = fmt.Fprintf(w, "   %s\n", styles.Muted.Render(f.Description))
					}
				}
				return nil
			}

			for _, t := range out.Created {
				_, _ = fmt.Fprintf(w, "Created subtask #%d: %s\n", t.ID, t.Title)
			}
			_, _ = fmt.Fprintf(w, "Decomposed task #%d into %d subtasks\n", id, len(out.Created))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 3, "Number of subtasks to generate")
	cmd.Flags().BoolVar(&opts.Preview, "preview", false, "Print generated subtasks without creating them")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// confirm prints a prompt and reads a y/n answer from the command's stdin.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
