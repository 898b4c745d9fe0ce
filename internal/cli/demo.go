package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/domain"
)

// demoSteps is the scripted command sequence shown by 'trusty demo'.
var demoSteps = [][]string{
	{"init"},
	{"add", "--title", "Ship the release", "--priority", "high", "--tag", "release"},
	{"add", "--title", "Write changelog", "--priority", "low"},
	{"add-dep", "--task", "2", "--dep", "1"},
	{"add-subtask", "--task", "1", "--title", "Tag the build"},
	{"add-subtask", "--task", "1", "--title", "Upload artifacts"},
	{"list"},
	{"set-status", "--id", "3", "--status", "done"},
	{"set-status", "--id", "4", "--status", "in-progress"},
	{"show", "1", "--with-subtasks"},
	{"complete", "1", "--all"},
	{"list"},
}

// newDemoCommand creates the demo command.
func newDemoCommand(c *app.Container) *cobra.Command {
	var opts struct {
		SkipConfirm bool
		Keep        bool
		Delay       time.Duration
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted walkthrough in a temporary directory",
		Long: `Run a scripted walkthrough in a temporary directory.

Each step invokes this same binary against a throwaway task store,
showing the command and its output. Nothing in the current directory
is touched. The temporary directory is removed afterwards unless
--keep is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			if !opts.SkipConfirm {
				ok, err := confirm(cmd, fmt.Sprintf("Run a %d-step demo in a temporary directory? [y/N]: ", len(demoSteps)))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(w, "Aborted")
					return nil
				}
			}

			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("locate executable: %w", err)
			}

			dir, err := os.MkdirTemp("", "trusty-demo-")
			if err != nil {
				return fmt.Errorf("create demo directory: %w", err)
			}
			if !opts.Keep {
				defer os.RemoveAll(dir)
			}

			styles := DefaultStyles()
			for _, step := range demoSteps {
				_, _ = fmt.Fprintf(w, "\n%s\n", styles.Header.Render("$ trusty "+strings.Join(step, " ")))
				output, err := c.Executor.Execute(&domain.ExecCommand{
					Program: exe,
					Args:    step,
					Dir:     dir,
				})
				_, _ = w.Write(output)
				if err != nil {
					return fmt.Errorf("demo step failed: %w", err)
				}
				time.Sleep(opts.Delay)
			}

			if opts.Keep {
				_, _ = fmt.Fprintf(w, "\nDemo tasks kept in %s\n", dir)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.SkipConfirm, "skip-confirm", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.Keep, "keep", false, "Keep the temporary directory after the demo")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 500*time.Millisecond, "Pause between demo steps")

	return cmd
}
