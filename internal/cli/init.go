package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/app"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize trusty in the current directory",
		Long: `Initialize trusty in the current directory.

This command creates the .trusty/tasks/ directory, which holds one
JSON file per task. Logs and configuration live alongside it under
.trusty/ and are created on demand.

Running init in an already initialized directory is a no-op.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Get use case from container
			uc := c.InitStoreUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if out.AlreadyInitialized {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "trusty already initialized in %s\n", c.Paths.TrustyDir)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized trusty in %s\n", c.Paths.TrustyDir)
			return nil
		},
	}
}
