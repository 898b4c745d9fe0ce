package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trustyhq/trusty/internal/infra/claude"
)

// newAddAgentCommand creates the add-agent command.
func newAddAgentCommand() *cobra.Command {
	var opts struct {
		Model  string
		Color  string
		Global bool
	}

	cmd := &cobra.Command{
		Use:   "add-agent <name>",
		Short: "Install a Claude Code agent that manages trusty tasks",
		Long: `Install a Claude Code agent that manages trusty tasks.

The agent definition is written to .claude/agents/<name>.md in the
current directory, or to ~/.claude/agents/<name>.md with --global.
The agent is instructed to track its work through trusty commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := claude.InstallAgent(claude.AgentDefinition{
				Name:  args[0],
				Model: opts.Model,
				Color: opts.Color,
			}, opts.Global)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Installed agent %q at %s\n", args[0], path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Model, "model", "sonnet", "Model the agent runs on")
	cmd.Flags().StringVar(&opts.Color, "color", "blue", "Agent color shown in Claude Code")
	cmd.Flags().BoolVar(&opts.Global, "global", false, "Install for all projects (~/.claude/agents)")

	return cmd
}
