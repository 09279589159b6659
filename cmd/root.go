package cmd

import (
	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/cli/auth"
	"github.com/research-collab/collab-cli/internal/cli/invitation"
	"github.com/research-collab/collab-cli/internal/cli/profile"
	"github.com/research-collab/collab-cli/internal/cli/project"
)

var rootCmd = &cobra.Command{
	Use:   "collab",
	Short: "Collab - a terminal client for the research collaboration platform",
	Long: `Collab is a terminal client for the research collaboration platform.

Run without arguments to open the interactive UI, or use the
subcommands for scriptable access to the same operations.`,
	// Bare invocation opens the interactive UI.
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(auth.Cmd())
	rootCmd.AddCommand(project.Cmd())
	rootCmd.AddCommand(invitation.Cmd())
	rootCmd.AddCommand(profile.Cmd())
	rootCmd.AddCommand(tuiCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
