package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/app"
	"github.com/research-collab/collab-cli/internal/config"
	"github.com/research-collab/collab-cli/internal/session"
	"github.com/research-collab/collab-cli/internal/tui"
)

// tuiCmd returns the explicit ui subcommand. The root command runs the
// same thing on bare invocation.
func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal UI",
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := session.NewStore()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}

	a := app.New(cfg.ServerURL, store)
	defer a.Close()

	model := tui.InitialModel(a)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
