// Package project holds all cli commands related to projects
//
// e.g., collab project ...
package project

import (
	"github.com/spf13/cobra"
)

// Cmd returns the project command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Browse and manage research projects",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(MineCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(InviteCmd())

	return cmd
}
