// Package profile holds all cli commands related to the user profile
//
// e.g., collab profile ...
package profile

import (
	"github.com/spf13/cobra"
)

// Cmd returns the profile command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(EditCmd())

	return cmd
}
