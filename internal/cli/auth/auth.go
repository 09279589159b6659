// Package auth holds all cli commands related to accounts and sessions
//
// e.g., collab auth ...
package auth

import (
	"github.com/spf13/cobra"
)

// Cmd returns the auth command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Register, log in, and manage the session",
	}

	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(LogoutCmd())
	cmd.AddCommand(WhoamiCmd())

	return cmd
}
