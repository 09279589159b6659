// Package invitation holds all cli commands related to collaboration
// invitations received by the current user
//
// e.g., collab invitation ...
package invitation

import (
	"github.com/spf13/cobra"
)

// Cmd returns the invitation command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invitation",
		Short: "View and answer collaboration invitations",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AcceptCmd())
	cmd.AddCommand(RejectCmd())

	return cmd
}
