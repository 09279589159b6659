package invitation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/cli"
)

// NoPendingMessage is the fixed empty-state line. An empty list can mean
// "nothing pending" or "fetch failed"; both show this same message.
const NoPendingMessage = "No pending invitations."

// ListCmd returns the invitation list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your pending invitations",
		RunE:  runList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	if err := cliInstance.RequireLogin(); err != nil {
		if fmtErr := formatter.Error("AUTH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitAuth)
	}

	invitations := cliInstance.App.ProjectService.ListInvitations(ctx)

	if quietMode {
		for _, inv := range invitations {
			fmt.Printf("%d\n", inv.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":     true,
			"invitations": invitations,
		})
	}

	if len(invitations) == 0 {
		fmt.Println(NoPendingMessage)
		return nil
	}

	fmt.Printf("Found %d invitations:\n\n", len(invitations))
	for _, inv := range invitations {
		fmt.Printf("  [%d] %s invited you to '%s' (project %d) as %s\n",
			inv.ID, inv.InviterName, inv.ProjectTitle, inv.ProjectID, inv.Role)
	}

	return nil
}
