package invitation

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/cli"
	projectservice "github.com/research-collab/collab-cli/internal/services/project"
)

// AcceptCmd returns the invitation accept subcommand
func AcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept",
		Short: "Accept an invitation",
		Long: `Accept one invitation. The status change happens on the server;
list invitations again afterwards to see the result.

Example:
  collab invitation accept --project=101 --id=1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRespond(cmd, projectservice.ActionAccept)
		},
	}
	addRespondFlags(cmd)
	return cmd
}

// RejectCmd returns the invitation reject subcommand
func RejectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject",
		Short: "Reject an invitation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRespond(cmd, projectservice.ActionReject)
		},
	}
	addRespondFlags(cmd)
	return cmd
}

func addRespondFlags(cmd *cobra.Command) {
	cmd.Flags().Int("project", 0, "Project ID the invitation belongs to (required)")
	cmd.Flags().Int("id", 0, "Invitation ID (required)")
	if err := cmd.MarkFlagRequired("project"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

func runRespond(cmd *cobra.Command, action projectservice.ResponseAction) error {
	ctx := context.Background()

	projectID, _ := cmd.Flags().GetInt("project")
	invitationID, _ := cmd.Flags().GetInt("id")
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

	message, err := cliInstance.App.ProjectService.Respond(ctx, projectID, invitationID, action)
	if err != nil {
		if fmtErr := formatter.Error("INVITATION_RESPONSE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if message == "" {
		message = "Invitation " + string(action) + "ed"
	}
	return formatter.Message(message)
}
