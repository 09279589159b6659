package project

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/cli"
	"github.com/research-collab/collab-cli/internal/models"
	"github.com/research-collab/collab-cli/internal/validate"
)

// InviteCmd returns the project invite subcommand
func InviteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Invite a collaborator to a project",
		Long: `Send one collaboration invitation. The invitee answers with
'collab invitation accept' or 'collab invitation reject'.

Examples:
  collab project invite --id=103 --email="a@b.com" --role=programmer
  collab project invite --id=103 --email="a@b.com" --role=researcher
`,
		RunE: runInvite,
	}

	cmd.Flags().Int("id", 0, "Project ID (required)")
	cmd.Flags().String("email", "", "Collaborator email (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	if err := cmd.MarkFlagRequired("email"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("role", string(models.RoleProgrammer), "Collaborator role (researcher|programmer|editor|...)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runInvite(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, _ := cmd.Flags().GetInt("id")
	email, _ := cmd.Flags().GetString("email")
	role, _ := cmd.Flags().GetString("role")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Format check before any request goes out
	if !validate.Email(email) {
		if fmtErr := formatter.Error("VALIDATION_ERROR", "invalid collaborator email"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

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

	message, err := cliInstance.App.ProjectService.InviteCollaborator(ctx, id, email, models.CollaboratorRole(role))
	if err != nil {
		if fmtErr := formatter.Error("INVITE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if message == "" {
		message = "Invitation sent"
	}
	return formatter.Message(message)
}
