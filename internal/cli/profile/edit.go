package profile

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/cli"
	"github.com/research-collab/collab-cli/internal/models"
)

// EditCmd returns the profile edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit your profile",
		Long: `Update your profile. Only the flags you pass change. Email is
read only and cannot be edited.

Example:
  collab profile edit --full-name="Ada Lovelace" --affiliation="Analytical Engine Lab"
`,
		RunE: runEdit,
	}

	cmd.Flags().String("full-name", "", "Full name")
	cmd.Flags().String("affiliation", "", "Affiliation")
	cmd.Flags().String("bio", "", "Short bio")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	userID := cliInstance.App.Session.UserID()

	// Fetch the current profile and overlay the changed flags, so an
	// edit of one field doesn't blank the others.
	current, err := cliInstance.App.ProfileService.Get(ctx, userID)
	if err != nil {
		if fmtErr := formatter.Error("PROFILE_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	updated := models.Profile{
		FullName:    current.FullName,
		Affiliation: current.Affiliation,
		Bio:         current.Bio,
	}
	if cmd.Flags().Changed("full-name") {
		updated.FullName, _ = cmd.Flags().GetString("full-name")
	}
	if cmd.Flags().Changed("affiliation") {
		updated.Affiliation, _ = cmd.Flags().GetString("affiliation")
	}
	if cmd.Flags().Changed("bio") {
		updated.Bio, _ = cmd.Flags().GetString("bio")
	}

	message, err := cliInstance.App.ProfileService.Update(ctx, userID, updated)
	if err != nil {
		if fmtErr := formatter.Error("PROFILE_UPDATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if message == "" {
		message = "Profile updated"
	}
	return formatter.Message(message)
}
