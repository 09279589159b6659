package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/cli"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an existing project",
		Long: `Update a project. Only the flags you pass change; everything else
keeps its current value.

Unlike the read commands, an update that fails reports the failure.

Examples:
  collab project update --id=7 --status=closed
  collab project update --id=7 --title="New title" --skills="go,statistics"
`,
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown)")
	cmd.Flags().String("status", "", "New status (open|closed)")
	cmd.Flags().String("visibility", "", "New visibility (private|public)")
	cmd.Flags().String("skills", "", "New comma-separated skill list, in order")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, _ := cmd.Flags().GetInt("id")
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

	// Fetch the current state and overlay the changed flags.
	existing := cliInstance.App.ProjectService.GetByID(ctx, id)
	if existing == nil {
		if fmtErr := formatter.Error("PROJECT_NOT_FOUND", fmt.Sprintf("project %d not found", id)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	updated := *existing
	if cmd.Flags().Changed("title") {
		updated.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("description") {
		updated.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("status") {
		status, _ := cmd.Flags().GetString("status")
		if err := validateStatus(status); err != nil {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		updated.Status = status
	}
	if cmd.Flags().Changed("visibility") {
		visibility, _ := cmd.Flags().GetString("visibility")
		if err := validateVisibility(visibility); err != nil {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		updated.Visibility = visibility
	}
	if cmd.Flags().Changed("skills") {
		skills, _ := cmd.Flags().GetString("skills")
		updated.RequiredSkills = splitSkills(skills)
	}

	result, err := cliInstance.App.ProjectService.Update(ctx, id, updated)
	if err != nil {
		if fmtErr := formatter.Error("PROJECT_UPDATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Printf("%d\n", result.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"project": result,
		})
	}

	fmt.Printf("✓ Project '%s' updated (ID: %d)\n", result.Title, result.ID)
	return nil
}
