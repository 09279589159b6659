package project

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/cli"
	"github.com/research-collab/collab-cli/internal/models"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project with specified attributes.

Examples:
  # Simple project (human-readable output)
  collab project create --title="Protein folding study"

  # With skills (order is preserved exactly as given)
  collab project create \
    --title="Protein folding study" \
    --description="Looking for collaborators with ML background" \
    --skills="python,pytorch,biochemistry"

  # Public, closed for applications
  collab project create --title="Archive" --visibility=public --status=closed
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Project title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Project description (markdown)")
	cmd.Flags().String("status", models.ProjectStatusOpen, "Project status (open|closed)")
	cmd.Flags().String("visibility", models.VisibilityPrivate, "Project visibility (private|public)")
	cmd.Flags().String("skills", "", "Comma-separated required skills, in order")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	status, _ := cmd.Flags().GetString("status")
	visibility, _ := cmd.Flags().GetString("visibility")
	skills, _ := cmd.Flags().GetString("skills")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if strings.TrimSpace(title) == "" {
		if fmtErr := formatter.Error("VALIDATION_ERROR", "project title cannot be empty"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}
	if err := validateStatus(status); err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}
	if err := validateVisibility(visibility); err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
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

	message, err := cliInstance.App.ProjectService.Create(ctx, models.Project{
		Title:          title,
		Description:    description,
		Status:         status,
		Visibility:     visibility,
		RequiredSkills: splitSkills(skills),
	})
	if err != nil {
		if fmtErr := formatter.Error("PROJECT_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if message == "" {
		message = "Project created"
	}
	return formatter.Message(message)
}

// splitSkills turns a comma-separated flag value into an ordered skill
// list. Empty input yields an empty list, never nil.
func splitSkills(raw string) []string {
	skills := []string{}
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
