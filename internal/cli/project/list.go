package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/cli"
	"github.com/research-collab/collab-cli/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long: `List every project visible to you.

A server that can't be reached lists as empty; the command never fails
on a fetch error.`,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

// MineCmd returns the project mine subcommand
func MineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List your own projects",
		RunE:  runMine,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return listProjects(cmd, false)
}

func runMine(cmd *cobra.Command, args []string) error {
	return listProjects(cmd, true)
}

func listProjects(cmd *cobra.Command, mine bool) error {
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

	var projects []models.Project
	if mine {
		projects = cliInstance.App.ProjectService.ListMine(ctx)
	} else {
		projects = cliInstance.App.ProjectService.ListAll(ctx)
	}

	if quietMode {
		for _, p := range projects {
			fmt.Printf("%d\n", p.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"projects": projects,
		})
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Printf("Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		fmt.Printf("  [%d] %s (%s, %s)", p.ID, p.Title, p.Status, p.Visibility)
		if len(p.RequiredSkills) > 0 {
			fmt.Printf(" - skills: %s", strings.Join(p.RequiredSkills, ", "))
		}
		fmt.Println()
	}

	return nil
}
