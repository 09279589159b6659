package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/cli"
)

// ShowCmd returns the profile show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE:  runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (full name only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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
	p, err := cliInstance.App.ProfileService.Get(ctx, userID)
	if err != nil {
		if fmtErr := formatter.Error("PROFILE_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Println(p.FullName)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"profile": p,
		})
	}

	fmt.Printf("%s <%s>\n", p.FullName, p.Email)
	if p.Affiliation != "" {
		fmt.Printf("Affiliation: %s\n", p.Affiliation)
	}
	if p.Bio != "" {
		fmt.Printf("Bio: %s\n", p.Bio)
	}
	if p.Location != "" {
		fmt.Printf("Location: %s\n", p.Location)
	}
	if p.GitHub != "" {
		fmt.Printf("GitHub: %s\n", p.GitHub)
	}

	return nil
}
