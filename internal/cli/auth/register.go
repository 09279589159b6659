package auth

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/research-collab/collab-cli/internal/cli"
	accountservice "github.com/research-collab/collab-cli/internal/services/account"
	"github.com/research-collab/collab-cli/internal/validate"
)

// RegisterCmd returns the auth register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long: `Create a new account on the configured server.

Examples:
  collab auth register --email="ada@example.org" --password="s3cret" --confirm="s3cret"

  # JSON output for scripts
  collab auth register --email="ada@example.org" --password="s3cret" --confirm="s3cret" --json
`,
		RunE: runRegister,
	}

	// Required flags
	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("password", "", "Account password (required)")
	if err := cmd.MarkFlagRequired("email"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	if err := cmd.MarkFlagRequired("password"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("confirm", "", "Password confirmation (checked before any request)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	confirm, _ := cmd.Flags().GetString("confirm")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Confirmation check happens before the CLI even initializes;
	// a mismatch must never produce a request.
	if cmd.Flags().Changed("confirm") && !validate.PasswordsMatch(password, confirm) {
		if fmtErr := formatter.Error("VALIDATION_ERROR", "passwords do not match"); fmtErr != nil {
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

	message, err := cliInstance.App.AccountService.Register(ctx, accountservice.Credentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		if isValidationError(err) {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		if fmtErr := formatter.Error("REGISTRATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if message == "" {
		message = "Account registered"
	}
	return formatter.Message(message)
}

// isValidationError reports whether the error came from client-side
// validation, meaning no request was sent.
func isValidationError(err error) bool {
	return errors.Is(err, accountservice.ErrEmailRequired) ||
		errors.Is(err, accountservice.ErrEmailInvalid) ||
		errors.Is(err, accountservice.ErrPasswordRequired)
}
