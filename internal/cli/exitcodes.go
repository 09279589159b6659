package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, server errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: project or invitation IDs that don't exist.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: malformed email, empty required fields, invalid status
	// or visibility values. No request was sent to the server.
	ExitValidation = 4

	// ExitAuth indicates a missing or rejected session.
	// Use for: commands that need a login when none is stored.
	ExitAuth = 5
)
