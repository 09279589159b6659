package account

import "errors"

// Domain errors for account operations
var (
	// Validation errors: these are raised before any request is dispatched
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("invalid email format")
	ErrPasswordRequired = errors.New("password is required")

	// Generic failure conditions surfaced to the caller. The server's
	// reason is logged but not distinguished; there is no retry.
	ErrRegistrationFailed = errors.New("registration failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
