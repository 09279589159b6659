package profile

import "errors"

// Domain errors for profile operations
var (
	ErrUserIDRequired   = errors.New("user id is required")
	ErrFullNameRequired = errors.New("full name is required")

	ErrLoadFailed   = errors.New("failed to load profile")
	ErrUpdateFailed = errors.New("failed to update profile")
)
