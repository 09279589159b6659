package project

import "errors"

// Domain errors for project and invitation operations
var (
	// Validation errors
	ErrInvalidProjectID    = errors.New("invalid project ID")
	ErrInvalidInvitationID = errors.New("invalid invitation ID")
	ErrInvalidAction       = errors.New("invitation response must be accept or reject")
	ErrEmptyTitle          = errors.New("project title cannot be empty")
	ErrEmailRequired       = errors.New("collaborator email is required")
	ErrEmailInvalid        = errors.New("invalid collaborator email")
	ErrRoleRequired        = errors.New("collaborator role is required")

	// Fixed failure conditions for write operations. The underlying
	// cause is logged, not surfaced; callers get one generic message.
	ErrCreateFailed  = errors.New("failed to create project")
	ErrInviteFailed  = errors.New("failed to send invitation")
	ErrRespondFailed = errors.New("failed to respond to invitation")
)
