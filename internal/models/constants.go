package models

// ============================================================================
// PROJECT STATUS CONSTANTS
// ============================================================================

// Project status values
const (
	ProjectStatusOpen   = "open"
	ProjectStatusClosed = "closed"
)

// ============================================================================
// PROJECT VISIBILITY CONSTANTS
// ============================================================================

// Project visibility values
const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// ProjectStatuses lists the valid statuses in display order
var ProjectStatuses = []string{ProjectStatusOpen, ProjectStatusClosed}

// Visibilities lists the valid visibility values in display order
var Visibilities = []string{VisibilityPrivate, VisibilityPublic}

// SuggestedRoles lists the roles offered in invitation pickers.
// The role set is open; free-form values are accepted too.
var SuggestedRoles = []CollaboratorRole{RoleResearcher, RoleProgrammer, RoleEditor}
