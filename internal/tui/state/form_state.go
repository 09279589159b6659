package state

import (
	"charm.land/huh/v2"
)

// FormState holds the active huh form plus the values its fields are
// bound to. Forms write through the pointers, so reading these fields
// after completion yields the submitted values.
type FormState struct {
	Form *huh.Form

	// Login / registration
	Email           string
	Password        string
	ConfirmPassword string

	// Project editor
	EditingProjectID int // 0 means creating
	ProjectTitle     string
	ProjectDesc      string
	ProjectStatus    string
	ProjectVis       string
	ProjectSkills    string // comma separated, order preserved on split

	// Invite collaborator
	InviteProjectID int
	InviteEmail     string
	InviteRole      string

	// Profile editor
	FullName    string
	Affiliation string
	Bio         string

	Confirm bool
}

// NewFormState creates an empty form state.
func NewFormState() *FormState {
	return &FormState{}
}

// Clear drops the active form and every bound value.
func (s *FormState) Clear() {
	*s = FormState{}
}
