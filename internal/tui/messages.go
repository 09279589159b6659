package tui

import (
	"github.com/research-collab/collab-cli/internal/models"
	"github.com/research-collab/collab-cli/internal/services/account"
)

// Messages delivered when an asynchronous service call resolves.
// Each user action dispatches at most one call per method; responses to
// overlapping mutations may arrive out of dispatch order and no attempt
// is made to serialize them.

type loginResultMsg struct {
	result account.LoginResult
	err    error
}

type registerResultMsg struct {
	message string
	err     error
}

type projectsLoadedMsg struct {
	projects []models.Project
}

type projectSavedMsg struct {
	message string
	err     error
}

type invitationsLoadedMsg struct {
	invitations []models.Invitation
}

type respondResultMsg struct {
	message string
	err     error
}

type inviteResultMsg struct {
	message string
	err     error
}

// inviteModalCloseMsg closes the invite modal after the success delay.
// It is emitted exactly once per successful invitation.
type inviteModalCloseMsg struct{}

type profileLoadedMsg struct {
	profile *models.Profile
	err     error
}

type profileSavedMsg struct {
	message string
	err     error
}
