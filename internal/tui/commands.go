package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/research-collab/collab-cli/internal/models"
	"github.com/research-collab/collab-cli/internal/services/account"
	projectservice "github.com/research-collab/collab-cli/internal/services/project"
)

// inviteCloseDelay is how long the invite modal lingers on its success
// message before closing itself.
const inviteCloseDelay = 1200 * time.Millisecond

// Commands wrapping service calls. Each returns a single message when
// the call resolves; the UI stays responsive while it is in flight.
// There is no cancellation once dispatched and no timeout.

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.app.AccountService.Login(context.Background(), email, password)
		return loginResultMsg{result: result, err: err}
	}
}

func (m Model) registerCmd(creds account.Credentials) tea.Cmd {
	return func() tea.Msg {
		message, err := m.app.AccountService.Register(context.Background(), creds)
		return registerResultMsg{message: message, err: err}
	}
}

func (m Model) loadProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		return projectsLoadedMsg{projects: m.app.ProjectService.ListAll(context.Background())}
	}
}

func (m Model) createProjectCmd(p models.Project) tea.Cmd {
	return func() tea.Msg {
		message, err := m.app.ProjectService.Create(context.Background(), p)
		return projectSavedMsg{message: message, err: err}
	}
}

func (m Model) updateProjectCmd(id int, p models.Project) tea.Cmd {
	return func() tea.Msg {
		updated, err := m.app.ProjectService.Update(context.Background(), id, p)
		if err != nil {
			return projectSavedMsg{err: err}
		}
		return projectSavedMsg{message: "Project '" + updated.Title + "' updated"}
	}
}

func (m Model) loadInvitationsCmd() tea.Cmd {
	return func() tea.Msg {
		return invitationsLoadedMsg{invitations: m.app.ProjectService.ListInvitations(context.Background())}
	}
}

func (m Model) respondCmd(projectID, invitationID int, action projectservice.ResponseAction) tea.Cmd {
	return func() tea.Msg {
		message, err := m.app.ProjectService.Respond(context.Background(), projectID, invitationID, action)
		return respondResultMsg{message: message, err: err}
	}
}

func (m Model) inviteCmd(projectID int, email string, role models.CollaboratorRole) tea.Cmd {
	return func() tea.Msg {
		message, err := m.app.ProjectService.InviteCollaborator(context.Background(), projectID, email, role)
		return inviteResultMsg{message: message, err: err}
	}
}

// closeInviteModalCmd emits the close message once, after the delay.
func closeInviteModalCmd() tea.Cmd {
	return tea.Tick(inviteCloseDelay, func(time.Time) tea.Msg {
		return inviteModalCloseMsg{}
	})
}

func (m Model) loadProfileCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.app.ProfileService.Get(context.Background(), m.app.Session.UserID())
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (m Model) saveProfileCmd(p models.Profile) tea.Cmd {
	return func() tea.Msg {
		message, err := m.app.ProfileService.Update(context.Background(), m.app.Session.UserID(), p)
		return profileSavedMsg{message: message, err: err}
	}
}
