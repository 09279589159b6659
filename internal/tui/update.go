package tui

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/research-collab/collab-cli/internal/models"
	"github.com/research-collab/collab-cli/internal/services/account"
	projectservice "github.com/research-collab/collab-cli/internal/services/project"
	"github.com/research-collab/collab-cli/internal/tui/huhforms"
	"github.com/research-collab/collab-cli/internal/tui/state"
)

// Update is the main message dispatcher.
// Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loginResultMsg:
		return m.handleLoginResult(msg)
	case registerResultMsg:
		return m.handleRegisterResult(msg)
	case projectsLoadedMsg:
		m.projects = msg.projects
		if m.selectedProject >= len(m.projects) {
			m.selectedProject = 0
		}
		return m, nil
	case projectSavedMsg:
		return m.handleProjectSaved(msg)
	case invitationsLoadedMsg:
		m.InvitationsState.SetInvitations(msg.invitations)
		return m, nil
	case respondResultMsg:
		return m.handleRespondResult(msg)
	case inviteResultMsg:
		return m.handleInviteResult(msg)
	case inviteModalCloseMsg:
		// Emitted once per successful invite, after the linger delay.
		m.NotificationState.Clear()
		m.closeForm(state.ProjectDetailMode)
		return m, tea.ClearScreen
	case profileLoadedMsg:
		return m.handleProfileLoaded(msg)
	case profileSavedMsg:
		return m.handleProfileSaved(msg)
	}

	// Mode-specific handling
	switch m.UiState.Mode() {
	case state.LoginMode:
		return m.updateLogin(msg)
	case state.RegisterMode:
		return m.updateRegister(msg)
	case state.ProjectsMode:
		return m.updateProjects(msg)
	case state.ProjectDetailMode:
		return m.updateProjectDetail(msg)
	case state.ProjectFormMode:
		return m.updateProjectForm(msg)
	case state.InvitationsMode:
		return m.updateInvitations(msg)
	case state.InviteFormMode:
		return m.updateInviteForm(msg)
	case state.ProfileMode:
		return m.updateProfile(msg)
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// Service result handlers
// ---------------------------------------------------------------------------

func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.NotificationState.Error("Login failed: " + msg.err.Error())
		m.openLoginForm()
		return m, m.FormState.Form.Init()
	}

	// The service is side-effect free; persisting the session is ours.
	if err := m.app.Session.SetToken(msg.result.Token); err != nil {
		m.NotificationState.Error("Could not save session: " + err.Error())
		m.openLoginForm()
		return m, m.FormState.Form.Init()
	}
	if err := m.app.Session.SetUserID(msg.result.UserID); err != nil {
		m.NotificationState.Error("Could not save session: " + err.Error())
		m.openLoginForm()
		return m, m.FormState.Form.Init()
	}

	m.NotificationState.Clear()
	m.closeForm(state.ProjectsMode)
	return m, tea.Batch(m.loadProjectsCmd(), tea.ClearScreen)
}

func (m Model) handleRegisterResult(msg registerResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.NotificationState.Error("Registration failed: " + msg.err.Error())
		m.openRegisterForm()
		return m, m.FormState.Form.Init()
	}

	message := msg.message
	if message == "" {
		message = "Registration successful. Please log in."
	}
	m.NotificationState.Info(message)
	m.openLoginForm()
	return m, tea.Batch(m.FormState.Form.Init(), tea.ClearScreen)
}

func (m Model) handleProjectSaved(msg projectSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Reopen the editor with the entered values so the user can fix
		// and retry.
		m.NotificationState.Error(msg.err.Error())
		m.FormState.Form = huhforms.ProjectForm(
			&m.FormState.ProjectTitle,
			&m.FormState.ProjectDesc,
			&m.FormState.ProjectStatus,
			&m.FormState.ProjectVis,
			&m.FormState.ProjectSkills,
			&m.FormState.Confirm,
		)
		return m, m.FormState.Form.Init()
	}

	message := msg.message
	if message == "" {
		message = "Project saved"
	}
	m.NotificationState.Info(message)
	m.closeForm(state.ProjectsMode)
	return m, tea.Batch(m.loadProjectsCmd(), tea.ClearScreen)
}

func (m Model) handleRespondResult(msg respondResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.NotificationState.Error(msg.err.Error())
	} else {
		m.NotificationState.Info(msg.message)
	}

	// One re-fetch per response, success or not, so the list always
	// reflects what the server now believes.
	m.InvitationsState.StartLoading()
	return m, m.loadInvitationsCmd()
}

func (m Model) handleInviteResult(msg inviteResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// The modal stays open on failure so the user can retry.
		m.NotificationState.Error("Failed to send invitation.")
		m.FormState.Form = huhforms.InviteForm(&m.FormState.InviteEmail, &m.FormState.InviteRole)
		return m, m.FormState.Form.Init()
	}

	message := msg.message
	if message == "" {
		message = "Invitation sent"
	}
	m.NotificationState.Info(message)
	return m, closeInviteModalCmd()
}

func (m Model) handleProfileLoaded(msg profileLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.NotificationState.Error("Could not load profile: " + msg.err.Error())
		m.UiState.SetMode(state.ProjectsMode)
		return m, nil
	}

	m.profile = msg.profile
	m.openProfileForm(msg.profile)
	return m, m.FormState.Form.Init()
}

func (m Model) handleProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.NotificationState.Error(msg.err.Error())
		m.FormState.Form = huhforms.ProfileForm(
			&m.FormState.FullName,
			&m.FormState.Affiliation,
			&m.FormState.Bio,
		)
		return m, m.FormState.Form.Init()
	}

	message := msg.message
	if message == "" {
		message = "Profile updated"
	}
	m.NotificationState.Info(message)
	m.closeForm(state.ProjectsMode)
	return m, tea.ClearScreen
}

// ---------------------------------------------------------------------------
// Form modes
// ---------------------------------------------------------------------------

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, tea.Quit
		case "ctrl+r":
			m.NotificationState.Clear()
			m.openRegisterForm()
			return m, tea.Batch(m.FormState.Form.Init(), tea.ClearScreen)
		}
	}

	return m.handleFormUpdate(msg, func(m Model) (tea.Model, tea.Cmd) {
		return m, m.loginCmd(m.FormState.Email, m.FormState.Password)
	})
}

func (m Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+l":
			m.NotificationState.Clear()
			m.openLoginForm()
			return m, tea.Batch(m.FormState.Form.Init(), tea.ClearScreen)
		}
	}

	return m.handleFormUpdate(msg, func(m Model) (tea.Model, tea.Cmd) {
		creds := account.Credentials{
			Email:    m.FormState.Email,
			Password: m.FormState.Password,
		}
		return m, m.registerCmd(creds)
	})
}

func (m Model) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.closeForm(state.ProjectsMode)
		return m, tea.ClearScreen
	}

	return m.handleFormUpdate(msg, func(m Model) (tea.Model, tea.Cmd) {
		if !m.FormState.Confirm {
			m.closeForm(state.ProjectsMode)
			return m, tea.ClearScreen
		}

		project := models.Project{
			Title:          strings.TrimSpace(m.FormState.ProjectTitle),
			Description:    m.FormState.ProjectDesc,
			Status:         m.FormState.ProjectStatus,
			Visibility:     m.FormState.ProjectVis,
			RequiredSkills: splitSkills(m.FormState.ProjectSkills),
		}

		if m.FormState.EditingProjectID == 0 {
			return m, m.createProjectCmd(project)
		}
		return m, m.updateProjectCmd(m.FormState.EditingProjectID, project)
	})
}

func (m Model) updateInviteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.NotificationState.Clear()
		m.closeForm(state.ProjectDetailMode)
		return m, tea.ClearScreen
	}

	return m.handleFormUpdate(msg, func(m Model) (tea.Model, tea.Cmd) {
		return m, m.inviteCmd(
			m.FormState.InviteProjectID,
			m.FormState.InviteEmail,
			models.CollaboratorRole(m.FormState.InviteRole),
		)
	})
}

func (m Model) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.closeForm(state.ProjectsMode)
		return m, tea.ClearScreen
	}

	if m.FormState.Form == nil {
		// Still waiting on the profile fetch.
		return m, nil
	}

	return m.handleFormUpdate(msg, func(m Model) (tea.Model, tea.Cmd) {
		return m, m.saveProfileCmd(models.Profile{
			FullName:    strings.TrimSpace(m.FormState.FullName),
			Affiliation: strings.TrimSpace(m.FormState.Affiliation),
			Bio:         strings.TrimSpace(m.FormState.Bio),
		})
	})
}

// handleFormUpdate forwards a message to the active form and invokes
// onComplete once the form finishes. Forms need to receive ALL
// messages, not just KeyMsg.
func (m Model) handleFormUpdate(msg tea.Msg, onComplete func(Model) (tea.Model, tea.Cmd)) (tea.Model, tea.Cmd) {
	if m.FormState.Form == nil {
		// A call is in flight; its result message advances the view.
		return m, nil
	}

	model, cmd := m.FormState.Form.Update(msg)
	m.FormState.Form = model.(*huh.Form)

	if m.FormState.Form.State == huh.StateCompleted {
		// Drop the form first so a keypress racing the service call
		// cannot complete it a second time.
		m.FormState.Form = nil
		return onComplete(m)
	}

	return m, cmd
}

// ---------------------------------------------------------------------------
// List modes
// ---------------------------------------------------------------------------

func (m Model) updateProjects(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.selectedProject < len(m.projects)-1 {
			m.selectedProject++
		}

	case "k", "up":
		if m.selectedProject > 0 {
			m.selectedProject--
		}

	case "enter":
		if m.getSelectedProject() != nil {
			m.UiState.SetMode(state.ProjectDetailMode)
		}

	case "n":
		m.openProjectForm(nil)
		return m, tea.Batch(m.FormState.Form.Init(), tea.ClearScreen)

	case "e":
		if p := m.getSelectedProject(); p != nil {
			m.openProjectForm(p)
			return m, tea.Batch(m.FormState.Form.Init(), tea.ClearScreen)
		}

	case "i":
		m.NotificationState.Clear()
		m.InvitationsState.StartLoading()
		m.UiState.SetMode(state.InvitationsMode)
		return m, m.loadInvitationsCmd()

	case "p":
		m.NotificationState.Clear()
		m.UiState.SetMode(state.ProfileMode)
		return m, m.loadProfileCmd()

	case "r":
		m.NotificationState.Clear()
		return m, m.loadProjectsCmd()
	}

	return m, nil
}

func (m Model) updateProjectDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "backspace":
		m.NotificationState.Clear()
		m.UiState.SetMode(state.ProjectsMode)
		return m, tea.ClearScreen

	case "e":
		if p := m.getSelectedProject(); p != nil {
			m.openProjectForm(p)
			return m, tea.Batch(m.FormState.Form.Init(), tea.ClearScreen)
		}

	case "v":
		if p := m.getSelectedProject(); p != nil {
			m.openInviteForm(p.ID)
			return m, tea.Batch(m.FormState.Form.Init(), tea.ClearScreen)
		}
	}

	return m, nil
}

func (m Model) updateInvitations(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc":
		m.NotificationState.Clear()
		m.UiState.SetMode(state.ProjectsMode)
		return m, tea.Batch(m.loadProjectsCmd(), tea.ClearScreen)

	case "j", "down":
		m.InvitationsState.MoveDown()

	case "k", "up":
		m.InvitationsState.MoveUp()

	case "a":
		if inv := m.InvitationsState.Selected(); inv != nil {
			return m, m.respondCmd(inv.ProjectID, inv.ID, projectservice.ActionAccept)
		}

	case "d":
		if inv := m.InvitationsState.Selected(); inv != nil {
			return m, m.respondCmd(inv.ProjectID, inv.ID, projectservice.ActionReject)
		}

	case "r":
		m.InvitationsState.StartLoading()
		return m, m.loadInvitationsCmd()
	}

	return m, nil
}

// splitSkills turns the comma-separated skills line into an ordered
// list. Empty input yields an empty list, never nil.
func splitSkills(raw string) []string {
	skills := []string{}
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func joinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}
