package tui

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/research-collab/collab-cli/internal/app"
	"github.com/research-collab/collab-cli/internal/models"
	"github.com/research-collab/collab-cli/internal/tui/huhforms"
	"github.com/research-collab/collab-cli/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	app *app.App

	UiState           *state.UIState
	FormState         *state.FormState
	InvitationsState  *state.InvitationsState
	NotificationState *state.NotificationState

	projects        []models.Project
	selectedProject int
	profile         *models.Profile

	spinner spinner.Model
}

// InitialModel creates the TUI model. A stored session token skips the
// login form and goes straight to the projects view; the token is not
// verified up front, an expired one simply surfaces as empty lists.
func InitialModel(a *app.App) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = TitleStyle

	m := Model{
		app:               a,
		UiState:           state.NewUIState(state.LoginMode),
		FormState:         state.NewFormState(),
		InvitationsState:  state.NewInvitationsState(),
		NotificationState: state.NewNotificationState(),
		spinner:           s,
	}

	if a.Session.Token() != "" {
		m.UiState.SetMode(state.ProjectsMode)
	} else {
		m.openLoginForm()
	}

	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	if m.UiState.Mode() == state.ProjectsMode {
		return tea.Batch(m.loadProjectsCmd(), m.spinner.Tick)
	}
	if m.FormState.Form != nil {
		return tea.Batch(m.FormState.Form.Init(), m.spinner.Tick)
	}
	return m.spinner.Tick
}

// getSelectedProject returns the currently highlighted project
// Returns nil if the list is empty
func (m Model) getSelectedProject() *models.Project {
	if len(m.projects) == 0 || m.selectedProject >= len(m.projects) {
		return nil
	}
	return &m.projects[m.selectedProject]
}

func (m *Model) openLoginForm() {
	m.FormState.Clear()
	m.FormState.Form = huhforms.LoginForm(&m.FormState.Email, &m.FormState.Password)
	m.UiState.SetMode(state.LoginMode)
}

func (m *Model) openRegisterForm() {
	m.FormState.Clear()
	m.FormState.Form = huhforms.RegisterForm(
		&m.FormState.Email,
		&m.FormState.Password,
		&m.FormState.ConfirmPassword,
	)
	m.UiState.SetMode(state.RegisterMode)
}

// openProjectForm opens the project editor. A nil project means
// creating; otherwise the fields are pre-filled for editing.
func (m *Model) openProjectForm(p *models.Project) {
	m.FormState.Clear()
	if p == nil {
		m.FormState.ProjectStatus = models.ProjectStatusOpen
		m.FormState.ProjectVis = models.VisibilityPrivate
	} else {
		m.FormState.EditingProjectID = p.ID
		m.FormState.ProjectTitle = p.Title
		m.FormState.ProjectDesc = p.Description
		m.FormState.ProjectStatus = p.Status
		m.FormState.ProjectVis = p.Visibility
		m.FormState.ProjectSkills = joinSkills(p.RequiredSkills)
	}
	m.FormState.Form = huhforms.ProjectForm(
		&m.FormState.ProjectTitle,
		&m.FormState.ProjectDesc,
		&m.FormState.ProjectStatus,
		&m.FormState.ProjectVis,
		&m.FormState.ProjectSkills,
		&m.FormState.Confirm,
	)
	m.UiState.SetMode(state.ProjectFormMode)
}

func (m *Model) openInviteForm(projectID int) {
	m.FormState.Clear()
	m.FormState.InviteProjectID = projectID
	m.FormState.InviteRole = string(models.RoleResearcher)
	m.FormState.Form = huhforms.InviteForm(&m.FormState.InviteEmail, &m.FormState.InviteRole)
	m.UiState.SetMode(state.InviteFormMode)
}

// openProfileForm binds the editor to the already loaded profile.
// Email stays out of the form; it is read only and rendered by the view.
func (m *Model) openProfileForm(p *models.Profile) {
	m.FormState.Clear()
	m.FormState.FullName = p.FullName
	m.FormState.Affiliation = p.Affiliation
	m.FormState.Bio = p.Bio
	m.FormState.Form = huhforms.ProfileForm(
		&m.FormState.FullName,
		&m.FormState.Affiliation,
		&m.FormState.Bio,
	)
}

func (m *Model) closeForm(mode state.Mode) {
	m.FormState.Clear()
	m.UiState.SetMode(mode)
}
