package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/research-collab/collab-cli/internal/tui/state"
)

// View is the main view dispatcher that renders the current state of
// the application.
// Required by tea.Model interface
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var content string
	switch m.UiState.Mode() {
	case state.LoginMode:
		content = m.viewLogin()
	case state.RegisterMode:
		content = m.viewRegister()
	case state.ProjectsMode:
		content = m.viewProjects()
	case state.ProjectDetailMode:
		content = m.viewProjectDetail()
	case state.ProjectFormMode:
		content = m.viewProjectForm()
	case state.InvitationsMode:
		content = m.viewInvitations()
	case state.InviteFormMode:
		content = m.viewInviteForm()
	case state.ProfileMode:
		content = m.viewProfile()
	}

	view.Content = content
	return view
}

// centered places content in the middle of the screen.
func (m Model) centered(content string) string {
	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

func (m Model) viewNotification() string {
	if m.NotificationState.Message() == "" {
		return ""
	}
	if m.NotificationState.IsError() {
		return ErrorNotificationStyle.Render(m.NotificationState.Message())
	}
	return NotificationStyle.Render(m.NotificationState.Message())
}

// ---------------------------------------------------------------------------
// Auth views
// ---------------------------------------------------------------------------

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Research Collab"))
	b.WriteString("\n\n")
	if m.FormState.Form != nil {
		b.WriteString(m.FormState.Form.View())
	}
	if note := m.viewNotification(); note != "" {
		b.WriteString("\n" + note)
	}
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("ctrl+r: register · esc: quit"))

	return m.centered(FormBoxStyle.Render(b.String()))
}

func (m Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Create account"))
	b.WriteString("\n\n")
	if m.FormState.Form != nil {
		b.WriteString(m.FormState.Form.View())
	}
	if note := m.viewNotification(); note != "" {
		b.WriteString("\n" + note)
	}
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("esc: back to login"))

	return m.centered(FormBoxStyle.Render(b.String()))
}

// ---------------------------------------------------------------------------
// Project views
// ---------------------------------------------------------------------------

func (m Model) viewProjects() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Projects"))
	b.WriteString("\n\n")

	if len(m.projects) == 0 {
		b.WriteString(MutedStyle.Render("No projects yet. Press n to create one."))
		b.WriteString("\n")
	}

	for i, p := range m.projects {
		badges := BadgeStyle.Render(p.Status) + " " + BadgeStyle.Render(p.Visibility)
		line := fmt.Sprintf("%s  %s", p.Title, badges)
		if i == m.selectedProject {
			b.WriteString(SelectedItemStyle.Render(line))
		} else {
			b.WriteString(ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if note := m.viewNotification(); note != "" {
		b.WriteString("\n" + note + "\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(
		"enter: open · n: new · e: edit · i: invitations · p: profile · r: refresh · q: quit",
	))
	return b.String()
}

func (m Model) viewProjectDetail() string {
	p := m.getSelectedProject()
	if p == nil {
		return MutedStyle.Render("Project not found.")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(BadgeStyle.Render(p.Status) + " " + BadgeStyle.Render(p.Visibility))
	b.WriteString("\n\n")

	if len(p.RequiredSkills) > 0 {
		// Skill order is meaningful; render it as stored.
		b.WriteString(MutedStyle.Render("Skills: " + strings.Join(p.RequiredSkills, ", ")))
		b.WriteString("\n\n")
	}

	width := min(m.UiState.Width()-8, 80)
	b.WriteString(renderMarkdown(p.Description, width))

	if note := m.viewNotification(); note != "" {
		b.WriteString("\n\n" + note)
	}

	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("e: edit · v: invite collaborator · esc: back"))

	return DetailBoxStyle.Width(min(m.UiState.Width()-4, 90)).Render(b.String())
}

func (m Model) viewProjectForm() string {
	title := "New project"
	if m.FormState.EditingProjectID != 0 {
		title = "Edit project"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")
	if m.FormState.Form != nil {
		b.WriteString(m.FormState.Form.View())
	}
	if note := m.viewNotification(); note != "" {
		b.WriteString("\n" + note)
	}

	return m.centered(FormBoxStyle.Render(b.String()))
}

// ---------------------------------------------------------------------------
// Invitation views
// ---------------------------------------------------------------------------

func (m Model) viewInvitations() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Invitations"))
	b.WriteString("\n\n")

	switch {
	case m.InvitationsState.Loading():
		b.WriteString(m.spinner.View() + MutedStyle.Render("Loading invitations..."))
		b.WriteString("\n")
	case len(m.InvitationsState.Invitations()) == 0:
		b.WriteString(MutedStyle.Render(m.InvitationsState.Message()))
		b.WriteString("\n")
	default:
		selected := m.InvitationsState.Selected()
		for i := range m.InvitationsState.Invitations() {
			inv := &m.InvitationsState.Invitations()[i]
			line := fmt.Sprintf("%s · invited by %s as %s", inv.ProjectTitle, inv.InviterName, inv.Role)
			if selected != nil && inv == selected {
				b.WriteString(SelectedItemStyle.Render(line))
			} else {
				b.WriteString(ListItemStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	if note := m.viewNotification(); note != "" {
		b.WriteString("\n" + note + "\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("a: accept · d: decline · r: refresh · esc: back"))
	return b.String()
}

func (m Model) viewInviteForm() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Invite collaborator"))
	b.WriteString("\n\n")
	if m.FormState.Form != nil {
		b.WriteString(m.FormState.Form.View())
	}
	if note := m.viewNotification(); note != "" {
		b.WriteString("\n" + note)
	}
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("esc: cancel"))

	return m.centered(FormBoxStyle.Render(b.String()))
}

// ---------------------------------------------------------------------------
// Profile view
// ---------------------------------------------------------------------------

func (m Model) viewProfile() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Profile"))
	b.WriteString("\n\n")

	if m.profile == nil || m.FormState.Form == nil {
		b.WriteString(m.spinner.View() + MutedStyle.Render("Loading profile..."))
		return m.centered(FormBoxStyle.Render(b.String()))
	}

	// Email comes from the account and cannot be edited here.
	b.WriteString(MutedStyle.Render("Email: " + m.profile.Email))
	b.WriteString("\n\n")
	b.WriteString(m.FormState.Form.View())

	if note := m.viewNotification(); note != "" {
		b.WriteString("\n" + note)
	}
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("esc: back"))

	return m.centered(FormBoxStyle.Render(b.String()))
}
