package tui

import "charm.land/lipgloss/v2"

// Style definitions for the collaboration UI
// These styles follow Lipgloss conventions for composable terminal styling

var (
	highlight = lipgloss.Color("#874BFD")
	subtle    = lipgloss.Color("240")

	// TitleStyle defines the appearance of view headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// ListItemStyle defines an unselected row in a list view
	ListItemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	// SelectedItemStyle defines the highlighted row in a list view
	SelectedItemStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(highlight).
				SetString("▸ ")

	// FormBoxStyle defines the bordered box around modal forms
	FormBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("170")).
			Padding(1, 2)

	// DetailBoxStyle defines the bordered box around the project detail view
	DetailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	// MutedStyle defines secondary text (hints, metadata, empty states)
	MutedStyle = lipgloss.NewStyle().
			Foreground(subtle)

	// BadgeStyle defines the small status/visibility tags on projects
	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("110")).
			Padding(0, 1)

	// NotificationStyle defines the status line under the active view
	NotificationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	// ErrorNotificationStyle defines the status line when showing an error
	ErrorNotificationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	// HelpStyle defines the key hint bar at the bottom of each view
	HelpStyle = lipgloss.NewStyle().
			Foreground(subtle)
)
