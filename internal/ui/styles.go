package ui

import "github.com/charmbracelet/lipgloss"

// Styles contains shared style definitions for the app.
var Styles = struct {
	// Box styles
	BoxDefault lipgloss.Style // Standard modal box
	BoxUrgent  lipgloss.Style // Urgent modal box (live practice)

	// Text styles
	Title       lipgloss.Style // Modal title
	TitleUrgent lipgloss.Style // Urgent title
	Label       lipgloss.Style // Modal label/content
	Help        lipgloss.Style // Help text (dim gray)
	Status      lipgloss.Style // Practice status tag
	Muted       lipgloss.Style // Secondary info
}{
	BoxDefault: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 2).
		Margin(1),
	BoxUrgent: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("214")).
		Padding(1, 2).
		Margin(1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")),
	TitleUrgent: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")),
	Label: lipgloss.NewStyle(),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")),
}
