package ui

import (
	"github.com/adriangreen/todo-tui/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the lipgloss styles for the TUI
type Styles struct {
	// Layout styles
	Header    lipgloss.Style
	StatusBar lipgloss.Style

	// Panel styles
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style

	// Task rows
	TaskOpen    lipgloss.Style
	TaskDone    lipgloss.Style
	TaskEditing lipgloss.Style
	TaskCursor  lipgloss.Style

	// Sidebar rows
	ListItem    lipgloss.Style
	ListCurrent lipgloss.Style

	// Popups
	Popup      lipgloss.Style
	PopupTitle lipgloss.Style

	// Text styles
	Subtle lipgloss.Style
	Error  lipgloss.Style
	Info   lipgloss.Style
}

// NewStyles builds the styles from the configured theme
func NewStyles(theme config.ThemeConfig) *Styles {
	primary := lipgloss.Color(theme.PrimaryColor)
	border := lipgloss.Color(theme.BorderColor)
	text := lipgloss.Color(theme.TextColor)
	subtle := lipgloss.Color(theme.SubtleColor)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)

	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),

		Panel:        panel,
		PanelFocused: panel.BorderForeground(primary),
		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		TaskOpen:    lipgloss.NewStyle().Foreground(text),
		TaskDone:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.DoneColor)).Strikethrough(true),
		TaskEditing: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.EditingColor)).Bold(true),
		TaskCursor:  lipgloss.NewStyle().Foreground(primary).Bold(true),

		ListItem:    lipgloss.NewStyle().Foreground(text),
		ListCurrent: lipgloss.NewStyle().Foreground(primary).Bold(true),

		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),
		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),

		Subtle: lipgloss.NewStyle().Foreground(subtle),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorColor)).Bold(true),
		Info:   lipgloss.NewStyle().Foreground(primary),
	}
}
