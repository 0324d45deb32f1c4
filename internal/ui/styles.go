package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorTag     = lipgloss.Color("12") // light blue
	colorFocus   = lipgloss.Color("11") // yellow
	colorEditing = lipgloss.Color("14") // cyan
	colorMuted   = lipgloss.Color("8")
	colorWarn    = lipgloss.Color("9")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	listStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().Bold(true)
	tagStyle      = lipgloss.NewStyle().Foreground(colorTag)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
	fieldFocusStyle   = fieldStyle.BorderForeground(colorFocus).Foreground(colorFocus)
	fieldEditingStyle = fieldStyle.BorderForeground(colorEditing).Foreground(colorEditing)

	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	statusStyle  = lipgloss.NewStyle().Foreground(colorMuted).PaddingTop(1)
	pendingStyle = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
)
