package tui

import "github.com/charmbracelet/lipgloss"

var (
	quoteStyle  = lipgloss.NewStyle().Bold(true).Italic(true)
	authorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	buttonStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	copiedStyle = buttonStyle.BorderForeground(lipgloss.Color("42")).Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(1, 2)
)

const (
	loadingText = "Loading…"

	refreshLabel = "🔄 New quote"
	copyLabel    = "📋 Copy"
	copiedLabel  = "✅ Copied"
	shareLabel   = "🔗 Share"
)
