package ui

import "github.com/charmbracelet/lipgloss"

// Styles.
var (
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	gainStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	chartStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	busyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)
