package cmd

import "github.com/charmbracelet/lipgloss"

// Centralized styles for the tide panel.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 2)
	highStyle    = lipgloss.NewStyle().Bold(true)
	lowStyle     = lipgloss.NewStyle().Faint(true)
	heightStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	markerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	risingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	fallingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	sunStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	infoStyle    = lipgloss.NewStyle().Faint(true)
)
