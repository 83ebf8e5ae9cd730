// Package render formats entries, analytics and support resources for the terminal.
package render

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(14)

	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	// heat levels 0 (no data) through 5
	heatColors = []lipgloss.Color{"237", "52", "94", "100", "34", "46"}
)

func heatStyle(level int) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(heatColors[level]).
		Foreground(lipgloss.Color("255")).
		Width(3).
		Align(lipgloss.Right)
}
