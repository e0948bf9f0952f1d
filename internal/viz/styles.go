package viz

import "github.com/charmbracelet/lipgloss"

var (
	// Section heading above a plot or summary block
	Header = lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Bold(true).
		MarginBottom(1)

	// Left-hand label in a key/value row
	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Width(12)

	// Right-hand value in a key/value row
	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	// Plot body
	Graph = lipgloss.NewStyle().
		Foreground(lipgloss.Color("49")).
		Padding(1, 0)

	// Dimmed key hints
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
)
