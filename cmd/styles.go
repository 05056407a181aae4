package cmd

import "charm.land/lipgloss/v2"

// Output styling for command results. Kept minimal so output stays
// readable when piped.
var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6")) // Purple

	codeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#14B8A6")) // Teal

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")) // Slate

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316")) // Orange

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#22C55E")) // Green
)
