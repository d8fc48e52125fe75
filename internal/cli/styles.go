// Package cli holds the terminal styling shared by the prepd commands.
package cli

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, readable on dark terminals
var (
	Primary = lipgloss.Color("#8B5CF6") // Violet
	Success = lipgloss.Color("#22C55E") // Green
	Warn    = lipgloss.Color("#EAB308") // Amber
	Danger  = lipgloss.Color("#F43F5E") // Rose
	Info    = lipgloss.Color("#14B8A6") // Teal
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Danger).
		Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// UrgencyStyle maps a revision urgency label onto its color.
func UrgencyStyle(urgency string) lipgloss.Style {
	switch urgency {
	case "critical":
		return lipgloss.NewStyle().Foreground(Danger).Bold(true)
	case "high":
		return lipgloss.NewStyle().Foreground(Warn).Bold(true)
	case "medium":
		return lipgloss.NewStyle().Foreground(Info)
	default:
		return lipgloss.NewStyle().Foreground(TextDim)
	}
}

// LevelStyle maps a mastery level (1-4) onto its color.
func LevelStyle(level int) lipgloss.Style {
	switch level {
	case 4:
		return lipgloss.NewStyle().Foreground(Primary).Bold(true)
	case 3:
		return lipgloss.NewStyle().Foreground(Success)
	case 2:
		return lipgloss.NewStyle().Foreground(Info)
	default:
		return lipgloss.NewStyle().Foreground(TextDim)
	}
}
