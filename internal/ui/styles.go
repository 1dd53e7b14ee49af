package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used for reports.

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	regressionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	improvementStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")). // Green
				Bold(true)
)

// Heading styles a report section title.
func Heading(s string) string {
	return headingStyle.Render(s)
}

// Status styles a comparison status word.
func Status(s string) string {
	switch s {
	case StatusRegression:
		return regressionStyle.Render(s)
	case StatusImproved:
		return improvementStyle.Render(s)
	default:
		return s
	}
}

const (
	StatusRegression = "SLOWER"
	StatusImproved   = "FASTER"
	StatusSame       = "SAME"
	StatusNew        = "NEW"
)
