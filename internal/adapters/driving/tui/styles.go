package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-configured lipgloss styles for the picker and preview.
type Styles struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Picker    lipgloss.Style
	Preview   lipgloss.Style
	StatusBar lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	border := lipgloss.Color("#45475A")

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),
		Picker: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Preview: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")).
			Padding(0, 1),
	}
}
