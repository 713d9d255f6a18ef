package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	Card      lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	StatusBar lipgloss.Style

	OnTrack   lipgloss.Style
	AtRisk    lipgloss.Style
	Delayed   lipgloss.Style
	Completed lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Title:     lipgloss.NewStyle().Bold(true),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1),

		OnTrack:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		AtRisk:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Delayed:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

func (s Styles) statusStyle(status string) lipgloss.Style {
	switch status {
	case "On Track":
		return s.OnTrack
	case "At Risk":
		return s.AtRisk
	case "Delayed":
		return s.Delayed
	case "Completed":
		return s.Completed
	}
	return s.Muted
}
