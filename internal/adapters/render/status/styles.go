package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	state   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	warning lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		state:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
