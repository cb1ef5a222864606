package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	help    lipgloss.Style
	answer  lipgloss.Style
	failure lipgloss.Style
	loading lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		answer:  lipgloss.NewStyle().PaddingLeft(1),
		failure: lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("203")),
		loading: lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("245")),
	}
}
