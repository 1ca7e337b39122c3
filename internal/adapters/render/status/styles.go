package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title         lipgloss.Style
	header        lipgloss.Style
	label         lipgloss.Style
	value         lipgloss.Style
	missing       lipgloss.Style
	found         lipgloss.Style
	notFound      lipgloss.Style
	scanning      lipgloss.Style
	idle          lipgloss.Style
	section       lipgloss.Style
	empty         lipgloss.Style
	tableHeader   lipgloss.Style
	tableCell     lipgloss.Style
	tableBorder   lipgloss.Style
	severityNone  lipgloss.Style
	severityFound lipgloss.Style
	interaction   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:         lipgloss.NewStyle().Bold(true),
		header:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		missing:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		found:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		notFound:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		scanning:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		idle:          lipgloss.NewStyle().Faint(true),
		section:       lipgloss.NewStyle().MarginTop(1),
		empty:         lipgloss.NewStyle().Faint(true),
		tableHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")).Padding(0, 1),
		tableCell:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		tableBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		severityNone:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		severityFound: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		interaction:   lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	}
}
