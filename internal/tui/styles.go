package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	colorAccent = lipgloss.Color("63")
	colorMuted  = lipgloss.Color("241")
	colorBorder = lipgloss.Color("238")
	colorError  = lipgloss.Color("160")
	colorValue  = lipgloss.Color("86")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	// TitleStyle renders the application name in the header.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// SubtleStyle renders secondary text such as the tagline and help.
	SubtleStyle = lipgloss.NewStyle().Foreground(colorMuted)

	// HeaderStyle renders a payload's title.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	// SectionStyle renders an article section title.
	SectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// LabelStyle renders item labels.
	LabelStyle = lipgloss.NewStyle().Bold(true)

	// ValueStyle renders numeric values.
	ValueStyle = lipgloss.NewStyle().Foreground(colorValue)

	// InfoStyle renders transient notices such as the loading line.
	InfoStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	// ErrorStyle renders fetch failures.
	ErrorStyle = lipgloss.NewStyle().Foreground(colorError)

	// TabStyle renders an inactive tab.
	TabStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)

	// ActiveTabStyle renders the selected tab.
	ActiveTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)

	// BoxStyle frames the main content panel.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// TableHeaderStyle renders holdings table headers.
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	// TableCellStyle renders holdings table cells.
	TableCellStyle = lipgloss.NewStyle().Padding(0, 1)

	// TableTotalStyle renders the holdings total row.
	TableTotalStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)
