package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header text.
const (
	appTitle   = "ProfitPlug"
	appTagline = "Your simple finance helper"
	loadingMsg = "Loading…"
)

// Vertical space taken by everything except the viewport: header (2), blank
// line, tab bar, blank line, panel border (2).
const chromeHeight = 7

// minViewportHeight keeps the panel usable on very short terminals.
const minViewportHeight = 3

// borderPadding is the horizontal space taken by the panel border and padding.
const borderPadding = 4

// View renders the current view (Bubble Tea interface).
func (m DashboardModel) View() string {
	sections := []string{
		m.renderHeader(),
		"",
		m.renderTabBar(),
		"",
		m.renderPanel(),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderHeader() string {
	return TitleStyle.Render(appTitle) + "\n" + SubtleStyle.Render(appTagline)
}

// renderTabBar renders every tab label, highlighting the active one.
func (m DashboardModel) renderTabBar() string {
	labels := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := TabStyle
		if t.Key == m.state.ActiveTab {
			style = ActiveTabStyle
		}
		labels = append(labels, style.Render(t.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// renderPanel renders the loading line while a cycle is outstanding and the
// settled content otherwise.
func (m DashboardModel) renderPanel() string {
	var body string
	switch m.state.Phase {
	case PhaseLoading:
		body = m.spinner.View() + " " + InfoStyle.Render(loadingMsg)
	case PhaseSettled:
		body = m.viewport.View()
	case PhaseIdle:
	}
	return BoxStyle.
		Width(m.panelWidth()).
		Height(m.viewport.Height).
		Render(body)
}

func (m DashboardModel) panelWidth() int {
	return max(m.width-2, 0) //nolint:mnd // Border columns.
}

// resize fits the viewport to the terminal, leaving room for the chrome and
// the help footer.
func (m *DashboardModel) resize() {
	helpHeight := strings.Count(m.help.View(m.keys), "\n") + 1
	m.help.Width = m.width

	m.viewport.Width = max(m.width-borderPadding, 1)
	m.viewport.Height = max(m.height-chromeHeight-helpHeight, minViewportHeight)
}
