package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the title, the input, the chart, the status line and help.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("curve"))
	b.WriteByte('\n')
	if m.Focus == FocusWindow {
		b.WriteString(m.WindowInput.View())
	} else {
		b.WriteString(m.Input.View())
	}
	b.WriteByte('\n')

	chart := m.Screen.Chart().View()
	if n, ok := m.Screen.Notice(); ok {
		box := noticeStyle.Render(failureTitleStyle.Render(n.Title) + "\n\n" + n.Body)
		chart = centerOverlay(chart, box)
	}
	b.WriteString(chart)
	b.WriteByte('\n')

	status := m.statusLine()
	if m.Width > 0 {
		status = lipgloss.NewStyle().MaxWidth(m.Width).Render(status)
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteByte('\n')
	b.WriteString(m.Help.View(m.Keys))

	return b.String()
}
