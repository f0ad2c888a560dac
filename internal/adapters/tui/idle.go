package tui

import tea "github.com/charmbracelet/bubbletea"

// idleMsg drains the idle queue. It is delivered after every message that
// was already waiting, so a burst of drag or wheel events is handled before
// the deferred redraw runs.
type idleMsg struct{}

func idle() tea.Msg {
	return idleMsg{}
}
