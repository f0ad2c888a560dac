package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/engine/pipeline"
	"go.trai.ch/curve/internal/engine/scheduler"
)

// Rows used by everything except the chart: title, input, status and help.
const (
	headerHeight = 2
	footerHeight = 2

	minChartWidth  = 20
	minChartHeight = 6
)

// Focus selects which part of the view receives key presses.
type Focus int

const (
	// FocusInput sends keys to the expression input.
	FocusInput Focus = iota
	// FocusChart sends keys to the navigation bindings.
	FocusChart
	// FocusWindow sends keys to the window input.
	FocusWindow
)

// ConfigReloadedMsg carries a config file that changed on disk.
type ConfigReloadedMsg struct {
	Config *domain.Config
}

// ConfigFailedMsg reports a config file that changed but could not be loaded.
type ConfigFailedMsg struct {
	Err error
}

// Model is the Bubble Tea model of the plot view.
type Model struct {
	Controller  *pipeline.Controller
	Queue       *scheduler.Queue
	Screen      *Screen
	Input       textinput.Model
	WindowInput textinput.Model
	Help        help.Model
	Keys        KeyMap
	Focus       Focus
	Width       int
	Height      int
	Status      string

	dragging   bool
	dragX      int
	dragY      int
	idlePosted bool
}

// Init plots the initial expression, if any.
func (m *Model) Init() tea.Cmd {
	if strings.TrimSpace(m.Input.Value()) != "" {
		m.plot(m.Input.Value())
	}
	return tea.Batch(textinput.Blink, m.drain())
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per message type
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case idleMsg:
		m.idlePosted = false
		m.Queue.RunIdle()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)

	case ConfigFailedMsg:
		m.Status = "config reload failed: " + msg.Err.Error()

	default:
		m.Input, cmd = m.Input.Update(msg)
	}

	return m, tea.Batch(cmd, m.drain())
}

// drain schedules an idle pass when callbacks are waiting.
func (m *Model) drain() tea.Cmd {
	if m.Queue.Len() == 0 || m.idlePosted {
		return nil
	}
	m.idlePosted = true
	return idle
}

func (m *Model) resize(width, height int) {
	m.Width, m.Height = width, height
	m.Input.Width = max(width-lenPrompt-1, 1)
	m.WindowInput.Width = max(width-lenWindowPrompt-1, 1)
	m.Help.Width = width

	chart := m.Screen.Chart()
	chart.Resize(max(width, minChartWidth), max(height-headerHeight-footerHeight, minChartHeight))
	m.Controller.SetSurface(chart.Surface())

	if _, ok := chart.Frame(); ok {
		m.Controller.Redraw(true)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.ForceQuit):
		return tea.Quit
	case m.Focus == FocusWindow:
		return m.handleWindowKey(msg)
	case key.Matches(msg, m.Keys.Focus):
		m.toggleFocus()
		return nil
	case key.Matches(msg, m.Keys.Dismiss):
		if !m.Screen.Dismiss() && m.Focus == FocusInput {
			m.toggleFocus()
		}
		return nil
	case key.Matches(msg, m.Keys.Plot):
		m.plot(m.Input.Value())
		return nil
	}

	if m.Focus == FocusInput {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.Keys.Up):
		m.Controller.Move(domain.DirectionUp)
	case key.Matches(msg, m.Keys.Down):
		m.Controller.Move(domain.DirectionDown)
	case key.Matches(msg, m.Keys.Left):
		m.Controller.Move(domain.DirectionLeft)
	case key.Matches(msg, m.Keys.Right):
		m.Controller.Move(domain.DirectionRight)
	case key.Matches(msg, m.Keys.ZoomIn):
		if !m.Controller.ZoomIn() {
			m.Status = "zoom limit reached"
		}
	case key.Matches(msg, m.Keys.ZoomOut):
		m.Controller.ZoomOut()
	case key.Matches(msg, m.Keys.Window):
		return m.editWindow()
	case key.Matches(msg, m.Keys.Reset):
		m.Controller.Reset()
	case key.Matches(msg, m.Keys.Clear):
		m.Input.SetValue("")
		m.Controller.Clear()
		m.Status = "cleared"
	case key.Matches(msg, m.Keys.NextColor):
		name := m.Controller.SelectNextColor()
		m.Status = "color " + name
		if _, ok := m.Screen.Chart().Frame(); ok {
			m.Controller.Redraw(true)
		}
	}
	return nil
}

func (m *Model) handleWindowKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Plot):
		m.applyWindow(m.WindowInput.Value())
		return nil
	case key.Matches(msg, m.Keys.Dismiss):
		if !m.Screen.Dismiss() {
			m.closeWindow()
		}
		return nil
	}
	var cmd tea.Cmd
	m.WindowInput, cmd = m.WindowInput.Update(msg)
	return cmd
}

// editWindow opens the window input prefilled with the current window.
func (m *Model) editWindow() tea.Cmd {
	w := m.Controller.State().Window
	m.WindowInput.SetValue(fmt.Sprintf("%g,%g,%g,%g", w.XMin, w.XMax, w.YMin, w.YMax))
	m.WindowInput.CursorEnd()
	m.Focus = FocusWindow
	return m.WindowInput.Focus()
}

func (m *Model) closeWindow() {
	m.WindowInput.Blur()
	m.Focus = FocusChart
}

// applyWindow keeps the input open when value is rejected so it can be
// corrected.
func (m *Model) applyWindow(value string) {
	w, err := domain.ParseWindow(value)
	if err == nil {
		err = m.Controller.SetWindow(w)
	}
	if err != nil {
		m.Screen.ReportError(err)
		m.Status = "window rejected"
		return
	}

	m.Screen.Dismiss()
	m.closeWindow()
	m.Status = "window " + w.String()
	if strings.TrimSpace(m.Controller.State().Expression) != "" {
		m.Controller.Redraw(true)
	}
}

func (m *Model) toggleFocus() {
	if m.Focus == FocusInput {
		m.Focus = FocusChart
		m.Input.Blur()
		m.Input.PromptStyle = blurredPromptStyle
		return
	}
	m.Focus = FocusInput
	m.Input.Focus()
	m.Input.PromptStyle = focusedPromptStyle
}

func (m *Model) plot(expr string) {
	m.Controller.SetExpression(expr)
	if err := m.Controller.Plot(); err != nil {
		m.Screen.ReportError(err)
		m.Status = "plot failed"
		return
	}
	m.Screen.Dismiss()
	m.Status = "plotted " + strings.TrimSpace(expr)
}

// graphCell converts screen coordinates to a cell inside the plotting area.
func (m *Model) graphCell(x, y int) (col, row int, ok bool) {
	chart := m.Screen.Chart()
	left, top := chart.GraphOrigin()
	col = x - left
	row = y - headerHeight - top
	ok = col >= 0 && col < chart.GraphWidth() && row >= 0 && row < chart.GraphHeight()
	return col, row, ok
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	chart := m.Screen.Chart()
	col, row, inside := m.graphCell(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if !inside || msg.Action != tea.MouseActionPress {
			return
		}
		w, h := float64(chart.GraphWidth()), float64(chart.GraphHeight())
		ax := float64(col) / w
		ay := (h - float64(row)) / h
		m.Controller.ScrollZoom(msg.Button == tea.MouseButtonWheelUp, ax, ay)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inside {
			m.dragging = true
			m.dragX, m.dragY = msg.X, msg.Y
		}

	case msg.Action == tea.MouseActionMotion && m.dragging:
		state := m.Controller.State()
		dx, dy := state.Window.DragDelta(msg.X-m.dragX, msg.Y-m.dragY, chart.GraphWidth(), chart.GraphHeight())
		m.dragX, m.dragY = msg.X, msg.Y
		if dx != 0 || dy != 0 {
			m.Controller.Pan(dx, dy)
		}

	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		m.Controller.Redraw(true)
	}
}

func (m *Model) applyConfig(cfg *domain.Config) {
	m.Controller.SetColor(cfg.Color)
	m.Status = "config reloaded"

	expr := strings.TrimSpace(cfg.Expression)
	if expr != "" && expr != strings.TrimSpace(m.Controller.State().Expression) {
		m.Input.SetValue(cfg.Expression)
		m.plot(cfg.Expression)
		m.Status = "config reloaded, plotted " + expr
		return
	}
	if _, ok := m.Screen.Chart().Frame(); ok {
		m.Controller.Redraw(true)
	}
}

func (m *Model) statusLine() string {
	state := m.Controller.State()
	stats := m.Controller.Stats()
	line := fmt.Sprintf("%s  %s  cache %d/%d  renders %d",
		state.Window, state.ColorName, stats.Cache.Hits, stats.Cache.Hits+stats.Cache.Misses, stats.Renders)
	if m.Status != "" {
		line += "  " + m.Status
	}
	return line
}
