package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the key bindings of the plot view.
type KeyMap struct {
	Plot      key.Binding
	Focus     key.Binding
	Dismiss   key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Wheel     key.Binding
	Window    key.Binding
	Reset     key.Binding
	Clear     key.Binding
	NextColor key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default bindings. Wheel only documents the
// mouse wheel in the help; no key press matches it.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Plot:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "plot")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Wheel:     key.NewBinding(key.WithKeys("wheel"), key.WithHelp("wheel ↑/↓", "zoom in/out")),
		Window:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "window")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		NextColor: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "color")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Plot, k.ZoomIn, k.ZoomOut, k.Wheel, k.Window, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ZoomIn, k.ZoomOut, k.Wheel, k.Window, k.Reset},
		{k.Plot, k.Clear, k.NextColor},
		{k.Focus, k.Dismiss, k.Quit},
	}
}
