// Package style holds the colors and symbols shared by the logger and the
// plot views.
package style

import "github.com/charmbracelet/lipgloss"

// Brand colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Level and notice symbols.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)
