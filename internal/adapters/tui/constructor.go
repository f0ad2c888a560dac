// Package tui provides the interactive plot view.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/curve/internal/engine/pipeline"
	"go.trai.ch/curve/internal/engine/scheduler"
	"go.trai.ch/curve/internal/ui/output"
)

const (
	prompt       = "f(x) = "
	windowPrompt = "window = "
)

var (
	lenPrompt       = lipgloss.Width(prompt)
	lenWindowPrompt = lipgloss.Width(windowPrompt)
)

// Initial chart size until the first WindowSizeMsg arrives.
const (
	initialWidth  = 80
	initialHeight = 24
)

// NewModel creates the plot view around controller, which must render into
// screen and post its deferred redraws to queue.
func NewModel(w io.Writer, controller *pipeline.Controller, queue *scheduler.Queue, screen *Screen) *Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "x**2, sin(x), exp(x), log(x)"
	input.PromptStyle = focusedPromptStyle
	input.SetValue(controller.State().Expression)
	input.Focus()

	windowInput := textinput.New()
	windowInput.Prompt = windowPrompt
	windowInput.Placeholder = "x_min,x_max,y_min,y_max"
	windowInput.PromptStyle = focusedPromptStyle

	m := &Model{
		Controller:  controller,
		Queue:       queue,
		Screen:      screen,
		Input:       input,
		WindowInput: windowInput,
		Help:        help.New(),
		Keys:        DefaultKeyMap(),
		Focus:       FocusInput,
	}
	m.resize(initialWidth, initialHeight)
	return m
}
