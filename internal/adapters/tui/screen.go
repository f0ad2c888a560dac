package tui

import (
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
	"go.trai.ch/curve/internal/ui/notice"
)

var _ ports.Renderer = (*Screen)(nil)

// Screen is the drawing surface the pipeline renders into. It is owned by the
// Model and only touched from the Bubble Tea update loop.
type Screen struct {
	chart  *Chart
	notice *notice.Notice
	frames int
}

// NewScreen creates a screen with a chart of width x height cells.
func NewScreen(width, height int) *Screen {
	return &Screen{chart: NewChart(width, height)}
}

// Draw shows frame.
func (s *Screen) Draw(frame domain.Frame) {
	s.frames++
	s.chart.SetFrame(frame)
}

// Clear removes the curve and any notice.
func (s *Screen) Clear() {
	s.chart.Reset()
	s.notice = nil
}

// ReportError shows err on top of the current frame.
func (s *Screen) ReportError(err error) {
	n := notice.FromError(err)
	s.notice = &n
}

// Dismiss hides the notice. It reports whether one was shown.
func (s *Screen) Dismiss() bool {
	if s.notice == nil {
		return false
	}
	s.notice = nil
	return true
}

// Notice returns the shown notice.
func (s *Screen) Notice() (notice.Notice, bool) {
	if s.notice == nil {
		return notice.Notice{}, false
	}
	return *s.notice, true
}

// Frames returns how many frames were drawn.
func (s *Screen) Frames() int {
	return s.frames
}

// Chart returns the chart the screen draws into.
func (s *Screen) Chart() *Chart {
	return s.chart
}
