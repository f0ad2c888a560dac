package ports

import "go.trai.ch/curve/internal/core/domain"

// Renderer is the drawing side of the pipeline.
// It decouples the plotting pipeline from presentation,
// so the same frames can drive either the TUI chart or linear text output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Draw replaces the displayed curve with frame.
	Draw(frame domain.Frame)
	// Clear removes the displayed curve.
	Clear()
	// ReportError shows err to the user. The previous frame stays on screen.
	ReportError(err error)
}
