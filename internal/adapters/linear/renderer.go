// Package linear renders plots as plain text for pipes, CI logs and scripts.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
	"go.trai.ch/curve/internal/ui/notice"
	"go.trai.ch/curve/internal/ui/output"
	"go.trai.ch/curve/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Format selects what Flush writes.
type Format int

const (
	// FormatChart writes a character-cell chart.
	FormatChart Format = iota
	// FormatTable writes one x/y row per point.
	FormatTable
	// FormatJSON writes a single JSON document.
	FormatJSON
)

const (
	// DefaultWidth is the chart width in cells.
	DefaultWidth = 72
	// DefaultHeight is the chart height in cells.
	DefaultHeight = 20
)

// Renderer implements ports.Renderer by keeping the latest frame and writing
// it on Flush. Errors go to stderr immediately.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output
	errOut *termenv.Output
	format Format
	width  int
	height int
	last   *domain.Frame
}

// NewRenderer creates a Renderer whose color profile follows NO_COLOR.
func NewRenderer(stdout, stderr io.Writer, format Format) *Renderer {
	return NewRendererWithProfile(stdout, stderr, format, output.ColorProfileANSI())
}

// NewRendererWithProfile creates a Renderer using profile for both streams.
func NewRendererWithProfile(stdout, stderr io.Writer, format Format, profile termenv.Profile) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: termenv.NewOutput(stdout, termenv.WithProfile(profile)),
		errOut: termenv.NewOutput(stderr, termenv.WithProfile(profile)),
		format: format,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// SetSize sets the chart size in cells. Values below 2 are ignored.
func (r *Renderer) SetSize(width, height int) {
	if width >= 2 {
		r.width = width
	}
	if height >= 2 {
		r.height = height
	}
}

// Size returns the chart size in cells.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Draw replaces the pending frame.
func (r *Renderer) Draw(frame domain.Frame) {
	r.last = &frame
}

// Clear drops the pending frame.
func (r *Renderer) Clear() {
	r.last = nil
}

// ReportError writes the notice for err to stderr.
func (r *Renderer) ReportError(err error) {
	n := notice.FromError(err)
	symbol := r.errOut.String(style.Cross).Foreground(termenv.ANSIRed).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", symbol, n.Title)
	for line := range strings.SplitSeq(n.Body, "\n") {
		_, _ = fmt.Fprintf(r.stderr, "  %s\n", line)
	}
}

// Frame returns the pending frame, if any.
func (r *Renderer) Frame() (domain.Frame, bool) {
	if r.last == nil {
		return domain.Frame{}, false
	}
	return *r.last, true
}

// Flush writes the pending frame to stdout in the configured format. It
// writes nothing when no frame was drawn.
func (r *Renderer) Flush() error {
	if r.last == nil {
		return nil
	}
	switch r.format {
	case FormatTable:
		return WriteTable(r.stdout, *r.last)
	case FormatJSON:
		return WriteJSON(r.stdout, *r.last)
	default:
		return r.writeChart(*r.last)
	}
}
