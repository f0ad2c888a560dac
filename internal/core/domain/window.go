package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Window is the visible plot rectangle in plot coordinates.
type Window struct {
	XMin float64 `json:"x_min" yaml:"x_min"`
	XMax float64 `json:"x_max" yaml:"x_max"`
	YMin float64 `json:"y_min" yaml:"y_min"`
	YMax float64 `json:"y_max" yaml:"y_max"`
}

// DefaultWindow returns the window shown on startup and after a reset.
func DefaultWindow() Window {
	return Window{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
}

// Valid reports whether all bounds are finite and both spans are positive.
func (w Window) Valid() bool {
	for _, v := range [...]float64{w.XMin, w.XMax, w.YMin, w.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return w.XMax > w.XMin && w.YMax > w.YMin
}

// XSpan returns the width of the window.
func (w Window) XSpan() float64 { return w.XMax - w.XMin }

// YSpan returns the height of the window.
func (w Window) YSpan() float64 { return w.YMax - w.YMin }

// Pan shifts all four bounds. The receiver is returned unchanged with ok=false
// when the shifted window is not valid.
func (w Window) Pan(dx, dy float64) (Window, bool) {
	next := Window{
		XMin: w.XMin + dx,
		XMax: w.XMax + dx,
		YMin: w.YMin + dy,
		YMax: w.YMax + dy,
	}
	if !next.Valid() {
		return w, false
	}
	return next, true
}

// Zoom scales the window around an anchor given as ratios of the visible
// area. A positive factor zooms in, a negative one zooms out. The anchor
// ratios are clamped to [0, 1].
// The zoom is rejected when either resulting span would not exceed minSpan.
func (w Window) Zoom(factor, anchorX, anchorY, minSpan float64) (Window, bool) {
	anchorX = clamp01(anchorX)
	anchorY = clamp01(anchorY)

	xZoom := w.XSpan() * factor
	yZoom := w.YSpan() * factor

	next := Window{
		XMin: w.XMin + xZoom*anchorX,
		XMax: w.XMax - xZoom*(1-anchorX),
		YMin: w.YMin + yZoom*anchorY,
		YMax: w.YMax - yZoom*(1-anchorY),
	}
	return w.accept(next, minSpan)
}

// Inset moves every bound inward by step. A negative step grows the window.
// The change is rejected when either resulting span would not exceed minSpan.
func (w Window) Inset(step, minSpan float64) (Window, bool) {
	next := Window{
		XMin: w.XMin + step,
		XMax: w.XMax - step,
		YMin: w.YMin + step,
		YMax: w.YMax - step,
	}
	return w.accept(next, minSpan)
}

func (w Window) accept(next Window, minSpan float64) (Window, bool) {
	if !next.Valid() || next.XSpan() <= minSpan || next.YSpan() <= minSpan {
		return w, false
	}
	return next, true
}

// DragDelta converts a pointer drag in pixels into a pan delta in plot units.
// Dragging right moves the view left; dragging down moves the view up.
func (w Window) DragDelta(dxPx, dyPx, widthPx, heightPx int) (dx, dy float64) {
	if widthPx > 0 {
		dx = -(float64(dxPx) / float64(widthPx)) * w.XSpan()
	}
	if heightPx > 0 {
		dy = (float64(dyPx) / float64(heightPx)) * w.YSpan()
	}
	return dx, dy
}

// String formats the window as "[x_min, x_max] x [y_min, y_max]".
func (w Window) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", w.XMin, w.XMax, w.YMin, w.YMax)
}

// ParseWindow parses "x_min,x_max,y_min,y_max".
func ParseWindow(s string) (Window, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Window{}, zerr.With(zerr.Wrap(ErrInvalidWindow, "expected x_min,x_max,y_min,y_max"), "window", s)
	}

	var bounds [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Window{}, zerr.With(zerr.Wrap(ErrInvalidWindow, err.Error()), "window", s)
		}
		bounds[i] = v
	}

	w := Window{XMin: bounds[0], XMax: bounds[1], YMin: bounds[2], YMax: bounds[3]}
	if !w.Valid() {
		return Window{}, zerr.With(zerr.Wrap(ErrInvalidWindow, "bounds out of order"), "window", s)
	}
	return w, nil
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0.5
	}
	return math.Max(0, math.Min(1, v))
}
