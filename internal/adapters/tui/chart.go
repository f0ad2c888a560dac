package tui

import (
	"math"
	"strconv"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/curve/internal/core/domain"
)

// Braille cells hold a 2x4 dot matrix.
const (
	dotsPerCellX = 2
	dotsPerCellY = 4
)

// gapFactor is how much wider than the smallest spacing a step between two
// neighbouring points may be before the curve is broken there.
const gapFactor = 1.5

// Chart draws frames as braille line charts. It only rasterizes again when
// the frame or the size changes.
type Chart struct {
	linechart.Model

	frame       *domain.Frame
	fingerprint uint64
	stale       bool
	rasterized  int
}

// NewChart creates a chart of width x height cells.
func NewChart(width, height int) *Chart {
	w := domain.DefaultWindow()
	c := &Chart{
		Model: linechart.New(width, height, w.XMin, w.XMax, w.YMin, w.YMax,
			linechart.WithXYSteps(4, 4),
		),
		stale: true,
	}
	c.AxisStyle = axisStyle
	c.LabelStyle = labelStyle
	c.XLabelFormatter = tickLabel
	c.YLabelFormatter = tickLabel
	return c
}

func tickLabel(_ int, v float64) string {
	if math.Abs(v) < 1e-9 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 3, 64)
}

// Resize changes the chart size in cells.
func (c *Chart) Resize(width, height int) {
	if c.Width() == width && c.Height() == height {
		return
	}
	c.Model.Resize(width, height)
	c.stale = true
}

// Surface returns the plotting area in braille dots.
func (c *Chart) Surface() (widthPx, heightPx int) {
	return c.GraphWidth() * dotsPerCellX, c.GraphHeight() * dotsPerCellY
}

// GraphOrigin returns the cell offset of the plotting area's top-left corner
// inside the chart.
func (c *Chart) GraphOrigin() (col, row int) {
	if c.YStep() > 0 {
		col = c.Origin().X + 1
	}
	return col, 0
}

// SetFrame replaces the displayed frame. It reports whether the chart has to
// be rasterized again.
func (c *Chart) SetFrame(frame domain.Frame) bool {
	fp := frame.Fingerprint()
	if c.frame != nil && fp == c.fingerprint && !c.stale {
		return false
	}
	c.frame = &frame
	c.fingerprint = fp
	c.stale = true
	return true
}

// Frame returns the displayed frame.
func (c *Chart) Frame() (domain.Frame, bool) {
	if c.frame == nil {
		return domain.Frame{}, false
	}
	return *c.frame, true
}

// Reset removes the displayed curve.
func (c *Chart) Reset() {
	c.frame = nil
	c.fingerprint = 0
	c.stale = true
}

// Rasterized returns how often the chart was drawn.
func (c *Chart) Rasterized() int {
	return c.rasterized
}

// View draws the chart if needed and returns it.
func (c *Chart) View() string {
	if c.stale {
		c.draw()
		c.stale = false
		c.rasterized++
	}
	return c.Model.View()
}

func (c *Chart) draw() {
	w := domain.DefaultWindow()
	if c.frame != nil {
		w = c.frame.Window
	}
	c.SetXRange(w.XMin, w.XMax)
	c.SetYRange(w.YMin, w.YMax)
	c.SetViewXRange(w.XMin, w.XMax)
	c.SetViewYRange(w.YMin, w.YMax)

	c.Clear()
	c.DrawXYAxisAndLabel()

	if c.frame == nil || c.frame.Len() == 0 || c.GraphWidth() <= 0 || c.GraphHeight() <= 0 {
		return
	}

	gw, gh := float64(c.GraphWidth()), float64(c.GraphHeight())
	grid := graph.NewBrailleGrid(c.GraphWidth(), c.GraphHeight(), 0, gw, 0, gh)

	scaleX := gw / w.XSpan()
	scaleY := gh / w.YSpan()
	toGrid := func(x, y float64) canvas.Point {
		return grid.GridPoint(canvas.Float64Point{X: (x - w.XMin) * scaleX, Y: (y - w.YMin) * scaleY})
	}

	xs, ys := c.frame.X, c.frame.Y
	maxStep := minSpacing(xs) * gapFactor
	for i := range xs {
		if i == 0 || xs[i]-xs[i-1] > maxStep {
			if inside(w, xs[i], ys[i]) {
				grid.Set(toGrid(xs[i], ys[i]))
			}
			continue
		}
		x1, y1, x2, y2, ok := clip(w, xs[i-1], ys[i-1], xs[i], ys[i])
		if !ok {
			continue
		}
		for _, p := range graph.GetLinePoints(toGrid(x1, y1), toGrid(x2, y2)) {
			grid.Set(p)
		}
	}

	col, row := c.GraphOrigin()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.frame.Color))
	graph.DrawBraillePatterns(&c.Canvas, canvas.Point{X: col, Y: row}, grid.BraillePatterns(), style)
}

func inside(w domain.Window, x, y float64) bool {
	return x >= w.XMin && x <= w.XMax && y >= w.YMin && y <= w.YMax
}

// minSpacing returns the smallest positive distance between neighbours.
func minSpacing(xs []float64) float64 {
	best := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		if d := xs[i] - xs[i-1]; d > 0 && d < best {
			best = d
		}
	}
	return best
}

// clip cuts the segment to the window with the Liang-Barsky algorithm.
func clip(w domain.Window, x1, y1, x2, y2 float64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x1 - w.XMin},
		{dx, w.XMax - x1},
		{-dy, y1 - w.YMin},
		{dy, w.YMax - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	if math.IsNaN(t0) || math.IsNaN(t1) {
		return 0, 0, 0, 0, false
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}
