// Package pipeline owns the view state and drives the sample, filter and draw
// passes in response to navigation input.
package pipeline

import (
	"context"
	"strings"

	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
	"go.trai.ch/curve/internal/engine/filter"
	"go.trai.ch/curve/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// Stats summarizes pipeline activity for status displays.
type Stats struct {
	Cache ports.CacheStats
	// Renders counts explicit plots and scheduled render passes.
	Renders int
	Pending bool
}

// Controller is the entry point for every UI event. It is not safe for
// concurrent use; the host calls it from its event loop only.
type Controller struct {
	settings  domain.Settings
	state     domain.ViewState
	compiler  ports.Compiler
	cache     ports.SampleCache
	renderer  ports.Renderer
	tracer    ports.Tracer
	logger    ports.Logger
	scheduler *scheduler.Scheduler

	widthPx  int
	heightPx int
	drawn    bool
	plots    int
}

// New creates a Controller showing the settings' initial window. compiler
// should be the same memoized compiler the cache samples through.
func New(
	settings domain.Settings,
	compiler ports.Compiler,
	cache ports.SampleCache,
	renderer ports.Renderer,
	queue ports.IdleQueue,
	tracer ports.Tracer,
	logger ports.Logger,
) *Controller {
	c := &Controller{
		settings: settings,
		state: domain.ViewState{
			Window:    settings.Window,
			ColorName: domain.DefaultColorName(),
		},
		compiler: compiler,
		cache:    cache,
		renderer: renderer,
		tracer:   tracer,
		logger:   logger,
	}
	c.scheduler = scheduler.New(queue, c.renderPass)
	return c
}

// SetExpression stores the expression text without drawing.
func (c *Controller) SetExpression(expr string) {
	c.state.Expression = expr
}

// Plot compiles the current expression and draws it through a full
// recomputation. Any error leaves the window and the displayed frame as they
// were.
func (c *Controller) Plot() error {
	if strings.TrimSpace(c.state.Expression) == "" {
		return domain.ErrEmptyExpression
	}

	if _, err := c.compiler.Compile(c.state.Expression); err != nil {
		return err
	}

	ctx, span := c.tracer.Start(context.Background(), "render.pass",
		ports.WithAttribute("expression", c.state.Expression),
	)
	defer span.End()

	if err := c.full(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	c.plots++
	return nil
}

// Pan shifts the window by dx, dy plot units and requests a coalesced redraw.
func (c *Controller) Pan(dx, dy float64) {
	next, ok := c.state.Window.Pan(dx, dy)
	if !ok {
		return
	}
	c.state.Window = next
	c.Redraw(false)
}

// Move pans one navigation step and redraws immediately.
func (c *Controller) Move(dir domain.Direction) {
	step := c.settings.MoveStep
	var dx, dy float64
	switch dir {
	case domain.DirectionUp:
		dy = step
	case domain.DirectionDown:
		dy = -step
	case domain.DirectionLeft:
		dx = -step
	case domain.DirectionRight:
		dx = step
	}

	next, ok := c.state.Window.Pan(dx, dy)
	if !ok {
		return
	}
	c.state.Window = next
	c.Redraw(true)
}

// Zoom zooms around the anchor ratios ax, ay. A positive factor zooms in.
// It reports whether the zoom was applied; a rejected zoom changes nothing.
func (c *Controller) Zoom(factor, ax, ay float64) bool {
	next, ok := c.state.Window.Zoom(factor, ax, ay, c.settings.MinSpan)
	if !ok {
		return false
	}
	c.state.Window = next
	c.Redraw(false)
	return true
}

// ZoomIn moves every bound inward by the zoom step and redraws immediately.
func (c *Controller) ZoomIn() bool {
	return c.inset(c.settings.ZoomStep)
}

// ZoomOut moves every bound outward by the zoom step and redraws immediately.
func (c *Controller) ZoomOut() bool {
	return c.inset(-c.settings.ZoomStep)
}

func (c *Controller) inset(step float64) bool {
	next, ok := c.state.Window.Inset(step, c.settings.MinSpan)
	if !ok {
		return false
	}
	c.state.Window = next
	c.Redraw(true)
	return true
}

// ScrollZoom zooms one wheel notch around the anchor. It does nothing while
// no expression is set.
func (c *Controller) ScrollZoom(in bool, ax, ay float64) bool {
	if strings.TrimSpace(c.state.Expression) == "" {
		return false
	}
	factor := c.settings.ScrollZoomFactor
	if !in {
		factor = -factor
	}
	return c.Zoom(factor, ax, ay)
}

// SetWindow replaces the window. It does not redraw.
func (c *Controller) SetWindow(w domain.Window) error {
	if !w.Valid() {
		return zerr.With(zerr.Wrap(domain.ErrInvalidWindow, "window rejected"), "window", w.String())
	}
	c.state.Window = w
	return nil
}

// Reset restores the initial window and redraws when an expression is set.
func (c *Controller) Reset() {
	c.state.Window = c.settings.Window
	if strings.TrimSpace(c.state.Expression) != "" {
		c.Redraw(true)
	}
}

// Clear drops the expression and clears the display.
func (c *Controller) Clear() {
	c.state.Expression = ""
	c.drawn = false
	c.renderer.Clear()
}

// SetColor selects the curve color by palette name. Unknown names draw in
// the first palette color.
func (c *Controller) SetColor(name string) {
	c.state.ColorName = name
}

// SelectNextColor cycles to the next palette color and returns its name.
func (c *Controller) SelectNextColor() string {
	c.state.ColorName = domain.NextColorName(c.state.ColorName)
	return c.state.ColorName
}

// Redraw requests a render pass. Without force the request is deferred and
// merged with other pending requests.
func (c *Controller) Redraw(force bool) {
	c.scheduler.Request(force)
}

// SetSurface sets the drawing area size in pixels. The width bounds the
// number of points per frame.
func (c *Controller) SetSurface(widthPx, heightPx int) {
	c.widthPx = widthPx
	c.heightPx = heightPx
}

// Surface returns the drawing area size in pixels.
func (c *Controller) Surface() (widthPx, heightPx int) {
	return c.widthPx, c.heightPx
}

// State returns a copy of the view state.
func (c *Controller) State() domain.ViewState {
	return c.state
}

// Settings returns the tunables the controller was created with.
func (c *Controller) Settings() domain.Settings {
	return c.settings
}

// Stats returns the cache counters and the scheduler state.
func (c *Controller) Stats() Stats {
	return Stats{
		Cache:   c.cache.Stats(),
		Renders: c.scheduler.Renders() + c.plots,
		Pending: c.scheduler.Pending(),
	}
}

// renderPass runs when the scheduler fires.
func (c *Controller) renderPass() {
	if strings.TrimSpace(c.state.Expression) == "" {
		return
	}

	ctx, span := c.tracer.Start(context.Background(), "render.pass",
		ports.WithAttribute("expression", c.state.Expression),
	)
	defer span.End()

	if c.drawn {
		err := c.optimized(ctx, span)
		if err == nil {
			return
		}
		c.logger.Debug("optimized render failed, falling back", "error", err.Error())
	}

	if err := c.full(ctx, span); err != nil {
		span.RecordError(err)
		c.renderer.ReportError(err)
	}
}

// optimized reuses the cached samples and draws a padded range.
func (c *Controller) optimized(ctx context.Context, span ports.Span) error {
	before := c.cache.Stats().Recomputes
	set, err := c.cache.Get(ctx, c.state.Expression, c.state.Window.XMin, c.state.Window.XMax)
	if err != nil {
		return err
	}
	span.SetAttribute("cached", c.cache.Stats().Recomputes == before)
	c.draw(set, true, span)
	return nil
}

// full recomputes the samples for the current window and draws the exact
// range.
func (c *Controller) full(ctx context.Context, span ports.Span) error {
	c.cache.Invalidate()
	set, err := c.cache.Get(ctx, c.state.Expression, c.state.Window.XMin, c.state.Window.XMax)
	if err != nil {
		return err
	}
	span.SetAttribute("cached", false)
	c.draw(set, false, span)
	return nil
}

func (c *Controller) draw(set *domain.SampleSet, pad bool, span ports.Span) {
	w := c.state.Window
	xs, ys := filter.Apply(set.X, set.Y, w.XMin, w.XMax, c.widthPx, pad, c.settings.PadFraction)

	frame := domain.Frame{
		Expression: c.state.Expression,
		X:          xs,
		Y:          ys,
		Color:      c.state.Color(),
		Window:     w,
		Full:       !pad,
	}
	span.SetAttribute("points", frame.Len())
	span.SetAttribute("full", frame.Full)

	c.renderer.Draw(frame)
	c.drawn = true
}
