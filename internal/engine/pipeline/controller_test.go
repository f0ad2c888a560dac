package pipeline_test

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/curve/internal/adapters/cache"
	"go.trai.ch/curve/internal/adapters/compiler"
	"go.trai.ch/curve/internal/adapters/resolver"
	"go.trai.ch/curve/internal/adapters/telemetry"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports/mocks"
	"go.trai.ch/curve/internal/engine/pipeline"
	"go.trai.ch/curve/internal/engine/sampler"
	"go.trai.ch/curve/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type recordingRenderer struct {
	frames []domain.Frame
	clears int
	errs   []error
}

func (r *recordingRenderer) Draw(frame domain.Frame) { r.frames = append(r.frames, frame) }

func (r *recordingRenderer) Clear() { r.clears++ }

func (r *recordingRenderer) ReportError(err error) { r.errs = append(r.errs, err) }

type discardLogger struct{}

func (discardLogger) Debug(string, ...any)  {}
func (discardLogger) Info(string)           {}
func (discardLogger) Warn(string)           {}
func (discardLogger) Error(error)           {}
func (discardLogger) SetOutput(io.Writer)   {}
func (discardLogger) SetJSON(bool)          {}
func (discardLogger) SetLevel(string) error { return nil }

func (r *recordingRenderer) last(t *testing.T) domain.Frame {
	t.Helper()
	require.NotEmpty(t, r.frames)
	return r.frames[len(r.frames)-1]
}

type harness struct {
	ctrl     *pipeline.Controller
	renderer *recordingRenderer
	queue    *scheduler.Queue
	cache    *cache.ViewCache
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	settings := domain.DefaultSettings()
	memo := compiler.NewMemo(compiler.New())
	vc := cache.New(memo, resolver.New(settings.LogEpsilon), sampler.New(settings), settings, telemetry.NewNoOpTracer())
	memo.OnChange(vc.Invalidate)

	r := &recordingRenderer{}
	q := scheduler.NewQueue()
	c := pipeline.New(settings, memo, vc, r, q, telemetry.NewNoOpTracer(), discardLogger{})
	c.SetSurface(800, 400)
	return &harness{ctrl: c, renderer: r, queue: q, cache: vc}
}

func TestPlot_SquareIsSymmetric(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetExpression("x**2")
	require.NoError(t, h.ctrl.Plot())

	frame := h.renderer.last(t)
	assert.True(t, frame.Full)
	assert.Equal(t, domain.DefaultWindow(), frame.Window)
	assert.Equal(t, "#4a9eff", frame.Color)
	require.NotZero(t, frame.Len())
	assert.LessOrEqual(t, frame.Len(), 800)

	assert.InDelta(t, -10.0, frame.X[0], 0.011)
	for i := range frame.X {
		assert.InDelta(t, frame.X[i]*frame.X[i], frame.Y[i], 1e-9)
		assert.GreaterOrEqual(t, frame.X[i], -10.0)
		assert.LessOrEqual(t, frame.X[i], 10.0)
	}

	minIdx := 0
	for i, y := range frame.Y {
		if y < frame.Y[minIdx] {
			minIdx = i
		}
	}
	assert.InDelta(t, 0, frame.X[minIdx], 0.05)
	assert.InDelta(t, 0, frame.Y[minIdx], 0.01)

	// f(x) == f(-x) for every drawn point.
	for i := range frame.X {
		assert.InDelta(t, frame.Y[i], math.Pow(-frame.X[i], 2), 1e-9)
	}
}

func TestPlot_Errors(t *testing.T) {
	t.Run("empty expression", func(t *testing.T) {
		h := newHarness(t)
		h.ctrl.SetExpression("   ")
		err := h.ctrl.Plot()
		require.ErrorIs(t, err, domain.ErrEmptyExpression)
		assert.Empty(t, h.renderer.frames)
	})

	t.Run("invalid expression keeps prior frame", func(t *testing.T) {
		h := newHarness(t)
		h.ctrl.SetExpression("x")
		require.NoError(t, h.ctrl.Plot())

		h.ctrl.SetExpression("x +")
		err := h.ctrl.Plot()
		require.ErrorIs(t, err, domain.ErrInvalidExpression)
		assert.Len(t, h.renderer.frames, 1)
		assert.Equal(t, domain.DefaultWindow(), h.ctrl.State().Window)
	})
}

func TestPan_Coalesces(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetExpression("sin(x)")
	require.NoError(t, h.ctrl.Plot())
	assert.Equal(t, 1, h.ctrl.Stats().Renders)

	h.ctrl.Pan(1, 0)
	h.ctrl.Pan(1, 0)
	h.ctrl.Pan(1, 0)
	assert.True(t, h.ctrl.Stats().Pending)
	assert.Len(t, h.renderer.frames, 1)

	h.queue.RunIdle()
	require.Len(t, h.renderer.frames, 2)
	assert.Equal(t, 2, h.ctrl.Stats().Renders)

	frame := h.renderer.last(t)
	assert.False(t, frame.Full)
	assert.Equal(t, domain.Window{XMin: -7, XMax: 13, YMin: -10, YMax: 10}, frame.Window)

	// The padded path reaches past the window edges.
	assert.Less(t, frame.X[0], -7.0)
	assert.Greater(t, frame.X[len(frame.X)-1], 13.0)
}

func TestZoomIn_ServedFromCache(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetExpression("sin(x)")
	require.NoError(t, h.ctrl.Plot())
	recomputes := h.cache.Stats().Recomputes

	require.True(t, h.ctrl.Zoom(0.5, 0.5, 0.5))
	h.queue.RunIdle()

	frame := h.renderer.last(t)
	assert.Equal(t, domain.Window{XMin: -5, XMax: 5, YMin: -5, YMax: 5}, frame.Window)
	assert.Equal(t, recomputes, h.cache.Stats().Recomputes)
	assert.Equal(t, 1, h.ctrl.Stats().Cache.Hits)
}

func TestMove_Forced(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetExpression("x")
	require.NoError(t, h.ctrl.Plot())

	tests := []struct {
		dir  domain.Direction
		want domain.Window
	}{
		{dir: domain.DirectionUp, want: domain.Window{XMin: -10, XMax: 10, YMin: -8, YMax: 12}},
		{dir: domain.DirectionRight, want: domain.Window{XMin: -8, XMax: 12, YMin: -8, YMax: 12}},
		{dir: domain.DirectionDown, want: domain.Window{XMin: -8, XMax: 12, YMin: -10, YMax: 10}},
		{dir: domain.DirectionLeft, want: domain.DefaultWindow()},
	}
	for i, tt := range tests {
		h.ctrl.Move(tt.dir)
		assert.Equal(t, tt.want, h.ctrl.State().Window)
		assert.Len(t, h.renderer.frames, i+2)
	}
	assert.False(t, h.ctrl.Stats().Pending)
}

func TestZoom_RejectedIsBitIdentical(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetExpression("x")
	require.NoError(t, h.ctrl.SetWindow(domain.Window{XMin: 0, XMax: 0.11, YMin: 0, YMax: 0.11}))
	before := h.ctrl.State().Window

	assert.False(t, h.ctrl.Zoom(0.5, 0.5, 0.5))
	after := h.ctrl.State().Window
	assert.Equal(t, math.Float64bits(before.XMin), math.Float64bits(after.XMin))
	assert.Equal(t, math.Float64bits(before.XMax), math.Float64bits(after.XMax))
	assert.Equal(t, math.Float64bits(before.YMin), math.Float64bits(after.YMin))
	assert.Equal(t, math.Float64bits(before.YMax), math.Float64bits(after.YMax))
	assert.False(t, h.ctrl.Stats().Pending)

	assert.False(t, h.ctrl.ZoomIn())
	assert.Equal(t, before, h.ctrl.State().Window)
}

func TestZoom_Anchored(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetExpression("x")

	require.True(t, h.ctrl.Zoom(0.5, 0, 0))
	assert.Equal(t, domain.Window{XMin: -10, XMax: 0, YMin: -10, YMax: 0}, h.ctrl.State().Window)
	assert.True(t, h.ctrl.Stats().Pending)
}

func TestZoomButtons(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetExpression("x")
	require.NoError(t, h.ctrl.Plot())

	require.True(t, h.ctrl.ZoomIn())
	assert.Equal(t, domain.Window{XMin: -8, XMax: 8, YMin: -8, YMax: 8}, h.ctrl.State().Window)
	require.True(t, h.ctrl.ZoomOut())
	require.True(t, h.ctrl.ZoomOut())
	assert.Equal(t, domain.Window{XMin: -12, XMax: 12, YMin: -12, YMax: 12}, h.ctrl.State().Window)
	assert.Len(t, h.renderer.frames, 4)
}

func TestScrollZoom(t *testing.T) {
	h := newHarness(t)

	assert.False(t, h.ctrl.ScrollZoom(true, 0.5, 0.5))
	assert.Equal(t, domain.DefaultWindow(), h.ctrl.State().Window)

	h.ctrl.SetExpression("x")
	require.True(t, h.ctrl.ScrollZoom(true, 0.5, 0.5))
	assert.InDelta(t, 18, h.ctrl.State().Window.XSpan(), 1e-12)

	require.True(t, h.ctrl.ScrollZoom(false, 0.5, 0.5))
	assert.InDelta(t, 19.8, h.ctrl.State().Window.XSpan(), 1e-12)
}

func TestSetWindow_Invalid(t *testing.T) {
	h := newHarness(t)
	err := h.ctrl.SetWindow(domain.Window{XMin: 1, XMax: 1, YMin: 0, YMax: 1})
	require.ErrorIs(t, err, domain.ErrInvalidWindow)
	assert.Equal(t, domain.DefaultWindow(), h.ctrl.State().Window)
}

func TestReset(t *testing.T) {
	t.Run("without expression", func(t *testing.T) {
		h := newHarness(t)
		h.ctrl.Move(domain.DirectionRight)
		h.ctrl.Reset()
		assert.Equal(t, domain.DefaultWindow(), h.ctrl.State().Window)
		assert.Empty(t, h.renderer.frames)
	})

	t.Run("with expression", func(t *testing.T) {
		h := newHarness(t)
		h.ctrl.SetExpression("x")
		require.NoError(t, h.ctrl.Plot())
		h.ctrl.Move(domain.DirectionRight)
		h.ctrl.Reset()
		assert.Equal(t, domain.DefaultWindow(), h.renderer.last(t).Window)
		assert.Len(t, h.renderer.frames, 3)
	})
}

func TestClear(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetExpression("x")
	require.NoError(t, h.ctrl.Plot())

	h.ctrl.Clear()
	assert.Empty(t, h.ctrl.State().Expression)
	assert.Equal(t, 1, h.renderer.clears)

	h.ctrl.Redraw(true)
	assert.Len(t, h.renderer.frames, 1)
}

func TestColors(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetExpression("x")

	h.ctrl.SetColor("Cyan")
	require.NoError(t, h.ctrl.Plot())
	assert.Equal(t, "#18dcff", h.renderer.last(t).Color)

	h.ctrl.SetColor("No Such Color")
	h.ctrl.Redraw(true)
	assert.Equal(t, "#4a9eff", h.renderer.last(t).Color)

	assert.Equal(t, "Electric Blue", h.ctrl.SelectNextColor())
	assert.Equal(t, "Mint Green", h.ctrl.SelectNextColor())
}

func TestRedraw_BeforeFirstPlotUsesFullPath(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetExpression("x")
	h.ctrl.Redraw(false)
	h.queue.RunIdle()

	assert.True(t, h.renderer.last(t).Full)
	assert.Equal(t, 1, h.ctrl.Stats().Renders)
}

func TestDecimationFollowsSurface(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetSurface(50, 20)
	h.ctrl.SetExpression("x")
	require.NoError(t, h.ctrl.Plot())
	frame := h.renderer.last(t)
	assert.LessOrEqual(t, frame.Len(), 50)
}

func TestRenderPass_FallsBackToFullPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comp := mocks.NewMockCompiler(ctrl)
	sc := mocks.NewMockSampleCache(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	set := &domain.SampleSet{
		Expression: "x",
		X:          []float64{-1, 0, 1},
		Y:          []domain.Sample{domain.Defined(-1), domain.Defined(0), domain.Defined(1)},
		Range:      domain.CacheRange{Min: -60, Max: 60},
	}
	fn := mocks.NewMockCompiledFunction(ctrl)

	comp.EXPECT().Compile("x").Return(fn, nil)
	sc.EXPECT().Stats().AnyTimes()

	gomock.InOrder(
		sc.EXPECT().Invalidate(),
		sc.EXPECT().Get(gomock.Any(), "x", -10.0, 10.0).Return(set, nil),
		renderer.EXPECT().Draw(gomock.Any()).Do(func(f domain.Frame) { assert.True(t, f.Full) }),

		sc.EXPECT().Get(gomock.Any(), "x", -8.0, 12.0).Return(nil, errors.Join(domain.ErrComputation, errors.New("boom"))),
		sc.EXPECT().Invalidate(),
		sc.EXPECT().Get(gomock.Any(), "x", -8.0, 12.0).Return(set, nil),
		renderer.EXPECT().Draw(gomock.Any()).Do(func(f domain.Frame) { assert.True(t, f.Full) }),
	)
	logger.EXPECT().Debug("optimized render failed, falling back", "error", gomock.Any())

	c := pipeline.New(domain.DefaultSettings(), comp, sc, renderer, scheduler.NewQueue(), telemetry.NewNoOpTracer(), logger)
	c.SetExpression("x")
	require.NoError(t, c.Plot())
	c.Move(domain.DirectionRight)
}

func TestRenderPass_FullPathErrorIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comp := mocks.NewMockCompiler(ctrl)
	sc := mocks.NewMockSampleCache(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	failure := errors.Join(domain.ErrComputation, errors.New("boom"))
	sc.EXPECT().Invalidate()
	sc.EXPECT().Get(gomock.Any(), "x", gomock.Any(), gomock.Any()).Return(nil, failure)
	renderer.EXPECT().ReportError(failure)

	c := pipeline.New(domain.DefaultSettings(), comp, sc, renderer, scheduler.NewQueue(), telemetry.NewNoOpTracer(), logger)
	c.SetExpression("x")
	c.Redraw(true)
	assert.Equal(t, domain.DefaultWindow(), c.State().Window)
}

func TestRenderPass_Spans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	settings := domain.DefaultSettings()
	memo := compiler.NewMemo(compiler.New())
	vc := cache.New(memo, resolver.New(settings.LogEpsilon), sampler.New(settings), settings, telemetry.NewNoOpTracer())

	tracer.EXPECT().Start(gomock.Any(), "render.pass", gomock.Any()).
		Return(context.Background(), span)
	span.EXPECT().SetAttribute("cached", false)
	span.EXPECT().SetAttribute("points", gomock.Any())
	span.EXPECT().SetAttribute("full", true)
	span.EXPECT().End()

	c := pipeline.New(settings, memo, vc, &recordingRenderer{}, scheduler.NewQueue(), tracer, mocks.NewMockLogger(ctrl))
	c.SetExpression("x")
	require.NoError(t, c.Plot())
}
