package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/curve/internal/core/domain"
)

func TestWindow_Valid(t *testing.T) {
	tests := []struct {
		name string
		w    domain.Window
		want bool
	}{
		{name: "default", w: domain.DefaultWindow(), want: true},
		{name: "inverted x", w: domain.Window{XMin: 1, XMax: -1, YMin: 0, YMax: 1}, want: false},
		{name: "empty y", w: domain.Window{XMin: 0, XMax: 1, YMin: 2, YMax: 2}, want: false},
		{name: "nan bound", w: domain.Window{XMin: math.NaN(), XMax: 1, YMin: 0, YMax: 1}, want: false},
		{name: "infinite bound", w: domain.Window{XMin: 0, XMax: math.Inf(1), YMin: 0, YMax: 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.w.Valid())
		})
	}
}

func TestWindow_Pan(t *testing.T) {
	w := domain.DefaultWindow()

	got, ok := w.Pan(2, -3)
	require.True(t, ok)
	assert.Equal(t, domain.Window{XMin: -8, XMax: 12, YMin: -13, YMax: 7}, got)

	_, ok = w.Pan(math.Inf(1), 0)
	assert.False(t, ok)
}

func TestWindow_Zoom_Anchored(t *testing.T) {
	w := domain.DefaultWindow()

	t.Run("centered zoom in", func(t *testing.T) {
		got, ok := w.Zoom(0.1, 0.5, 0.5, 0.1)
		require.True(t, ok)
		assert.InDelta(t, -9.0, got.XMin, 1e-12)
		assert.InDelta(t, 9.0, got.XMax, 1e-12)
		assert.InDelta(t, -9.0, got.YMin, 1e-12)
		assert.InDelta(t, 9.0, got.YMax, 1e-12)
	})

	t.Run("anchor at left edge keeps x_min fixed", func(t *testing.T) {
		got, ok := w.Zoom(0.1, 0, 1, 0.1)
		require.True(t, ok)
		assert.InDelta(t, -10.0, got.XMin, 1e-12)
		assert.InDelta(t, 8.0, got.XMax, 1e-12)
		assert.InDelta(t, -8.0, got.YMin, 1e-12)
		assert.InDelta(t, 10.0, got.YMax, 1e-12)
	})

	t.Run("zoom out grows", func(t *testing.T) {
		got, ok := w.Zoom(-0.1, 0.5, 0.5, 0.1)
		require.True(t, ok)
		assert.InDelta(t, 22.0, got.XSpan(), 1e-12)
		assert.InDelta(t, 22.0, got.YSpan(), 1e-12)
	})

	t.Run("anchors are clamped", func(t *testing.T) {
		got, ok := w.Zoom(0.1, -5, 7, 0.1)
		require.True(t, ok)
		assert.InDelta(t, -10.0, got.XMin, 1e-12)
		assert.InDelta(t, 10.0, got.YMax, 1e-12)
	})
}

func TestWindow_Zoom_NeverBelowMinimumSpan(t *testing.T) {
	w := domain.DefaultWindow()

	for range 1000 {
		next, ok := w.Zoom(0.1, 0.3, 0.7, 0.1)
		if !ok {
			break
		}
		w = next
		require.Greater(t, w.XSpan(), 0.1)
		require.Greater(t, w.YSpan(), 0.1)
	}

	before := w
	after, ok := w.Zoom(0.1, 0.3, 0.7, 0.1)
	assert.False(t, ok)
	assert.Equal(t, math.Float64bits(before.XMin), math.Float64bits(after.XMin))
	assert.Equal(t, math.Float64bits(before.XMax), math.Float64bits(after.XMax))
	assert.Equal(t, math.Float64bits(before.YMin), math.Float64bits(after.YMin))
	assert.Equal(t, math.Float64bits(before.YMax), math.Float64bits(after.YMax))
}

func TestWindow_Inset(t *testing.T) {
	w := domain.DefaultWindow()

	in, ok := w.Inset(2, 0.1)
	require.True(t, ok)
	assert.Equal(t, domain.Window{XMin: -8, XMax: 8, YMin: -8, YMax: 8}, in)

	out, ok := w.Inset(-2, 0.1)
	require.True(t, ok)
	assert.Equal(t, domain.Window{XMin: -12, XMax: 12, YMin: -12, YMax: 12}, out)

	small := domain.Window{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	got, ok := small.Inset(2, 0.1)
	assert.False(t, ok)
	assert.Equal(t, small, got)
}

func TestWindow_DragDelta(t *testing.T) {
	w := domain.DefaultWindow()

	dx, dy := w.DragDelta(10, 5, 100, 50)
	assert.InDelta(t, -2.0, dx, 1e-12)
	assert.InDelta(t, 2.0, dy, 1e-12)

	dx, dy = w.DragDelta(10, 5, 0, 0)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestWindow_String(t *testing.T) {
	assert.Equal(t, "[-10, 10] x [-10, 10]", domain.DefaultWindow().String())
}

func TestParseWindow(t *testing.T) {
	w, err := domain.ParseWindow("-2, 2,-1,5")
	require.NoError(t, err)
	assert.Equal(t, domain.Window{XMin: -2, XMax: 2, YMin: -1, YMax: 5}, w)

	for _, in := range []string{"", "1,2,3", "a,1,0,1", "1,-1,0,1", "0,1,0,inf"} {
		_, err := domain.ParseWindow(in)
		require.ErrorIs(t, err, domain.ErrInvalidWindow, in)
	}
}
