// Package filter reduces a cached sample set to the points worth drawing in
// the current view.
package filter

import (
	"sort"

	"go.trai.ch/curve/internal/core/domain"
)

// Apply keeps the defined samples whose x lies in [xMin, xMax] and thins them
// to at most pixelWidth points. With pad, the range is widened by padFraction
// of its width on both sides, clamped to the data extent, so that the curve
// reaches past the plot edges.
//
// xs must be sorted ascending and have the same length as ys. The result is
// never nil.
func Apply(
	xs []float64,
	ys []domain.Sample,
	xMin, xMax float64,
	pixelWidth int,
	pad bool,
	padFraction float64,
) ([]float64, []float64) {
	n := min(len(xs), len(ys))
	if n == 0 {
		return []float64{}, []float64{}
	}
	xs, ys = xs[:n], ys[:n]

	lo, hi := xMin, xMax
	if pad {
		p := (xMax - xMin) * padFraction
		lo = max(xMin-p, xs[0])
		hi = min(xMax+p, xs[n-1])
	}

	start := sort.SearchFloat64s(xs, lo)
	end := sort.Search(n, func(i int) bool { return xs[i] > hi })
	if start >= end {
		return []float64{}, []float64{}
	}

	outX := make([]float64, 0, end-start)
	outY := make([]float64, 0, end-start)
	for i := start; i < end; i++ {
		if !ys[i].Valid {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, ys[i].Value)
	}

	return decimate(outX, outY, pixelWidth)
}

// decimate keeps every ceil(len/width)-th point when there are more points
// than pixels.
func decimate(xs, ys []float64, width int) ([]float64, []float64) {
	count := len(xs)
	if width <= 0 || count <= width {
		return xs, ys
	}

	stride := (count + width - 1) / width
	outX := make([]float64, 0, count/stride+1)
	outY := make([]float64, 0, count/stride+1)
	for i := 0; i < count; i += stride {
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}
	return outX, outY
}
