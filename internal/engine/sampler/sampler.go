// Package sampler evaluates compiled expressions over uniform grids and
// sanitizes the results into plottable samples.
package sampler

import (
	"math"

	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
)

// Sampler evaluates functions over grids.
type Sampler struct {
	tolerance  float64
	resolution float64
	maxSamples int
}

// New creates a Sampler from the sampling settings.
func New(settings domain.Settings) *Sampler {
	return &Sampler{
		tolerance:  settings.ImagTolerance,
		resolution: settings.Resolution,
		maxSamples: settings.MaxSamples,
	}
}

// Sample evaluates fn at every x. It never fails: a panicking evaluation or a
// result of the wrong length yields all-missing samples.
func (s *Sampler) Sample(fn ports.CompiledFunction, xs []float64) (out []domain.Sample) {
	out = make([]domain.Sample, len(xs))

	defer func() {
		if r := recover(); r != nil {
			out = make([]domain.Sample, len(xs))
		}
	}()

	ys := fn.Eval(xs)
	if len(ys) != len(xs) {
		return out
	}

	for i, y := range ys {
		out[i] = s.sanitize(y)
	}
	return out
}

func (s *Sampler) sanitize(y complex128) domain.Sample {
	if math.Abs(imag(y)) > s.tolerance {
		return domain.Missing()
	}
	v := real(y)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.Missing()
	}
	return domain.Defined(v)
}

// Step returns the grid step for a view of the given width when sampling an
// interval of the given span.
func (s *Sampler) Step(viewWidth, span float64) float64 {
	step := math.Min(s.resolution, viewWidth/1000)
	if s.maxSamples > 0 && span > 0 {
		step = math.Max(step, span/float64(s.maxSamples))
	}
	return step
}

// Grid returns the strictly increasing points lo, lo+step, ... ending
// exactly at hi. Points that round onto their predecessor are dropped. It returns nil for an empty interval or a non-positive step.
func Grid(lo, hi, step float64) []float64 {
	if !finite(lo) || !finite(hi) || !finite(step) || lo > hi || step <= 0 {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}

	n := int(math.Ceil((hi - lo) / step))
	xs := make([]float64, 0, n+1)
	for i := 0; ; i++ {
		x := lo + float64(i)*step
		if x >= hi {
			break
		}
		// Far from zero the step can fall below the float spacing.
		if len(xs) > 0 && x <= xs[len(xs)-1] {
			continue
		}
		xs = append(xs, x)
	}

	// Snap a final point that only differs from hi by rounding.
	if last := len(xs) - 1; last > 0 && hi-xs[last] < step*1e-9 {
		xs = xs[:last]
	}
	return append(xs, hi)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
