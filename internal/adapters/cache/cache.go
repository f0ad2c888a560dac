// Package cache keeps one evaluated sample set covering an extended view
// window, so panning and zooming inside it avoids re-evaluation.
package cache

import (
	"context"
	"errors"
	"math"

	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
	"go.trai.ch/curve/internal/engine/sampler"
	"go.trai.ch/zerr"
)

var _ ports.SampleCache = (*ViewCache)(nil)

// ViewCache implements ports.SampleCache with a single stored sample set.
type ViewCache struct {
	compiler ports.Compiler
	resolver ports.DomainResolver
	sampler  *sampler.Sampler
	tracer   ports.Tracer

	factor   float64
	minRange float64

	set   *domain.SampleSet
	stats ports.CacheStats
}

// New creates a ViewCache. compiler is usually a compiler.Memo whose OnChange
// hook is bound to Invalidate.
func New(
	compiler ports.Compiler,
	resolver ports.DomainResolver,
	s *sampler.Sampler,
	settings domain.Settings,
	tracer ports.Tracer,
) *ViewCache {
	return &ViewCache{
		compiler: compiler,
		resolver: resolver,
		sampler:  s,
		tracer:   tracer,
		factor:   settings.CacheFactor,
		minRange: settings.MinCacheRange,
	}
}

// Get returns a sample set of expr covering [xMin, xMax] with margin. The
// stored set is returned unchanged when it already covers the extended
// window for the same expression text.
func (c *ViewCache) Get(ctx context.Context, expr string, xMin, xMax float64) (*domain.SampleSet, error) {
	ext := math.Max((xMax-xMin)*c.factor, c.minRange)
	lo, hi := xMin-ext, xMax+ext

	if c.set != nil && c.set.Expression == expr && c.set.Range.Contains(lo, hi) {
		c.stats.Hits++
		return c.set, nil
	}
	c.stats.Misses++

	set, err := c.recompute(ctx, expr, xMin, xMax, lo, hi)
	if err != nil {
		return nil, err
	}

	c.set = set
	c.stats.Recomputes++
	c.stats.LastSamples = set.Len()
	return set, nil
}

func (c *ViewCache) recompute(ctx context.Context, expr string, xMin, xMax, lo, hi float64) (*domain.SampleSet, error) {
	_, span := c.tracer.Start(ctx, "cache.recompute",
		ports.WithAttribute("expression", expr),
		ports.WithAttribute("x_min", lo),
		ports.WithAttribute("x_max", hi),
	)
	defer span.End()

	fn, err := c.compiler.Compile(expr)
	if err != nil {
		err = errors.Join(domain.ErrComputation, err)
		span.RecordError(err)
		return nil, err
	}

	sLo, sHi := c.resolver.Restrict(expr, lo, hi)
	xs := sampler.Grid(sLo, sHi, c.sampler.Step(xMax-xMin, sHi-sLo))
	if len(xs) == 0 {
		err := zerr.With(zerr.Wrap(domain.ErrComputation, "empty sampling interval"), "x_min", sLo)
		err = zerr.With(err, "x_max", sHi)
		span.RecordError(err)
		return nil, err
	}

	set := &domain.SampleSet{
		Expression: expr,
		X:          xs,
		Y:          c.sampler.Sample(fn, xs),
		Range:      domain.CacheRange{Min: lo, Max: hi},
	}
	span.SetAttribute("samples", set.Len())
	span.SetAttribute("defined", set.Defined())
	return set, nil
}

// Invalidate drops the stored sample set.
func (c *ViewCache) Invalidate() {
	c.set = nil
}

// Stats returns the activity counters.
func (c *ViewCache) Stats() ports.CacheStats {
	return c.stats
}
