package ports

import (
	"context"

	"go.trai.ch/curve/internal/core/domain"
)

// CacheStats counts View Cache activity.
type CacheStats struct {
	Hits        int
	Misses      int
	Recomputes  int
	LastSamples int
}

// SampleCache serves sample sets for view windows, recomputing only when the
// stored set does not cover the request.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type SampleCache interface {
	// Get returns samples of expr covering at least [xMin, xMax].
	Get(ctx context.Context, expr string, xMin, xMax float64) (*domain.SampleSet, error)
	// Invalidate drops the stored sample set.
	Invalidate()
	// Stats returns the activity counters.
	Stats() CacheStats
}
