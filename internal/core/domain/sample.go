package domain

// Sample is the result of evaluating the expression at one grid point.
// A zero Sample is missing.
type Sample struct {
	Value float64
	Valid bool
}

// Defined returns a valid sample holding v.
func Defined(v float64) Sample {
	return Sample{Value: v, Valid: true}
}

// Missing returns the missing-value marker.
func Missing() Sample {
	return Sample{}
}

// CacheRange is the x-interval a SampleSet was computed for.
type CacheRange struct {
	Min float64
	Max float64
}

// Contains reports whether [lo, hi] lies inside the range.
func (r CacheRange) Contains(lo, hi float64) bool {
	return r.Min <= lo && r.Max >= hi
}

// SampleSet holds an evaluated grid. X is strictly increasing and has the
// same length as Y.
type SampleSet struct {
	Expression string
	X          []float64
	Y          []Sample
	Range      CacheRange
}

// Len returns the number of grid points.
func (s *SampleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.X)
}

// Defined returns the number of valid samples.
func (s *SampleSet) Defined() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, y := range s.Y {
		if y.Valid {
			n++
		}
	}
	return n
}
