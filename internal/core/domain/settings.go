package domain

// Settings holds the tunables of the sampling pipeline and of navigation.
type Settings struct {
	// Window is the initial and reset view.
	Window Window

	// Resolution is the nominal grid step.
	Resolution float64
	// CacheFactor scales the view width into the cache extension.
	CacheFactor float64
	// MinCacheRange is the smallest cache extension on each side.
	MinCacheRange float64
	// LogEpsilon is the lower sampling bound for logarithms.
	LogEpsilon float64
	// ImagTolerance is the largest imaginary magnitude still treated as real.
	ImagTolerance float64
	// MaxSamples bounds the grid size of a single recomputation.
	MaxSamples int

	MoveStep         float64
	ZoomStep         float64
	ScrollZoomFactor float64
	// MinSpan is the smallest span either axis may zoom down to (exclusive).
	MinSpan float64

	// PadFraction widens the filter range on the cache-reusing render path.
	PadFraction float64
}

// DefaultSettings returns the built-in tunables.
func DefaultSettings() Settings {
	return Settings{
		Window:           DefaultWindow(),
		Resolution:       0.01,
		CacheFactor:      2.0,
		MinCacheRange:    50.0,
		LogEpsilon:       1e-10,
		ImagTolerance:    1e-10,
		MaxSamples:       2_000_000,
		MoveStep:         2,
		ZoomStep:         2,
		ScrollZoomFactor: 0.1,
		MinSpan:          0.1,
		PadFraction:      0.1,
	}
}
