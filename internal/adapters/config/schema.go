package config

// File represents the structure of the curve.yaml configuration file.
// Pointer fields distinguish an absent key from an explicit zero.
type File struct {
	Version    string        `yaml:"version"`
	Expression string        `yaml:"expression"`
	Color      string        `yaml:"color"`
	Window     WindowDTO     `yaml:"window"`
	Sampling   SamplingDTO   `yaml:"sampling"`
	Navigation NavigationDTO `yaml:"navigation"`
	Render     RenderDTO     `yaml:"render"`
	Log        LogDTO        `yaml:"log"`
}

// WindowDTO is the initial view window.
type WindowDTO struct {
	XMin *float64 `yaml:"x_min"`
	XMax *float64 `yaml:"x_max"`
	YMin *float64 `yaml:"y_min"`
	YMax *float64 `yaml:"y_max"`
}

// SamplingDTO holds the grid and cache tunables.
type SamplingDTO struct {
	Resolution    *float64 `yaml:"resolution"`
	CacheFactor   *float64 `yaml:"cache_factor"`
	MinCacheRange *float64 `yaml:"min_cache_range"`
	LogEpsilon    *float64 `yaml:"log_epsilon"`
	ImagTolerance *float64 `yaml:"imag_tolerance"`
	MaxSamples    *int     `yaml:"max_samples"`
}

// NavigationDTO holds the pan and zoom steps.
type NavigationDTO struct {
	MoveStep         *float64 `yaml:"move_step"`
	ZoomStep         *float64 `yaml:"zoom_step"`
	ScrollZoomFactor *float64 `yaml:"scroll_zoom_factor"`
	MinSpan          *float64 `yaml:"min_span"`
}

// RenderDTO holds the render filter tunables.
type RenderDTO struct {
	PadFraction *float64 `yaml:"pad_fraction"`
}

// LogDTO holds the logger settings.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  *bool  `yaml:"json"`
	File  string `yaml:"file"`
}
