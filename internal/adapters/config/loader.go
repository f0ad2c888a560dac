// Package config provides the configuration loader for curve.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the config schema version this loader understands.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading through fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load reads the configuration at path and merges it over the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, err.Error()), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("unknown config version %q in %s, reading it as version %s", file.Version, path, SupportedVersion))
	}

	cfg := domain.DefaultConfig()
	apply(cfg, &file)

	if file.Color != "" {
		if _, ok := domain.LookupColor(file.Color); !ok {
			l.Logger.Warn(fmt.Sprintf("unknown color %q, using %s", file.Color, domain.DefaultColorName()))
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func apply(cfg *domain.Config, f *File) {
	cfg.Expression = f.Expression
	if f.Color != "" {
		cfg.Color = f.Color
	}

	s := &cfg.Settings
	set(&s.Window.XMin, f.Window.XMin)
	set(&s.Window.XMax, f.Window.XMax)
	set(&s.Window.YMin, f.Window.YMin)
	set(&s.Window.YMax, f.Window.YMax)

	set(&s.Resolution, f.Sampling.Resolution)
	set(&s.CacheFactor, f.Sampling.CacheFactor)
	set(&s.MinCacheRange, f.Sampling.MinCacheRange)
	set(&s.LogEpsilon, f.Sampling.LogEpsilon)
	set(&s.ImagTolerance, f.Sampling.ImagTolerance)
	set(&s.MaxSamples, f.Sampling.MaxSamples)

	set(&s.MoveStep, f.Navigation.MoveStep)
	set(&s.ZoomStep, f.Navigation.ZoomStep)
	set(&s.ScrollZoomFactor, f.Navigation.ScrollZoomFactor)
	set(&s.MinSpan, f.Navigation.MinSpan)

	set(&s.PadFraction, f.Render.PadFraction)

	if f.Log.Level != "" {
		cfg.Log.Level = strings.ToLower(f.Log.Level)
	}
	set(&cfg.Log.JSON, f.Log.JSON)
	cfg.Log.File = f.Log.File
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks every tunable against its allowed range.
func Validate(cfg *domain.Config) error {
	s := cfg.Settings

	if !s.Window.Valid() {
		return invalid("window", s.Window.String(), "x_max must exceed x_min and y_max must exceed y_min")
	}

	positive := []struct {
		field string
		value float64
	}{
		{"sampling.resolution", s.Resolution},
		{"sampling.cache_factor", s.CacheFactor},
		{"sampling.log_epsilon", s.LogEpsilon},
		{"navigation.move_step", s.MoveStep},
		{"navigation.zoom_step", s.ZoomStep},
		{"navigation.min_span", s.MinSpan},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return invalid(p.field, p.value, "must be positive")
		}
	}

	if !(s.MinCacheRange >= 0) {
		return invalid("sampling.min_cache_range", s.MinCacheRange, "must not be negative")
	}
	if !(s.ImagTolerance >= 0) {
		return invalid("sampling.imag_tolerance", s.ImagTolerance, "must not be negative")
	}
	if s.MaxSamples <= 0 {
		return invalid("sampling.max_samples", s.MaxSamples, "must be positive")
	}
	if !(s.ScrollZoomFactor > 0 && s.ScrollZoomFactor < 1) {
		return invalid("navigation.scroll_zoom_factor", s.ScrollZoomFactor, "must be between 0 and 1 exclusive")
	}
	if !(s.PadFraction >= 0 && s.PadFraction < 1) {
		return invalid("render.pad_fraction", s.PadFraction, "must be at least 0 and below 1")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level", cfg.Log.Level, "must be one of debug, info, warn, error")
	}
	return nil
}

func invalid(field string, value any, reason string) error {
	err := zerr.Wrap(domain.ErrInvalidConfig, reason)
	err = zerr.With(err, "field", field)
	return zerr.With(err, "value", value)
}
