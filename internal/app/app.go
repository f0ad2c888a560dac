// Package app implements the application layer for curve.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/curve/internal/adapters/detector"
	"go.trai.ch/curve/internal/adapters/linear"
	"go.trai.ch/curve/internal/adapters/resolver"
	"go.trai.ch/curve/internal/adapters/telemetry"
	"go.trai.ch/curve/internal/adapters/watcher"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	compiler     ports.Compiler
	resolvers    resolver.Factory
	tracer       ports.Tracer
	detector     *detector.Detector
	watchers     watcher.Factory
	logger       ports.Logger
	teaOptions   []tea.ProgramOption
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	compiler ports.Compiler,
	resolvers resolver.Factory,
	tracer ports.Tracer,
	det *detector.Detector,
	watchers watcher.Factory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		compiler:     compiler,
		resolvers:    resolvers,
		tracer:       tracer,
		detector:     det,
		watchers:     watchers,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects the headless output streams.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// ConfigOptions selects the config file.
type ConfigOptions struct {
	Path string
	// Explicit makes a missing file an error instead of falling back to
	// the defaults.
	Explicit bool
}

// PlotOptions configuration for the Plot method.
type PlotOptions struct {
	Config     ConfigOptions
	Expression string
	Color      string
	Window     *domain.Window
	Watch      bool
	OutputMode string
}

// SampleOptions configuration for the Sample method.
type SampleOptions struct {
	Config     ConfigOptions
	Expression string
	Window     *domain.Window
	Width      int
	JSON       bool
	// Full prints every defined sample in the window instead of thinning
	// to Width points.
	Full bool
}

// Plot shows the expression interactively, or prints a single text chart
// when the output is not a terminal.
func (a *App) Plot(ctx context.Context, opts PlotOptions) error {
	cfg, err := a.loadConfig(opts.Config)
	if err != nil {
		return err
	}
	if opts.Color != "" {
		if _, ok := domain.LookupColor(opts.Color); !ok {
			a.logger.Warn(fmt.Sprintf("unknown color %q, using %s", opts.Color, domain.DefaultColorName()))
		}
	}
	override(cfg, opts.Expression, opts.Color, opts.Window)

	mode := a.detector.Resolve(opts.OutputMode)
	if mode == detector.ModeTUI {
		return a.runTUI(ctx, cfg, opts.Config.Path, opts.Watch)
	}

	if opts.Watch {
		a.logger.Warn("--watch needs the interactive view, ignoring it")
	}
	r := linear.NewRenderer(a.stdout, a.stderr, linear.FormatChart)
	width, height := r.Size()
	return a.renderOnce(ctx, cfg, r, width, height)
}

// Sample plots the expression headless and prints the drawn points.
func (a *App) Sample(ctx context.Context, opts SampleOptions) error {
	cfg, err := a.loadConfig(opts.Config)
	if err != nil {
		return err
	}
	override(cfg, opts.Expression, "", opts.Window)

	format := linear.FormatTable
	if opts.JSON {
		format = linear.FormatJSON
	}
	width := opts.Width
	if opts.Full {
		width = 0
	}
	return a.renderOnce(ctx, cfg, linear.NewRenderer(a.stdout, a.stderr, format), width, linear.DefaultHeight)
}

func (a *App) renderOnce(ctx context.Context, cfg *domain.Config, r *linear.Renderer, width, height int) error {
	if _, err := a.configureLogger(cfg.Log, false); err != nil {
		return err
	}
	shutdown := telemetry.Setup(a.logger)
	defer func() {
		_ = shutdown(ctx)
	}()

	p := a.assemble(cfg, r)
	p.Controller.SetSurface(width, height)
	if err := p.Controller.Plot(); err != nil {
		return err
	}
	p.Queue.RunIdle()
	return r.Flush()
}

func (a *App) loadConfig(opts ConfigOptions) (*domain.Config, error) {
	path := opts.Path
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg, err := a.configLoader.Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, domain.ErrConfigNotFound) && !opts.Explicit {
		a.logger.Debug("no config file, using defaults", "path", path)
		return domain.DefaultConfig(), nil
	}
	return nil, zerr.Wrap(err, "failed to load configuration")
}

func override(cfg *domain.Config, expr, color string, window *domain.Window) {
	if strings.TrimSpace(expr) != "" {
		cfg.Expression = expr
	}
	if color != "" {
		cfg.Color = color
	}
	if window != nil {
		cfg.Settings.Window = *window
	}
}
