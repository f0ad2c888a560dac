package app

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/curve/internal/adapters/telemetry"
	"go.trai.ch/curve/internal/adapters/tui"
	"go.trai.ch/curve/internal/adapters/watcher"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	screenWidth  = 80
	screenHeight = 24
)

// runTUI runs the interactive view until the user quits or ctx is done.
// With watch, changes to the config file at path are sent to the view.
func (a *App) runTUI(ctx context.Context, cfg *domain.Config, path string, watch bool) error {
	restore, err := a.configureLogger(cfg.Log, true)
	if err != nil {
		return err
	}
	defer restore()

	shutdown := telemetry.Setup(a.logger)
	defer func() {
		_ = shutdown(context.Background())
	}()

	screen := tui.NewScreen(screenWidth, screenHeight)
	p := a.assemble(cfg, screen)
	model := tui.NewModel(a.stderr, p.Controller, p.Queue, screen)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	renderer := tui.NewRenderer(model, opts...)

	g, gctx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(gctx)
	defer stopWatch()

	g.Go(func() error {
		defer stopWatch()
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	if watch {
		if path == "" {
			path = domain.ConfigFileName
		}
		g.Go(func() error {
			a.follow(watchCtx, path, renderer.Send)
			return nil
		})
	}

	err = g.Wait()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// follow sends a config message to the view for every change to path. A
// watcher that cannot start is reported to the view and the session goes on
// without reloads.
func (a *App) follow(ctx context.Context, path string, send func(tea.Msg)) {
	w, err := a.watchers()
	if err == nil {
		err = watcher.Follow(ctx, w, path, watcher.DefaultDebounceWindow, func() {
			send(a.reload(path))
		})
	}
	if err != nil {
		a.logger.Error(err)
		send(tui.ConfigFailedMsg{Err: err})
	}
}

func (a *App) reload(path string) tea.Msg {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return tui.ConfigFailedMsg{Err: err}
	}
	return tui.ConfigReloadedMsg{Config: cfg}
}

// configureLogger applies the log settings. The interactive view owns the
// terminal, so there the log goes to the configured file or nowhere. The
// returned function points the log back at stderr.
func (a *App) configureLogger(cfg domain.LogConfig, interactive bool) (func(), error) {
	if err := a.logger.SetLevel(cfg.Level); err != nil {
		return nil, err
	}
	a.logger.SetJSON(cfg.JSON)

	if !interactive {
		return func() {}, nil
	}
	if cfg.File == "" {
		a.logger.SetOutput(io.Discard)
		return func() { a.logger.SetOutput(a.stderr) }, nil
	}

	//nolint:gosec // path comes from the user's own config file
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open log file"), "path", cfg.File)
	}
	a.logger.SetOutput(f)
	return func() {
		a.logger.SetOutput(a.stderr)
		_ = f.Close()
	}, nil
}
