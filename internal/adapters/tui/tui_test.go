package tui_test

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.trai.ch/curve/internal/adapters/cache"
	"go.trai.ch/curve/internal/adapters/compiler"
	"go.trai.ch/curve/internal/adapters/resolver"
	"go.trai.ch/curve/internal/adapters/telemetry"
	"go.trai.ch/curve/internal/adapters/tui"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/engine/pipeline"
	"go.trai.ch/curve/internal/engine/sampler"
	"go.trai.ch/curve/internal/engine/scheduler"
)

type discardLogger struct{}

func (discardLogger) Debug(string, ...any)  {}
func (discardLogger) Info(string)           {}
func (discardLogger) Warn(string)           {}
func (discardLogger) Error(error)           {}
func (discardLogger) SetOutput(io.Writer)   {}
func (discardLogger) SetJSON(bool)          {}
func (discardLogger) SetLevel(string) error { return nil }

const (
	testWidth  = 100
	testHeight = 30
)

func newTestModel(t *testing.T, expr string) *tui.Model {
	t.Helper()
	settings := domain.DefaultSettings()
	memo := compiler.NewMemo(compiler.New())
	vc := cache.New(memo, resolver.New(settings.LogEpsilon), sampler.New(settings), settings, telemetry.NewNoOpTracer())
	memo.OnChange(vc.Invalidate)

	q := scheduler.NewQueue()
	screen := tui.NewScreen(testWidth, testHeight)
	ctrl := pipeline.New(settings, memo, vc, screen, q, telemetry.NewNoOpTracer(), discardLogger{})
	ctrl.SetExpression(expr)

	m := tui.NewModel(io.Discard, ctrl, q, screen)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m
}

func update(t *testing.T, m *tui.Model, msg tea.Msg) (*tui.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(*tui.Model)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// plotted returns a model showing expr with the chart focused.
func plotted(t *testing.T, expr string) *tui.Model {
	t.Helper()
	m := newTestModel(t, "")
	m.Input.SetValue(expr)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, tui.FocusChart, m.Focus)
	require.Equal(t, 1, m.Screen.Frames())
	return m
}
