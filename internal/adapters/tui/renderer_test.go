package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/curve/internal/adapters/tui"
	"go.trai.ch/curve/internal/core/domain"
)

func newTestRenderer(t *testing.T, m *tui.Model) *tui.Renderer {
	t.Helper()
	return tui.NewRenderer(
		m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_Lifecycle(t *testing.T) {
	renderer := newTestRenderer(t, newTestModel(t, ""))

	require.NoError(t, renderer.Start(context.Background()))
	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())
}

func TestRenderer_SendConfigReload(t *testing.T) {
	m := newTestModel(t, "")
	renderer := newTestRenderer(t, m)
	require.NoError(t, renderer.Start(context.Background()))

	cfg := domain.DefaultConfig()
	cfg.Expression = "x"
	renderer.Send(tui.ConfigReloadedMsg{Config: cfg})

	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())

	assert.Equal(t, "x", m.Controller.State().Expression)
	assert.Equal(t, "x", m.Input.Value())
	assert.Equal(t, "config reloaded, plotted x", m.Status)
}
