package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/curve/cmd/curve/commands"
	"go.trai.ch/curve/internal/app"
	"go.trai.ch/curve/internal/build"
	"go.trai.ch/curve/internal/core/domain"
)

type mockApp struct {
	plotFunc   func(ctx context.Context, opts app.PlotOptions) error
	sampleFunc func(ctx context.Context, opts app.SampleOptions) error
}

func (m *mockApp) Plot(ctx context.Context, opts app.PlotOptions) error {
	if m.plotFunc != nil {
		return m.plotFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Sample(ctx context.Context, opts app.SampleOptions) error {
	if m.sampleFunc != nil {
		return m.sampleFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Plot(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.PlotOptions
		called := false

		mock := &mockApp{
			plotFunc: func(_ context.Context, opts app.PlotOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"plot", "sin(x)", "*", "x",
			"--watch", "--color", "Purple", "--window", "-1,1,-2,2", "-o", "tui",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "sin(x) * x", captured.Expression)
		assert.True(t, captured.Watch)
		assert.Equal(t, "Purple", captured.Color)
		assert.Equal(t, "tui", captured.OutputMode)
		require.NotNil(t, captured.Window)
		assert.Equal(t, domain.Window{XMin: -1, XMax: 1, YMin: -2, YMax: 2}, *captured.Window)
		assert.Equal(t, app.ConfigOptions{Path: domain.ConfigFileName}, captured.Config)
	})

	t.Run("ci forces linear output", func(t *testing.T) {
		var captured app.PlotOptions
		mock := &mockApp{
			plotFunc: func(_ context.Context, opts app.PlotOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"plot", "--ci", "-c", "other.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "linear", captured.OutputMode)
		assert.Empty(t, captured.Expression)
		assert.Nil(t, captured.Window)
		assert.Equal(t, app.ConfigOptions{Path: "other.yaml", Explicit: true}, captured.Config)
	})

	t.Run("rejects a malformed window", func(t *testing.T) {
		mock := &mockApp{
			plotFunc: func(_ context.Context, _ app.PlotOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"plot", "x", "--window", "1,2"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrInvalidWindow)
	})

	t.Run("returns error on plot failure", func(t *testing.T) {
		mock := &mockApp{
			plotFunc: func(_ context.Context, _ app.PlotOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"plot", "x"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Sample(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.SampleOptions
		mock := &mockApp{
			sampleFunc: func(_ context.Context, opts app.SampleOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"sample", "x**2", "--width", "40", "--json", "--full"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "x**2", captured.Expression)
		assert.Equal(t, 40, captured.Width)
		assert.True(t, captured.JSON)
		assert.True(t, captured.Full)
		assert.Nil(t, captured.Window)
	})

	t.Run("requires an expression", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"sample"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "curve version "+build.Version)
}
