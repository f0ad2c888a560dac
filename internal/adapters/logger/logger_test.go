package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/curve/internal/adapters/logger"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(t *testing.T, lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(_ *testing.T, lg *logger.Logger) { lg.Info("watching curve.yaml") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(_ *testing.T, lg *logger.Logger) { lg.Warn("config reload failed") },
			goldenName: "warn_basic",
		},
		{
			name:       "debug filtered at info",
			log:        func(_ *testing.T, lg *logger.Logger) { lg.Debug("span ended", "span", "render.pass") },
			goldenName: "debug_filtered",
		},
		{
			name: "debug with attributes",
			log: func(t *testing.T, lg *logger.Logger) {
				require.NoError(t, lg.SetLevel("debug"))
				lg.Debug("span ended", "span", "render.pass", "points", 800, "full", true)
			},
			goldenName: "debug_attrs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(t, lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        errors.New("boom"),
			goldenName: "error_simple",
		},
		{
			name: "config parse failure",
			err: zerr.With(
				zerr.Wrap(errors.New("yaml: line 3: did not find expected key"), domain.ErrConfigParseFailed.Error()),
				"path", "curve.yaml",
			),
			goldenName: "error_config",
		},
		{
			name: "joined computation failure",
			err: errors.Join(
				domain.ErrComputation,
				zerr.With(zerr.Wrap(domain.ErrInvalidExpression, "unknown symbol"), "token", "y"),
			),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("ready")
	lg.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))

	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "ready", first["msg"])
	assert.Equal(t, "ERROR", second["level"])
	assert.Equal(t, "boom", second["error"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	lg, buf := newTestLogger(t)

	require.NoError(t, lg.SetLevel("error"))
	lg.Warn("hidden")
	assert.Empty(t, buf.String())

	err := lg.SetLevel("loud")
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "loud", zErr.Metadata()["level"])
}
