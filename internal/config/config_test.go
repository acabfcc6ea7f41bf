package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hotseat-chess/internal/apperror"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		// Given: A config file with only the port
		path := writeConfig(t, "http-port: \"8080\"\n")

		// When: Loading it
		conf, err := Load(path)

		// Then: The port is read and everything else is defaulted
		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, ModeWeb, conf.Mode)
		assert.Equal(t, 800, conf.Board.CanvasSize)
		assert.Equal(t, 72, conf.Board.PNGSquareSize)
		assert.Equal(t, 6, conf.Terminal.CellWidth)
		assert.Equal(t, 3, conf.Terminal.CellHeight)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: A terminal mode override
		path := writeConfig(t, "mode: web\nlog-level: info\n")
		t.Setenv("MODE", ModeTerminal)
		t.Setenv("LOG_LEVEL", "debug")

		// When: Loading the file
		conf, err := Load(path)

		// Then: The environment wins
		require.NoError(t, err)
		assert.Equal(t, ModeTerminal, conf.Mode)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		// Given: A config with a bogus mode
		path := writeConfig(t, "mode: gui\n")

		// When: Loading it
		_, err := Load(path)

		// Then: The unknown mode error is returned
		require.ErrorIs(t, err, apperror.ErrUnknownMode)
	})

	t.Run("Rejects non positive sizes", func(t *testing.T) {
		// Given: A negative terminal cell width
		path := writeConfig(t, "terminal:\n  cell-width: -1\n")

		// When: Loading it
		_, err := Load(path)

		// Then: Validation fails
		require.Error(t, err)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
