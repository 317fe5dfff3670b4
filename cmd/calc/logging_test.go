package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("console and file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "calc.log")
		require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

		var console bytes.Buffer
		logger, closeFn, err := newLogger(&Config{LogFile: path, LogLevel: slog.LevelInfo}, &console)
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("Starting program")
		require.NoError(t, closeFn())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, console.String(), "Starting program")
		assert.NotContains(t, console.String(), "hidden")
		assert.Contains(t, string(data), "Starting program")
		assert.NotContains(t, string(data), "previous run")
	})

	t.Run("console only", func(t *testing.T) {
		var console bytes.Buffer
		logger, closeFn, err := newLogger(&Config{LogLevel: slog.LevelDebug}, &console)
		require.NoError(t, err)

		logger.Debug("consume token")
		assert.NoError(t, closeFn())
		assert.Contains(t, console.String(), "consume token")
	})

	t.Run("unwritable path", func(t *testing.T) {
		_, _, err := newLogger(&Config{LogFile: filepath.Join(t.TempDir(), "missing", "calc.log")}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "open log file")
	})
}
