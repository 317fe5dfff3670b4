package main

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "> ", cfg.Prompt)
		assert.Equal(t, "calc.log", cfg.LogFile)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.False(t, cfg.Trace)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("CALC_PROMPT", "calc> ")
		t.Setenv("LOG_FILE", " app.log ")
		t.Setenv("LOG_LEVEL", "WARN")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "calc> ", cfg.Prompt)
		assert.Equal(t, "app.log", cfg.LogFile)
		assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	})

	t.Run("empty log file disables file logging", func(t *testing.T) {
		t.Setenv("LOG_FILE", "")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Empty(t, cfg.LogFile)
	})

	t.Run("trace forces debug", func(t *testing.T) {
		t.Setenv("CALC_TRACE", "true")
		t.Setenv("LOG_LEVEL", "error")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.True(t, cfg.Trace)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")

		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "invalid LOG_LEVEL")
	})

	t.Run("local requires .env", func(t *testing.T) {
		_, err := LoadConfig("local")
		assert.Error(t, err)
	})
}
