package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALC_ENV_TEST_KEY=from-file\n"), 0o600))

	t.Setenv("ENV_PATH", "")
	t.Setenv("CALC_ENV_TEST_KEY", "")
	require.NoError(t, os.Unsetenv("CALC_ENV_TEST_KEY"))

	require.NoError(t, LoadDotEnv("local", path))
	assert.Equal(t, "from-file", os.Getenv("CALC_ENV_TEST_KEY"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, LoadDotEnv("local", ""))
	assert.NoError(t, LoadDotEnv("production", ""))
	assert.NoError(t, LoadDotEnv("", ""))
}

func TestString(t *testing.T) {
	t.Setenv("CALC_ENV_TEST_STRING", "  value ")
	assert.Equal(t, "value", String("CALC_ENV_TEST_STRING", "def"))

	t.Setenv("CALC_ENV_TEST_STRING", "  ")
	assert.Equal(t, "def", String("CALC_ENV_TEST_STRING", "def"))
}

func TestBool(t *testing.T) {
	t.Setenv("CALC_ENV_TEST_BOOL", "true")
	assert.True(t, Bool("CALC_ENV_TEST_BOOL", false))

	t.Setenv("CALC_ENV_TEST_BOOL", "nope")
	assert.True(t, Bool("CALC_ENV_TEST_BOOL", true))

	t.Setenv("CALC_ENV_TEST_BOOL", "")
	assert.False(t, Bool("CALC_ENV_TEST_BOOL", false))
}
