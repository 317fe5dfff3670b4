package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/calc-tree/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	showAST = false
	suiteIterations = 0
	suiteJSON = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	t.Run("joins arguments", func(t *testing.T) {
		out, err := execute(t, "eval", "2", "+", "3", "*", "4")
		require.NoError(t, err)
		assert.Equal(t, "14.0\n", out)
	})

	t.Run("ast", func(t *testing.T) {
		out, err := execute(t, "eval", "--ast", "(1 + 2) / 3")
		require.NoError(t, err)
		assert.Contains(t, out, "Binary")
		assert.Contains(t, out, "Leaf")
		assert.Contains(t, out, "1.0\n")
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := execute(t, "eval", "1 / 0")
		assert.ErrorIs(t, err, apperr.ErrDivisionByZero)
	})

	t.Run("structure error", func(t *testing.T) {
		_, err := execute(t, "eval", "1 +")
		assert.ErrorIs(t, err, apperr.ErrStructure)
	})

	t.Run("requires an expression", func(t *testing.T) {
		_, err := execute(t, "eval")
		assert.Error(t, err)
	})
}

func TestSuiteCommand(t *testing.T) {
	report := filepath.Join(t.TempDir(), "report.json")

	out, err := execute(t, "suite", "--file", "../../configs/suites/basic.yaml", "--iterations", "1", "--json", report)
	require.NoError(t, err)
	assert.Contains(t, out, "=== Suite: basic ===")
	assert.Contains(t, out, "0 failed")
	assert.FileExists(t, report)
}

func TestSuiteCommand_Failures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: f\ncases:\n  - id: a\n    expression: \"1 + 1\"\n    expect: 3\n"), 0o644))

	_, err := execute(t, "suite", "--file", path, "--iterations", "1")
	assert.ErrorContains(t, err, "1 of 1 cases failed")
}
