package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/calc-tree/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: smoke
description: a few cases
iterations: 3
cases:
  - id: add
    expression: "1 + 2"
    expect: 3
  - id: zero
    expression: "0 * 5"
    expect: 0
  - id: div0
    expression: "1 / 0"
    expect_error: division_by_zero
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "smoke", s.Name)
		assert.Equal(t, 3, s.Iterations)
		require.Len(t, s.Cases, 3)
		require.NotNil(t, s.Cases[0].Expect)
		assert.Equal(t, 3.0, *s.Cases[0].Expect)
		require.NotNil(t, s.Cases[1].Expect)
		assert.Equal(t, 0.0, *s.Cases[1].Expect)
		assert.Equal(t, apperr.KindDivisionByZero, s.Cases[2].ExpectError)
		assert.True(t, s.Cases[2].ExpectsError())
	})

	t.Run("default iterations", func(t *testing.T) {
		s, err := Parse([]byte("cases:\n  - id: a\n    expression: \"1\"\n    expect: 1\n"))
		require.NoError(t, err)
		assert.Equal(t, defaultIterations, s.Iterations)
	})

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no cases",
			yaml:    "name: empty\ncases: []\n",
			wantErr: "no cases",
		},
		{
			name:    "missing id",
			yaml:    "cases:\n  - expression: \"1\"\n    expect: 1\n",
			wantErr: "index 0 has no id",
		},
		{
			name:    "duplicate id",
			yaml:    "cases:\n  - id: a\n    expression: \"1\"\n    expect: 1\n  - id: a\n    expression: \"2\"\n    expect: 2\n",
			wantErr: `duplicate case id "a"`,
		},
		{
			name:    "both expectations",
			yaml:    "cases:\n  - id: a\n    expression: \"1\"\n    expect: 1\n    expect_error: parse\n",
			wantErr: "both expect and expect_error",
		},
		{
			name:    "no expectation",
			yaml:    "cases:\n  - id: a\n    expression: \"1\"\n",
			wantErr: "neither expect nor expect_error",
		},
		{
			name:    "unknown error kind",
			yaml:    "cases:\n  - id: a\n    expression: \"1\"\n    expect_error: overflow\n",
			wantErr: "invalid error kind",
		},
		{
			name:    "negative warmup",
			yaml:    "warmup: -1\ncases:\n  - id: a\n    expression: \"1\"\n    expect: 1\n",
			wantErr: "warmup must not be negative",
		},
		{
			name:    "invalid yaml",
			yaml:    "cases: [",
			wantErr: "parse suite YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "suite.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: f\ncases:\n  - id: a\n    expression: \"2*3\"\n    expect: 6\n"), 0o644))

		s, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "f", s.Name)
		assert.Len(t, s.Cases, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "read suite file")
	})

	t.Run("bundled basic suite", func(t *testing.T) {
		s, err := LoadFromFile(filepath.Join("..", "..", "configs", "suites", "basic.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "basic", s.Name)
		assert.NotEmpty(t, s.Cases)
	})
}
