package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/calc-tree/internal/apperr"
	"gopkg.in/yaml.v3"
)

const defaultIterations = 10

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *Suite) error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		switch {
		case c.Expect != nil && c.ExpectsError():
			return fmt.Errorf("case %q sets both expect and expect_error", c.ID)
		case c.Expect == nil && !c.ExpectsError():
			return fmt.Errorf("case %q sets neither expect nor expect_error", c.ID)
		}

		if c.ExpectsError() {
			if _, err := apperr.ParseKind(string(c.ExpectError)); err != nil {
				return fmt.Errorf("case %q: %w", c.ID, err)
			}
		}
	}

	if s.Warmup < 0 {
		return fmt.Errorf("warmup must not be negative, got %d", s.Warmup)
	}
	if s.Iterations <= 0 {
		s.Iterations = defaultIterations
	}
	return nil
}
