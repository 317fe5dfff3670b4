package suite

import "github.com/DjordjeVuckovic/calc-tree/internal/apperr"

// Suite is a named list of expressions with their expected outcome.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Warmup      int    `yaml:"warmup,omitempty"`
	Iterations  int    `yaml:"iterations,omitempty"`
	Cases       []Case `yaml:"cases"`
}

type Case struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description,omitempty"`
	Expression  string      `yaml:"expression"`
	Expect      *float64    `yaml:"expect,omitempty"`
	ExpectError apperr.Kind `yaml:"expect_error,omitempty"`
}

// ExpectsError reports whether the case must fail.
func (c Case) ExpectsError() bool {
	return c.ExpectError != ""
}
