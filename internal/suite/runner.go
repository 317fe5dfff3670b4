package suite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/DjordjeVuckovic/calc-tree/internal/apperr"
	"github.com/DjordjeVuckovic/calc-tree/internal/calc"
)

const relativeTolerance = 1e-9

type Evaluator interface {
	Evaluate(expression string) (float64, error)
}

type Runner struct {
	eval       Evaluator
	iterations int
}

type RunnerOption func(*Runner)

// WithIterations overrides the iteration count of the suite when n > 0.
func WithIterations(n int) RunnerOption {
	return func(r *Runner) {
		r.iterations = n
	}
}

func NewRunner(eval Evaluator, opts ...RunnerOption) *Runner {
	if eval == nil {
		eval = calc.NewCalculator()
	}
	r := &Runner{eval: eval}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type CaseResult struct {
	ID         string       `json:"id"`
	Expression string       `json:"expression"`
	Expected   string       `json:"expected"`
	Got        string       `json:"got"`
	Passed     bool         `json:"passed"`
	Latency    LatencyStats `json:"latency"`
}

type Report struct {
	Suite   string        `json:"suite"`
	Results []CaseResult  `json:"results"`
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
	Elapsed time.Duration `json:"elapsed"`
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

// Run evaluates every case of s and checks the outcome of the first
// evaluation against the expectation. Later iterations only add latency samples.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Report, error) {
	iterations := s.Iterations
	if r.iterations > 0 {
		iterations = r.iterations
	}
	if iterations <= 0 {
		iterations = defaultIterations
	}

	report := &Report{Suite: s.Name}
	start := time.Now()

	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("suite %q interrupted: %w", s.Name, err)
		}

		for i := 0; i < s.Warmup; i++ {
			_, _ = r.eval.Evaluate(c.Expression)
		}

		res := r.runCase(c, iterations)
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
			slog.Debug("Case failed", "id", c.ID, "expected", res.Expected, "got", res.Got)
		}
		report.Results = append(report.Results, res)
	}

	report.Elapsed = time.Since(start)
	return report, nil
}

func (r *Runner) runCase(c Case, iterations int) CaseResult {
	durations := make([]time.Duration, 0, iterations)

	var (
		value float64
		err   error
	)
	for i := 0; i < iterations; i++ {
		t0 := time.Now()
		v, e := r.eval.Evaluate(c.Expression)
		durations = append(durations, time.Since(t0))
		if i == 0 {
			value, err = v, e
		}
	}

	res := CaseResult{
		ID:         c.ID,
		Expression: c.Expression,
		Expected:   expected(c),
		Latency:    ComputeLatencyStats(durations),
	}

	if err != nil {
		kind, _ := apperr.KindOf(err)
		res.Got = "error: " + string(kind)
		res.Passed = c.ExpectsError() && errors.Is(err, kindSentinel(c.ExpectError))
		return res
	}

	res.Got = calc.FormatResult(value)
	res.Passed = c.Expect != nil && approxEqual(value, *c.Expect)
	return res
}

func expected(c Case) string {
	if c.ExpectsError() {
		return "error: " + string(c.ExpectError)
	}
	if c.Expect == nil {
		return "-"
	}
	return calc.FormatResult(*c.Expect)
}

func kindSentinel(k apperr.Kind) error {
	switch k {
	case apperr.KindParse:
		return apperr.ErrParse
	case apperr.KindStructure:
		return apperr.ErrStructure
	case apperr.KindDivisionByZero:
		return apperr.ErrDivisionByZero
	default:
		return nil
	}
}

func approxEqual(got, want float64) bool {
	if got == want {
		return true
	}
	return math.Abs(got-want) <= relativeTolerance*math.Max(1, math.Abs(want))
}
