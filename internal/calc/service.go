package calc

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/calc-tree/internal/apperr"
	"github.com/DjordjeVuckovic/calc-tree/internal/domain"
	"github.com/DjordjeVuckovic/calc-tree/internal/eval"
	"github.com/DjordjeVuckovic/calc-tree/internal/storage"
	"github.com/google/uuid"
)

// Service evaluates expressions and records every attempt in an optional history store.
type Service struct {
	calc  *Calculator
	store storage.Storer
	now   func() time.Time
}

type ServiceOption func(*Service)

// WithHistory records evaluations in store. A nil store disables recording.
func WithHistory(store storage.Storer) ServiceOption {
	return func(s *Service) {
		s.store = store
	}
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(c *Calculator, opts ...ServiceOption) *Service {
	if c == nil {
		c = NewCalculator()
	}
	s := &Service{calc: c, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate runs the pipeline on expression. The returned record describes the
// outcome either way; err is the calculation error, if any. Failing to record
// history is logged and does not affect the outcome.
func (s *Service) Evaluate(ctx context.Context, expression string) (domain.Evaluation, error) {
	record := domain.Evaluation{
		ID:         uuid.New(),
		Expression: expression,
		CreatedAt:  s.now().UTC(),
	}

	value, err := s.run(&record)
	if err != nil {
		record.Error = err.Error()
		if kind, ok := apperr.KindOf(err); ok {
			record.ErrorKind = string(kind)
		}
	} else {
		record.Display = FormatResult(value)
		if IsFinite(value) {
			record.Result = &value
		}
	}

	if s.store != nil {
		if _, saveErr := s.store.Save(ctx, record); saveErr != nil {
			slog.Warn("Failed to record evaluation", "id", record.ID, "error", saveErr)
		}
	}

	return record, err
}

func (s *Service) run(record *domain.Evaluation) (float64, error) {
	root, err := s.calc.Parse(record.Expression)
	if err != nil {
		return 0, err
	}
	record.Tree = root.String()
	return eval.Evaluate(root)
}

func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// FormatResult renders a value the way the REPL prints it: integral values keep
// a trailing ".0", very large or very small magnitudes use exponent notation,
// non-finite values print as inf, -inf and nan.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
