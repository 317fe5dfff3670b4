package parser

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/calc-tree/internal/domain/tree"
	"github.com/DjordjeVuckovic/calc-tree/internal/token"
)

// Tracer observes tree construction. Implementations must not retain or
// modify the nodes they are given.
type Tracer interface {
	OnToken(tok token.Token)
	OnReduce(node *tree.Binary)
}

type NopTracer struct{}

func (NopTracer) OnToken(token.Token) {}
func (NopTracer) OnReduce(*tree.Binary) {}

// SlogTracer writes every construction step to a slog logger at debug level.
type SlogTracer struct {
	logger *slog.Logger
}

func NewSlogTracer(logger *slog.Logger) *SlogTracer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogTracer{logger: logger}
}

func (t *SlogTracer) OnToken(tok token.Token) {
	t.logger.LogAttrs(context.Background(), slog.LevelDebug, "consume token",
		slog.String("type", tok.Type.String()),
		slog.String("value", tok.Value),
	)
}

func (t *SlogTracer) OnReduce(node *tree.Binary) {
	ctx := context.Background()
	if !t.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	t.logger.LogAttrs(ctx, slog.LevelDebug, "applied operator, created subtree",
		slog.String("operator", node.Op.String()),
		slog.String("subtree", node.String()),
	)
}
