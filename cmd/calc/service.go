package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/calc-tree/internal/calc"
	"github.com/DjordjeVuckovic/calc-tree/internal/parser"
	"github.com/DjordjeVuckovic/calc-tree/internal/storage"
	"github.com/DjordjeVuckovic/calc-tree/internal/storage/factory"
)

// newService builds the calculator service. History is recorded only when
// STORAGE_TYPE selects a backend.
func newService(ctx context.Context, logger *slog.Logger, trace bool) (*calc.Service, func(), error) {
	var builderOpts []parser.TreeBuilderOption
	if trace {
		builderOpts = append(builderOpts, parser.WithTracer(parser.NewSlogTracer(logger)))
	}

	storageCfg, err := factory.LoadEnv(storage.None)
	if err != nil {
		return nil, nil, err
	}

	store, err := factory.NewStore(ctx, *storageCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create history store: %w", err)
	}

	var opts []calc.ServiceOption
	cleanup := func() {}
	if store != nil {
		opts = append(opts, calc.WithHistory(store))
		cleanup = func() {
			if err := store.Close(); err != nil {
				logger.Warn("Failed to close history store", "error", err)
			}
		}
	}

	return calc.NewService(calc.NewCalculator(builderOpts...), opts...), cleanup, nil
}
