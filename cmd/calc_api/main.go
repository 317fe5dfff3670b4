// Package main Calc Tree API
// @title Calc Tree API
// @version 1.0
// @description Evaluates arithmetic expressions by building and walking a binary expression tree
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/calc-tree/docs"
	"github.com/DjordjeVuckovic/calc-tree/internal/calc"
	"github.com/DjordjeVuckovic/calc-tree/internal/router"
	"github.com/DjordjeVuckovic/calc-tree/internal/server"
	"github.com/DjordjeVuckovic/calc-tree/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/calc-tree/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	store, err := factory.NewStore(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create history store", "error", err)
		os.Exit(1)
	}

	var (
		serviceOpts []calc.ServiceOption
		routerOpts  []router.CalcRouterOption
	)
	if store != nil {
		serviceOpts = append(serviceOpts, calc.WithHistory(store))
		routerOpts = append(routerOpts, router.WithHistoryReader(store))
		slog.Info("History enabled", "storage", cfg.StorageConfig.Type)
	} else {
		slog.Info("History disabled")
	}

	s := server.New(sCfg, pkgserver.HealthCheckerOf(store)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Calc Tree API is running")
	})

	calcRouter := router.NewCalcRouter(s.Echo, calc.NewService(nil, serviceOpts...), routerOpts...)
	calcRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if store != nil {
		if cerr := store.Close(); cerr != nil {
			slog.Error("Failed to close history store", "error", cerr)
		}
	}
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
