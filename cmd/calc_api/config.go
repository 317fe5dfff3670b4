package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/calc-tree/internal/storage"
	"github.com/DjordjeVuckovic/calc-tree/internal/storage/factory"
	"github.com/DjordjeVuckovic/calc-tree/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcApiConfig struct {
	StorageConfig factory.StorageConfig
	LogLevel      slog.Level
}

func (as *AppConfig) Load() (*CalcApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(env.String("LOG_LEVEL", "info"))); err != nil {
		slog.Warn("Invalid LOG_LEVEL, using info", "error", err)
		level = slog.LevelInfo
	}

	storageCfg, err := factory.LoadEnv(storage.InMem)
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &CalcApiConfig{
		StorageConfig: *storageCfg,
		LogLevel:      level,
	}, nil
}
