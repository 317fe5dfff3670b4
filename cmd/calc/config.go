package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/calc-tree/pkg/config/env"
)

const (
	defaultLogFile = "calc.log"
	defaultPrompt  = "> "
)

type Config struct {
	Prompt   string
	LogFile  string
	LogLevel slog.Level
	Trace    bool
}

// LoadConfig reads the CLI settings from the environment and the optional .env file.
// An explicitly empty LOG_FILE disables file logging. CALC_TRACE forces debug level.
func LoadConfig(envName string) (*Config, error) {
	if err := env.LoadDotEnv(envName, "cmd/calc/.env"); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	level, err := parseLevel(env.String("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Prompt:   defaultPrompt,
		LogFile:  defaultLogFile,
		LogLevel: level,
		Trace:    env.Bool("CALC_TRACE", false),
	}
	if v, ok := os.LookupEnv("CALC_PROMPT"); ok && v != "" {
		cfg.Prompt = v
	}
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	if cfg.Trace {
		cfg.LogLevel = slog.LevelDebug
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q, expected one of debug, info, warn, error", s)
	}
	return level, nil
}
