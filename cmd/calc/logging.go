package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger logs to console and, when cfg.LogFile is set, to that file.
// The file is truncated on every start.
func newLogger(cfg *Config, console io.Writer) (*slog.Logger, func() error, error) {
	w := console
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
		}
		w = io.MultiWriter(console, f)
		closeFn = f.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(handler), closeFn, nil
}
