package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/expense_tracker/internal/platform/config"
)

// newLogger builds the JSON process logger and makes it the slog default.
func newLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return logger
}
