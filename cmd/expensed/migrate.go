package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/repositories/store"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := newLogger(cfg)

			logger.Info("Running database migrations...", slog.String("database_url", store.Redact(cfg.DatabaseURL)))
			if err := store.Migrate(cfg.DatabaseURL); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("Database migrations applied successfully.")
			return nil
		},
	}
}
