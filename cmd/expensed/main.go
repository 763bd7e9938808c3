package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// @title Expense Tracker API
// @version 1.0
// @description Records personal expenses and reports totals per category.

// @host localhost:4000
// @BasePath /api

var (
	// version is set at build time with -ldflags "-X main.version=..."
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "expensed",
		Short: "Expense tracker HTTP service",
		Long: `expensed stores expense records in PostgreSQL or SQLite and serves
them over a JSON HTTP API under /api.

Running it without a subcommand starts the server.`,
		SilenceUsage: true,
		RunE:         runServe,
	}
)

func init() {
	config.SetDefaults()

	rootCmd.PersistentFlags().String("database-url", "", "database URL (postgres://... or sqlite://path); overrides DATABASE_URL")
	rootCmd.PersistentFlags().String("port", "", "listen port; overrides PORT")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	_ = viper.BindPFlag("DATABASE_URL", rootCmd.PersistentFlags().Lookup("database-url"))
	_ = viper.BindPFlag("PORT", rootCmd.PersistentFlags().Lookup("port"))
	_ = viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "expensed %s\n", version)
		},
	}
}
