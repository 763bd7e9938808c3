package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// MigratePostgres applies every pending up migration found under
// "migrations" in src.
func MigratePostgres(databaseURL string, src fs.FS) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to create postgres migration driver: %w", err)
	}
	return runMigrations(src, "postgres", driver)
}

// MigrateSQLite is MigratePostgres for a SQLite file. It opens its own
// handle because the migrate driver closes the database when done.
func MigrateSQLite(path string, src fs.FS) error {
	db, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return fmt.Errorf("failed to open sqlite database for migrations: %w", err)
	}
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to create sqlite migration driver: %w", err)
	}
	return runMigrations(src, "sqlite", driver)
}

func runMigrations(src fs.FS, dbName string, driver database.Driver) error {
	source, err := iofs.New(src, "migrations")
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dbName, driver)
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			slog.Warn("Error closing migrate instance", slog.Any("source_error", srcErr), slog.Any("database_error", dbErr))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("No new migrations to apply", slog.String("database", dbName))
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	slog.Info("Database migrations applied", slog.String("database", dbName), slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return nil
}
