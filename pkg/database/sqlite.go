package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const sqliteParams = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite"

// SQLiteDSN appends the connection parameters every SQLite handle uses.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteParams
	}
	return path + "?" + sqliteParams
}

// OpenSQLite opens the database file at path. A single connection is kept
// so writers never contend for the file lock.
func OpenSQLite(ctx context.Context, path string, ping bool) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}
	db, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if ping {
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
		}
		slog.Info("Successfully opened SQLite database", slog.String("path", path))
	}
	return db, nil
}

// CloseSQLite closes the handle opened by OpenSQLite.
func CloseSQLite(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		slog.Warn("Failed to close SQLite database", slog.String("error", err.Error()))
		return
	}
	slog.Info("SQLite database closed")
}
