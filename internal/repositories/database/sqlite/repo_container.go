// Package sqlite stores expenses in a local SQLite file through the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// Ping checks that the database file is usable.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping sqlite: %w", err)
	}
	return nil
}

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo: newSQLiteExpenseRepository(db),
		Health:      &BaseRepository{DB: db},
	}
}
