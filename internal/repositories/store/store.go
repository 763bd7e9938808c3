// Package store opens the storage backend named by a database URL and wires
// its repositories.
package store

import (
	"context"
	"fmt"
	"strings"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/sqlite"
	"github.com/SscSPs/expense_tracker/pkg/database"
)

// Backend identifies a storage engine.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// ParseURL picks the backend for a database URL. For SQLite the returned
// target is the file path; for PostgreSQL it is the URL unchanged.
func ParseURL(databaseURL string) (Backend, string, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return BackendPostgres, databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite database URL has no path")
		}
		return BackendSQLite, path, nil
	case databaseURL == "":
		return "", "", fmt.Errorf("database URL cannot be empty")
	default:
		return "", "", fmt.Errorf("unsupported database URL scheme in %q", Redact(databaseURL))
	}
}

// Store is an open storage handle plus the repositories built on it.
type Store struct {
	Backend Backend
	Repos   portsrepo.RepositoryProvider
	close   func()
}

// Open connects to the backend. When ping is true the connection is
// verified before returning.
func Open(ctx context.Context, databaseURL string, ping bool) (*Store, error) {
	backend, target, err := ParseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendSQLite:
		db, err := database.OpenSQLite(ctx, target, ping)
		if err != nil {
			return nil, err
		}
		return &Store{
			Backend: backend,
			Repos:   sqlite.NewRepositoryProvider(db),
			close:   func() { database.CloseSQLite(db) },
		}, nil
	default:
		pool, err := database.NewPgxPool(ctx, target, ping)
		if err != nil {
			return nil, err
		}
		return &Store{
			Backend: backend,
			Repos:   pgsql.NewRepositoryProvider(pool),
			close:   func() { database.ClosePgxPool(pool) },
		}, nil
	}
}

// Close releases the storage handle. Safe to call more than once.
func (s *Store) Close() {
	if s == nil || s.close == nil {
		return
	}
	s.close()
	s.close = nil
}

// Migrate brings the schema of the backend up to date.
func Migrate(databaseURL string) error {
	backend, target, err := ParseURL(databaseURL)
	if err != nil {
		return err
	}
	if backend == BackendSQLite {
		return database.MigrateSQLite(target, sqlite.MigrationsFS)
	}
	return database.MigratePostgres(target, pgsql.MigrationsFS)
}

// Redact hides the password of a URL in log and error output.
func Redact(databaseURL string) string {
	at := strings.LastIndex(databaseURL, "@")
	scheme := strings.Index(databaseURL, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return databaseURL
	}
	creds := databaseURL[scheme+3 : at]
	if colon := strings.Index(creds, ":"); colon >= 0 {
		return databaseURL[:scheme+3] + creds[:colon] + ":***" + databaseURL[at:]
	}
	return databaseURL
}
