package sqlite

import "embed"

// MigrationsFS holds the SQLite schema migrations.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
