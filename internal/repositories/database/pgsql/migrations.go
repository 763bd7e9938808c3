package pgsql

import "embed"

// MigrationsFS holds the PostgreSQL schema migrations.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
