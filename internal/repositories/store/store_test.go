package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		url         string
		wantBackend Backend
		wantTarget  string
		wantErr     bool
	}{
		{url: "postgres://u:p@localhost:5432/db", wantBackend: BackendPostgres, wantTarget: "postgres://u:p@localhost:5432/db"},
		{url: "postgresql://localhost/db", wantBackend: BackendPostgres, wantTarget: "postgresql://localhost/db"},
		{url: "sqlite://./data/expenses.db", wantBackend: BackendSQLite, wantTarget: "./data/expenses.db"},
		{url: "sqlite:///var/lib/expenses.db", wantBackend: BackendSQLite, wantTarget: "/var/lib/expenses.db"},
		{url: "sqlite://", wantErr: true},
		{url: "mongodb://mongodb:27017/", wantErr: true},
		{url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			backend, target, err := ParseURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBackend, backend)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "postgres://postgres:***@db:5432/x", Redact("postgres://postgres:secret@db:5432/x"))
	assert.Equal(t, "sqlite://./x.db", Redact("sqlite://./x.db"))
}

func TestOpenSQLiteStore(t *testing.T) {
	url := "sqlite://" + filepath.Join(t.TempDir(), "expenses.db")
	require.NoError(t, Migrate(url))
	// a second run has nothing to apply
	require.NoError(t, Migrate(url))

	s, err := Open(context.Background(), url, true)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, BackendSQLite, s.Backend)
	require.NoError(t, s.Repos.Health.Ping(context.Background()))

	total, err := s.Repos.ExpenseRepo.TotalExpenses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), total.Count)

	s.Close()
	s.Close()
}
