package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/diary/internal/server/migrations"
	"github.com/dmitrijs2005/diary/internal/server/repositories/entries"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	assert.IsType(t, &entries.PostgresRepository{}, NewPostgresRepositoryManager().Entries(db))
	assert.IsType(t, &entries.SQLiteRepository{}, NewSQLiteRepositoryManager().Entries(db))
	assert.IsType(t, &entries.MemoryRepository{}, NewMemoryRepositoryManager().Entries(nil))
}

func TestMemoryManager_SharesRepository(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewMemoryRepositoryManager()
	assert.Same(t, m.Entries(nil), m.Entries(db))
	assert.NoError(t, m.RunMigrations(context.Background(), nil))
}

func TestRunMigrations_UsesDialectDirectory(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	tests := []struct {
		name    string
		manager RepositoryManager
		wantDir string
	}{
		{name: "postgres", manager: NewPostgresRepositoryManager(), wantDir: migrations.PostgresDir},
		{name: "sqlite", manager: NewSQLiteRepositoryManager(), wantDir: migrations.SQLiteDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := gooseUpContext
			defer func() { gooseUpContext = orig }()

			var gotDir string
			gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
				gotDir = dir
				if len(opts) != 0 {
					return errors.New("unexpected opts")
				}
				return nil
			}

			require.NoError(t, tt.manager.RunMigrations(context.Background(), db))
			assert.Equal(t, tt.wantDir, gotDir)
		})
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
