// Package storage opens the diary database selected by configuration and
// pairs it with the matching repository manager.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/diary/internal/dbx"
	"github.com/dmitrijs2005/diary/internal/filex"
	"github.com/dmitrijs2005/diary/internal/server/config"
	"github.com/dmitrijs2005/diary/internal/server/repositories/repomanager"
)

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Store is an open database plus the repositories that understand it.
// DB is nil for the memory driver.
type Store struct {
	DB    *sql.DB
	Repos repomanager.RepositoryManager
}

// Open connects to the database for driver, checks it is reachable and
// applies pending migrations. On failure the connection is closed.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	var (
		sqlDriver string
		repos     repomanager.RepositoryManager
	)

	switch driver {
	case config.DriverMemory:
		return &Store{Repos: repomanager.NewMemoryRepositoryManager()}, nil
	case config.DriverSQLite:
		if path, ok := filex.SQLiteFile(dsn); ok {
			if err := filex.EnsureParentDir(path); err != nil {
				return nil, fmt.Errorf("db dir error: %w", err)
			}
		}
		sqlDriver, repos = "sqlite", repomanager.NewSQLiteRepositoryManager()
	case config.DriverPostgres:
		sqlDriver, repos = "pgx", repomanager.NewPostgresRepositoryManager()
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}

	db, err := sqlOpen(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if driver == config.DriverSQLite {
		// One writer at a time; also keeps ":memory:" databases on a single connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := repos.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Store{DB: db, Repos: repos}, nil
}

// Conn returns the handle repositories should be bound to, or nil for the
// memory driver.
func (s *Store) Conn() dbx.DBTX {
	if s.DB == nil {
		return nil
	}
	return s.DB
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.PingContext(ctx)
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
