package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/diary/internal/server/config"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/dmitrijs2005/diary/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), config.DriverMemory, "")
	require.NoError(t, err)

	assert.Nil(t, s.DB)
	assert.Nil(t, s.Conn())
	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, s.Close())
	assert.IsType(t, &repomanager.MemoryRepositoryManager{}, s.Repos)
}

func TestOpen_SQLiteInMemoryRunsMigrations(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	repo := s.Repos.Entries(s.Conn())
	require.NoError(t, repo.Create(ctx, &models.Entry{Topic: "Topic", Body: "Body text."}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, s.Ping(ctx))
}

func TestOpen_SQLiteFileCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "diary.db")

	s, err := Open(ctx, config.DriverSQLite, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown database driver "oracle"`)
}

func TestOpen_PingFailureClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	orig := sqlOpen
	sqlOpen = func(driverName, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driverName)
		return db, nil
	}
	t.Cleanup(func() { sqlOpen = orig })

	_, err = Open(context.Background(), config.DriverPostgres, "postgres://x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db ping error: refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_OpenError(t *testing.T) {
	orig := sqlOpen
	sqlOpen = func(driverName, dsn string) (*sql.DB, error) {
		return nil, errors.New("no driver")
	}
	t.Cleanup(func() { sqlOpen = orig })

	_, err := Open(context.Background(), config.DriverPostgres, "postgres://x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db open error")
}
