package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/diary/internal/dbx"
	"github.com/dmitrijs2005/diary/internal/server/repositories/entries"
)

// MemoryRepositoryManager hands out one shared in-memory repository no
// matter which DBTX it is given. There is nothing to migrate.
type MemoryRepositoryManager struct {
	entries *entries.MemoryRepository
}

func (m *MemoryRepositoryManager) Entries(dbx.DBTX) entries.Repository {
	return m.entries
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func NewMemoryRepositoryManager() RepositoryManager {
	return &MemoryRepositoryManager{entries: entries.NewMemoryRepository()}
}
