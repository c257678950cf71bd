package entries

import (
	"context"

	"github.com/dmitrijs2005/diary/internal/server/models"
)

// Repository persists diary entry rows. Lookups, updates and deletes of an
// absent id return common.ErrorNotFound.
type Repository interface {
	// Create inserts e, assigning a new UUID when e.ID is empty.
	Create(ctx context.Context, e *models.Entry) error
	// List returns every row, newest first (created_at DESC, id DESC).
	List(ctx context.Context) ([]*models.Entry, error)
	GetByID(ctx context.Context, id string) (*models.Entry, error)
	// Update rewrites topic, body and updated_at of the row with e.ID.
	Update(ctx context.Context, e *models.Entry) error
	Delete(ctx context.Context, id string) error
}

type rowScanner interface {
	Scan(dest ...any) error
}
