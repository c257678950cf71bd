package entries

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps rows in a map. It backs the "memory" driver and
// service tests. Returned rows are copies.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]models.Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string]models.Entry)}
}

func (r *MemoryRepository) Create(_ context.Context, e *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	r.rows[e.ID] = *e
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Entry, 0, len(r.rows))
	for _, row := range r.rows {
		e := row
		result = append(result, &e)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &row, nil
}

func (r *MemoryRepository) Update(_ context.Context, e *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[e.ID]
	if !ok {
		return common.ErrorNotFound
	}
	row.Topic = e.Topic
	row.Body = e.Body
	row.UpdatedAt = e.UpdatedAt
	r.rows[e.ID] = row
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.rows, id)
	return nil
}
