package entries

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract exercises behaviour every Repository must share.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 123456000, time.UTC)

	t.Run("create then get round-trips", func(t *testing.T) {
		r := newRepo(t)
		e := &models.Entry{Topic: "Morning", Body: "Coffee and a long walk.", CreatedAt: base, UpdatedAt: base}
		require.NoError(t, r.Create(ctx, e))
		require.NotEmpty(t, e.ID)

		got, err := r.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.Topic, got.Topic)
		assert.Equal(t, e.Body, got.Body)
		assert.True(t, got.CreatedAt.Equal(base), "created_at %v", got.CreatedAt)
		assert.True(t, got.UpdatedAt.Equal(base), "updated_at %v", got.UpdatedAt)
	})

	t.Run("list is newest first with id tiebreak", func(t *testing.T) {
		r := newRepo(t)
		for _, e := range []*models.Entry{
			{ID: "a", Topic: "First", Body: "first body text", CreatedAt: base, UpdatedAt: base},
			{ID: "c", Topic: "Tied", Body: "tied body text", CreatedAt: base.Add(time.Hour), UpdatedAt: base},
			{ID: "b", Topic: "Tied", Body: "tied body text", CreatedAt: base.Add(time.Hour), UpdatedAt: base},
		} {
			require.NoError(t, r.Create(ctx, e))
		}

		got, err := r.List(ctx)
		require.NoError(t, err)
		ids := make([]string, 0, len(got))
		for _, e := range got {
			ids = append(ids, e.ID)
		}
		assert.Equal(t, []string{"c", "b", "a"}, ids)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		got, err := newRepo(t).List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("update rewrites mutable columns", func(t *testing.T) {
		r := newRepo(t)
		e := &models.Entry{Topic: "Old topic", Body: "Old body text", CreatedAt: base, UpdatedAt: base}
		require.NoError(t, r.Create(ctx, e))

		later := base.Add(time.Minute)
		require.NoError(t, r.Update(ctx, &models.Entry{ID: e.ID, Topic: "New topic", Body: "New body text", UpdatedAt: later}))

		got, err := r.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, "New topic", got.Topic)
		assert.Equal(t, "New body text", got.Body)
		assert.True(t, got.CreatedAt.Equal(base))
		assert.True(t, got.UpdatedAt.Equal(later))
	})

	t.Run("missing ids are not found", func(t *testing.T) {
		r := newRepo(t)
		_, err := r.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, common.ErrorNotFound)
		assert.ErrorIs(t, r.Update(ctx, &models.Entry{ID: "missing"}), common.ErrorNotFound)
		assert.ErrorIs(t, r.Delete(ctx, "missing"), common.ErrorNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		r := newRepo(t)
		e := &models.Entry{Topic: "Gone", Body: "Soon to be deleted", CreatedAt: base, UpdatedAt: base}
		require.NoError(t, r.Create(ctx, e))

		require.NoError(t, r.Delete(ctx, e.ID))
		_, err := r.GetByID(ctx, e.ID)
		assert.ErrorIs(t, err, common.ErrorNotFound)
		assert.ErrorIs(t, r.Delete(ctx, e.ID), common.ErrorNotFound)
	})
}

func TestMemoryRepository_Contract(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) Repository { return NewMemoryRepository() })
}

func TestSQLiteRepository_Contract(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) Repository { return NewSQLiteRepository(setupSQLite(t)) })
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	e := &models.Entry{Topic: "Topic", Body: "Body text."}
	require.NoError(t, r.Create(ctx, e))

	got, err := r.GetByID(ctx, e.ID)
	require.NoError(t, err)
	got.Topic = "mutated"

	again, err := r.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Topic", again.Topic)
}

func newTestEntry() *models.Entry {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 1000, time.UTC)
	return &models.Entry{Topic: "Topic", Body: "Body text.", CreatedAt: ts, UpdatedAt: ts}
}
