package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/dbx"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/google/uuid"
)

// sqliteTimeLayout stores UTC timestamps as fixed-width text, so string
// order equals time order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000Z"

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const sqliteSelect = `SELECT id, topic, body, created_at, updated_at FROM diary_entries`

func (r *SQLiteRepository) Create(ctx context.Context, e *models.Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `INSERT INTO diary_entries (id, topic, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Topic, e.Body, formatSQLiteTime(e.CreatedAt), formatSQLiteTime(e.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, sqliteSelect+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Entry, 0)
	for rows.Next() {
		item, err := scanSQLite(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	e, err := scanSQLite(r.db.QueryRowContext(ctx, sqliteSelect+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, e *models.Entry) error {
	query := `UPDATE diary_entries SET topic = ?, body = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, e.Topic, e.Body, formatSQLiteTime(e.UpdatedAt), e.ID)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM diary_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return expectOneRow(res)
}

func scanSQLite(s rowScanner) (*models.Entry, error) {
	var (
		e                models.Entry
		created, updated string
	)
	if err := s.Scan(&e.ID, &e.Topic, &e.Body, &created, &updated); err != nil {
		return nil, err
	}
	var err error
	if e.CreatedAt, err = time.Parse(sqliteTimeLayout, created); err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", created, err)
	}
	if e.UpdatedAt, err = time.Parse(sqliteTimeLayout, updated); err != nil {
		return nil, fmt.Errorf("bad updated_at %q: %w", updated, err)
	}
	return &e, nil
}

func formatSQLiteTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}
