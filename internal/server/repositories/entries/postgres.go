// Package entries provides the diary entry repositories: PostgreSQL and
// SQLite implementations over a dbx.DBTX, plus an in-memory one.
package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/dbx"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const postgresSelect = `SELECT id, topic, body, created_at, updated_at FROM diary_entries`

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, e *models.Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `INSERT INTO diary_entries (id, topic, body, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, e.ID, e.Topic, e.Body, e.CreatedAt, e.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

// List returns all rows, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, postgresSelect+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Entry, 0)
	for rows.Next() {
		item, err := scanPostgres(rows)
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

// GetByID returns the row with the given id. Ids that are not UUIDs cannot
// exist in the table and yield common.ErrorNotFound without a query.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	row := r.db.QueryRowContext(ctx, postgresSelect+` WHERE id = $1`, id)
	e, err := scanPostgres(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return e, nil
}

// Update rewrites the mutable columns of an existing row.
func (r *PostgresRepository) Update(ctx context.Context, e *models.Entry) error {
	if _, err := uuid.Parse(e.ID); err != nil {
		return common.ErrorNotFound
	}
	query := `UPDATE diary_entries SET topic = $2, body = $3, updated_at = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, e.ID, e.Topic, e.Body, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	return expectOneRow(res)
}

// Delete removes the row with the given id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM diary_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return expectOneRow(res)
}

func scanPostgres(s rowScanner) (*models.Entry, error) {
	var e models.Entry
	if err := s.Scan(&e.ID, &e.Topic, &e.Body, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
