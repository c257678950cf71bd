package services

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/server/models"
)

// Entry is the domain view of a diary entry handed to transports.
type Entry struct {
	ID        string
	Topic     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateEntryInput carries the untrimmed fields of a new entry.
type CreateEntryInput struct {
	Topic string
	Body  string
}

// UpdateEntryInput carries a partial update. A nil field is left unchanged.
type UpdateEntryInput struct {
	Topic *string
	Body  *string
}

// NotFoundError reports an id with no stored entry.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(common.EntryNotFoundFormat, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return common.ErrorNotFound
}

func entryFromModel(m *models.Entry) *Entry {
	return &Entry{
		ID:        m.ID,
		Topic:     m.Topic,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
