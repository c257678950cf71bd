// Package services implements the diary business rules on top of the
// repositories: validation, timestamps, not-found translation and audit
// logging.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/dbx"
	"github.com/dmitrijs2005/diary/internal/logging"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/dmitrijs2005/diary/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/diary/internal/timex"
	"github.com/dmitrijs2005/diary/internal/validation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/dmitrijs2005/diary/internal/server/services")

type EntryService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

// NewEntryService binds the service to a database handle (nil for the
// memory backend) and the repositories that understand it.
func NewEntryService(db dbx.DBTX, repomanager repomanager.RepositoryManager, logger logging.Logger) *EntryService {
	return &EntryService{
		db:          db,
		repomanager: repomanager,
		logger:      logger.With("component", "entry_service"),
		now:         time.Now,
	}
}

func (s *EntryService) clock() time.Time {
	return timex.UTCMicro(s.now())
}

// Create validates input and stores a new entry whose timestamps are both
// set to the current time.
func (s *EntryService) Create(ctx context.Context, in CreateEntryInput) (_ *Entry, err error) {
	ctx, span := startSpan(ctx, "EntryService.Create")
	defer func() { endSpan(span, err) }()

	var c validation.Collector
	topic := c.Required(validation.TopicRule, in.Topic)
	body := c.Required(validation.BodyRule, in.Body)
	if err := c.Err(); err != nil {
		return nil, err
	}

	now := s.clock()
	row := &models.Entry{Topic: topic, Body: body, CreatedAt: now, UpdatedAt: now}
	if err := s.repomanager.Entries(s.db).Create(ctx, row); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	span.SetAttributes(attribute.String("entry.id", row.ID))
	s.logger.Info(ctx, "entry created", "entry_id", row.ID)
	return entryFromModel(row), nil
}

// List returns every entry, newest first. The result is never nil.
func (s *EntryService) List(ctx context.Context) (_ []*Entry, err error) {
	ctx, span := startSpan(ctx, "EntryService.List")
	defer func() { endSpan(span, err) }()

	rows, err := s.repomanager.Entries(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	result := make([]*Entry, 0, len(rows))
	for _, r := range rows {
		result = append(result, entryFromModel(r))
	}
	span.SetAttributes(attribute.Int("entry.count", len(result)))
	s.logger.Debug(ctx, "entries listed", "count", len(result))
	return result, nil
}

// Get returns one entry or a *NotFoundError.
func (s *EntryService) Get(ctx context.Context, id string) (_ *Entry, err error) {
	ctx, span := startSpan(ctx, "EntryService.Get", attribute.String("entry.id", id))
	defer func() { endSpan(span, err) }()

	row, err := s.repomanager.Entries(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, translate(id, err, "get entry")
	}
	return entryFromModel(row), nil
}

// Update applies the supplied fields of in. The read and the write share a
// transaction. The new updatedAt is strictly after the previous one, even
// when the clock has not moved, and is refreshed when in is empty.
func (s *EntryService) Update(ctx context.Context, id string, in UpdateEntryInput) (_ *Entry, err error) {
	ctx, span := startSpan(ctx, "EntryService.Update", attribute.String("entry.id", id))
	defer func() { endSpan(span, err) }()

	var c validation.Collector
	topic := c.Optional(validation.TopicRule, in.Topic)
	body := c.Optional(validation.BodyRule, in.Body)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var updated *models.Entry
	err = dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Entries(tx)

		row, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if topic != nil {
			row.Topic = *topic
		}
		if body != nil {
			row.Body = *body
		}

		ts := s.clock()
		if !ts.After(row.UpdatedAt) {
			ts = row.UpdatedAt.Add(time.Microsecond)
		}
		row.UpdatedAt = ts

		if err := repo.Update(ctx, row); err != nil {
			return err
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, translate(id, err, "update entry")
	}

	s.logger.Info(ctx, "entry updated", "entry_id", id,
		"topic_changed", topic != nil, "body_changed", body != nil)
	return entryFromModel(updated), nil
}

// Delete removes an entry permanently or returns a *NotFoundError.
func (s *EntryService) Delete(ctx context.Context, id string) (err error) {
	ctx, span := startSpan(ctx, "EntryService.Delete", attribute.String("entry.id", id))
	defer func() { endSpan(span, err) }()

	if err := s.repomanager.Entries(s.db).Delete(ctx, id); err != nil {
		return translate(id, err, "delete entry")
	}

	s.logger.Info(ctx, "entry deleted", "entry_id", id)
	return nil
}

func translate(id string, err error, op string) error {
	if errors.Is(err, common.ErrorNotFound) {
		return &NotFoundError{ID: id}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan marks the span failed for store faults only; validation and
// not-found outcomes are client errors.
func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, common.ErrorValidation) && !errors.Is(err, common.ErrorNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
