// Package state holds the client's view of the diary: the fetched entries
// and the loading, submitting and error flags the UI renders from.
package state

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/diary/internal/client/models"
	"github.com/morikuni/failure"
)

// Messages shown when an error carries no message of its own.
const (
	MsgLoadFailed   = "Failed to load diary entries. Please try again later."
	MsgCreateFailed = "Failed to create diary entry. Please try again."
	MsgUpdateFailed = "Failed to update diary entry. Please try again."
	MsgDeleteFailed = "Failed to delete diary entry. Please try again."
)

// ErrBusy is returned when a create or update is started while another one
// is still in flight.
var ErrBusy = errors.New("a submission is already in progress")

// API is the subset of the HTTP client the store needs.
type API interface {
	List(ctx context.Context) ([]models.Entry, error)
	Create(ctx context.Context, in models.EntryInput) (*models.Entry, error)
	Update(ctx context.Context, id string, patch models.EntryPatch) (*models.Entry, error)
	Delete(ctx context.Context, id string) error
}

// Snapshot is a copy of the store state at one point in time.
type Snapshot struct {
	Entries    []models.Entry
	Loading    bool
	Submitting bool
	Error      string
}

// Store is the single source of truth for the entry list. Local state is
// changed only after the server confirmed a mutation.
type Store struct {
	api API

	mu         sync.Mutex
	entries    []models.Entry
	loading    bool
	submitting bool
	err        string
}

func NewStore(api API) *Store {
	return &Store{api: api, entries: []models.Entry{}}
}

// Load fetches the full list. On failure the collection is emptied.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	list, err := s.api.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.entries = []models.Entry{}
		s.err = errorMessage(err, MsgLoadFailed)
		return fmt.Errorf("load entries: %w", err)
	}
	s.entries = list
	return nil
}

// Create saves d and prepends the server's entry to the collection.
func (s *Store) Create(ctx context.Context, d Draft) (*models.Entry, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	e, err := s.api.Create(ctx, models.EntryInput{Topic: d.Topic, Body: d.Body})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		s.err = errorMessage(err, MsgCreateFailed)
		return nil, fmt.Errorf("create entry: %w", err)
	}
	s.entries = append([]models.Entry{*e}, s.entries...)
	return e, nil
}

// Update saves d over the entry id and replaces the local copy.
func (s *Store) Update(ctx context.Context, id string, d Draft) (*models.Entry, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	e, err := s.api.Update(ctx, id, models.EntryPatch{Topic: &d.Topic, Body: &d.Body})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		s.err = errorMessage(err, MsgUpdateFailed)
		return nil, fmt.Errorf("update entry %s: %w", id, err)
	}
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i] = *e
		}
	}
	return e, nil
}

// Delete removes the entry id. It does not mark the store as submitting.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()

	err := s.api.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = errorMessage(err, MsgDeleteFailed)
		return fmt.Errorf("delete entry %s: %w", id, err)
	}
	s.entries = slices.DeleteFunc(s.entries, func(e models.Entry) bool { return e.ID == id })
	return nil
}

// Submit validates the form and creates or updates accordingly. A
// validation failure is returned as is and leaves the store untouched.
func (s *Store) Submit(ctx context.Context, f Form) (*models.Entry, error) {
	switch f := f.(type) {
	case Draft:
		d, err := f.Validate()
		if err != nil {
			return nil, err
		}
		return s.Create(ctx, d)
	case Saved:
		d, err := f.Draft().Validate()
		if err != nil {
			return nil, err
		}
		return s.Update(ctx, f.Entry.ID, d)
	default:
		return nil, fmt.Errorf("unknown form %T", f)
	}
}

func (s *Store) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Entries:    slices.Clone(s.entries),
		Loading:    s.loading,
		Submitting: s.submitting,
		Error:      s.err,
	}
}

// begin clears the error and marks the store as submitting.
func (s *Store) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return ErrBusy
	}
	s.err = ""
	s.submitting = true
	return nil
}

func errorMessage(err error, fallback string) string {
	if msg, ok := failure.MessageOf(err); ok && msg != "" {
		return msg
	}
	return fallback
}
