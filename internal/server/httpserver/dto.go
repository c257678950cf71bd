package httpserver

import (
	"time"

	"github.com/dmitrijs2005/diary/internal/server/services"
)

// CreateEntryRequest is the POST /entries body.
type CreateEntryRequest struct {
	Topic string `json:"topic" jsonschema:"description=The topic or title of the diary entry,example=My First Entry"`
	Body  string `json:"body" jsonschema:"description=The body content of the diary entry,example=This is my first diary entry."`
}

// UpdateEntryRequest is the PATCH /entries/{id} body. Every field is optional.
type UpdateEntryRequest struct {
	Topic *string `json:"topic,omitempty" jsonschema:"description=The topic or title of the diary entry"`
	Body  *string `json:"body,omitempty" jsonschema:"description=The body content of the diary entry"`
}

// EntryResponse is the wire form of an entry.
type EntryResponse struct {
	ID        string    `json:"id" jsonschema:"format=uuid"`
	Topic     string    `json:"topic"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ErrorResponse is the body of every non-2xx reply. Message is a list of
// strings for validation failures and a single string otherwise.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    any    `json:"message"`
	Error      string `json:"error,omitempty"`
}

func toEntryResponse(e *services.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Topic:     e.Topic,
		Body:      e.Body,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEntryResponses(es []*services.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, toEntryResponse(e))
	}
	return out
}
