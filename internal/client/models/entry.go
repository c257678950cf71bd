// Package models defines the diary entry shapes the client exchanges with
// the API.
package models

import "time"

// Entry is a saved diary entry as returned by the API.
type Entry struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntryInput is the body of a create request.
type EntryInput struct {
	Topic string `json:"topic"`
	Body  string `json:"body"`
}

// EntryPatch is the body of an update request. Nil fields are omitted.
type EntryPatch struct {
	Topic *string `json:"topic,omitempty"`
	Body  *string `json:"body,omitempty"`
}
