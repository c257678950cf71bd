// Package models holds the persisted row shapes of the diary store.
package models

import "time"

// Entry is one row of the diary_entries table. Timestamps are UTC with
// microsecond precision.
type Entry struct {
	ID        string
	Topic     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
