package state

import (
	"github.com/dmitrijs2005/diary/internal/client/models"
	"github.com/dmitrijs2005/diary/internal/validation"
)

// Form is what the entry form submits: a Draft for a new entry or a Saved
// entry being edited.
type Form interface {
	form()
}

// Draft is an entry that has not been saved yet. It has no id.
type Draft struct {
	Topic string
	Body  string
}

// Saved is an existing entry with the edited topic and body.
type Saved struct {
	Entry models.Entry
}

func (Draft) form() {}
func (Saved) form() {}

// Edit opens an existing entry in the form.
func Edit(e models.Entry) Saved {
	return Saved{Entry: e}
}

// Draft returns the editable part of the entry.
func (s Saved) Draft() Draft {
	return Draft{Topic: s.Entry.Topic, Body: s.Entry.Body}
}

// Validate checks the draft against the entry rules and returns it trimmed.
// Every violation is reported in a single *validation.Error.
func (d Draft) Validate() (Draft, error) {
	var c validation.Collector
	out := Draft{
		Topic: c.Required(validation.TopicRule, d.Topic),
		Body:  c.Required(validation.BodyRule, d.Body),
	}
	return out, c.Err()
}
