package validation

import (
	"strings"

	"github.com/dmitrijs2005/diary/internal/common"
)

// FieldError is a single rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates every violation found in one input.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Unwrap lets callers match any validation failure with errors.Is.
func (e *Error) Unwrap() error {
	return common.ErrorValidation
}

// Messages returns the violation messages in the order they were found.
func (e *Error) Messages() []string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

// Collector accumulates violations across several fields.
type Collector struct {
	fields []FieldError
}

// Required checks value against r and returns the trimmed value.
func (c *Collector) Required(r Rule, value string) string {
	trimmed, msg := r.Check(value)
	if msg != "" {
		c.fields = append(c.fields, FieldError{Field: r.Field, Message: msg})
	}
	return trimmed
}

// Optional checks value only when it is supplied. A nil value stays nil.
func (c *Collector) Optional(r Rule, value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := c.Required(r, *value)
	return &trimmed
}

// Add records an arbitrary violation, e.g. a field of the wrong JSON type.
func (c *Collector) Add(field, msg string) {
	c.fields = append(c.fields, FieldError{Field: field, Message: msg})
}

// Err returns nil when nothing was collected.
func (c *Collector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Fields: c.fields}
}
