// Package validation holds the field rules for diary entries. The server
// (request DTOs and service) and the terminal client (entry form) check
// input against the same Rule values, so bounds and messages cannot drift.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rule describes a trimmed, length-bounded string field.
type Rule struct {
	// Field is the JSON name of the field.
	Field string
	// Label is the human-readable name used in messages.
	Label string
	// Min and Max are inclusive bounds on the trimmed length in runes.
	Min int
	Max int
}

var (
	// TopicRule bounds the topic of an entry.
	TopicRule = Rule{Field: "topic", Label: "Topic", Min: 3, Max: 25}
	// BodyRule bounds the body of an entry.
	BodyRule = Rule{Field: "body", Label: "Body", Min: 10, Max: 1000}
)

// Rules lists every entry rule in form order.
var Rules = []Rule{TopicRule, BodyRule}

// Check trims value and tests it against the rule. It returns the trimmed
// value and an empty message when the value is acceptable.
func (r Rule) Check(value string) (string, string) {
	trimmed := strings.TrimSpace(value)
	n := utf8.RuneCountInString(trimmed)

	switch {
	case n == 0:
		return trimmed, fmt.Sprintf("%s is required and cannot be empty or only whitespace", r.Label)
	case n < r.Min:
		return trimmed, fmt.Sprintf("%s must be at least %d characters", r.Label, r.Min)
	case n > r.Max:
		return trimmed, fmt.Sprintf("%s must be %d characters or less", r.Label, r.Max)
	}
	return trimmed, ""
}

// Counter renders the "used/max" hint shown next to a form field.
func (r Rule) Counter(value string) string {
	return fmt.Sprintf("%d/%d", utf8.RuneCountInString(strings.TrimSpace(value)), r.Max)
}
