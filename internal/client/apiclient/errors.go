package apiclient

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/morikuni/failure"
)

// Failure codes attached to every error returned by Client.
const (
	// CodeValidation: the server rejected the input (HTTP 400).
	CodeValidation failure.StringCode = "Validation"
	// CodeNotFound: the entry id does not exist (HTTP 404).
	CodeNotFound failure.StringCode = "NotFound"
	// CodeTransport: the request did not complete or the server failed.
	CodeTransport failure.StringCode = "Transport"
)

const (
	MsgTimeout     = "Request timed out. Please check your connection and try again."
	MsgUnreachable = "Unable to connect to the server. Please check your internet connection."
	msgFallback    = "An error occurred"
)

// Message returns the user-facing message carried by err.
func Message(err error) string {
	if msg, ok := failure.MessageOf(err); ok && msg != "" {
		return msg
	}
	return err.Error()
}

// errorMessage extracts the message of an error body: a string is used as
// is, a list is capitalized and joined with ". ".
func errorMessage(body []byte) string {
	var data struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &data); err != nil || len(data.Message) == 0 {
		return msgFallback
	}

	var s string
	if err := json.Unmarshal(data.Message, &s); err == nil {
		return s
	}

	var list []any
	if err := json.Unmarshal(data.Message, &list); err != nil {
		return msgFallback
	}
	msgs := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			msgs = append(msgs, capitalize(s))
		}
	}
	if len(msgs) == 0 {
		return msgFallback
	}
	return strings.Join(msgs, ". ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
