package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Supported log formats.
const (
	FormatJSON  = "json"
	FormatText  = "text"
	FormatHuman = "human"
)

// New builds a Logger for the given format and level.
//
//	json:  slog JSON handler (default for services)
//	text:  slog key=value handler
//	human: zerolog console writer
func New(format, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(format) {
	case FormatJSON, FormatText, "":
		l, err := NewSlogHandlerLogger(format, level, w)
		if err != nil {
			return nil, err
		}
		return l, nil
	case FormatHuman:
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, err
		}
		return NewConsoleLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s, expected: [json, text, human]", format)
	}
}
