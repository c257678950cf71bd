// Package ui renders the client's screens as plain text: the entry list
// with its page bar, single entry cards, the form header and the status
// lines derived from the state store.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/diary/internal/client/models"
	"github.com/dmitrijs2005/diary/internal/client/pagination"
	"github.com/dmitrijs2005/diary/internal/client/state"
	"github.com/dmitrijs2005/diary/internal/validation"
	"golang.org/x/term"
)

const (
	TimeLayout   = "Jan 2, 2006 15:04"
	defaultWidth = 80
	minWidth     = 20
	previewRunes = 60
)

// termSize is a test seam for term.GetSize.
var termSize = term.GetSize

// Width returns the terminal width of stdout, or 80 when it is not a
// terminal.
func Width() int {
	w, _, err := termSize(int(os.Stdout.Fd()))
	if err != nil || w < minWidth {
		return defaultWidth
	}
	return w
}

// Status prints the loading state or the error banner. It returns true
// when something was printed.
func Status(w io.Writer, s state.Snapshot) bool {
	switch {
	case s.Loading:
		fmt.Fprintln(w, "Loading entries...")
		return true
	case s.Error != "":
		fmt.Fprintf(w, "! %s\n", s.Error)
		return true
	}
	return false
}

// List prints the current page of entries followed by the page bar.
func List(w io.Writer, entries []models.Entry, p pagination.Pager) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No diary entries yet. Create your first one!")
		return
	}

	p.TotalItems = len(entries)
	start, _ := p.Window()
	for i, e := range pagination.Slice(entries, p) {
		fmt.Fprintf(w, "%3d. %-25s  %s\n", start+i+1, e.Topic, e.CreatedAt.Local().Format(TimeLayout))
		fmt.Fprintf(w, "     %s\n", Preview(e.Body, previewRunes))
		fmt.Fprintf(w, "     id: %s\n", e.ID)
	}
	if bar := PageBar(p); bar != "" {
		fmt.Fprintln(w, bar)
	}
}

// PageBar renders the page labels with the current page in brackets.
// A single page has no bar.
func PageBar(p pagination.Pager) string {
	if p.TotalPages() <= 1 {
		return ""
	}
	parts := make([]string, 0, 7)
	for _, l := range p.Labels() {
		if !l.Ellipsis && l.Page == p.Current {
			parts = append(parts, "["+l.String()+"]")
			continue
		}
		parts = append(parts, l.String())
	}
	return fmt.Sprintf("Page %d of %d: %s", p.Current, p.TotalPages(), strings.Join(parts, " "))
}

// Card prints one entry in full, wrapping the body to width.
func Card(w io.Writer, e models.Entry, width int) {
	rule := strings.Repeat("-", min(width, defaultWidth))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, e.Topic)
	fmt.Fprintln(w, rule)
	for _, line := range Wrap(e.Body, width) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Created: %s\n", e.CreatedAt.Local().Format(TimeLayout))
	if !e.UpdatedAt.Equal(e.CreatedAt) {
		fmt.Fprintf(w, "Updated: %s\n", e.UpdatedAt.Local().Format(TimeLayout))
	}
	fmt.Fprintf(w, "ID:      %s\n", e.ID)
}

// FormHeader prints the title of the entry form.
func FormHeader(w io.Writer, f state.Form) {
	switch f.(type) {
	case state.Saved:
		fmt.Fprintln(w, "Edit entry")
	default:
		fmt.Fprintln(w, "New entry")
	}
}

// FieldPrompt is the prompt of a form field with its length hint, e.g.
// "Topic (3/25)".
func FieldPrompt(r validation.Rule, value string) string {
	return fmt.Sprintf("%s (%s)", r.Label, r.Counter(value))
}

// FieldErrors prints each violation of a rejected form on its own line.
func FieldErrors(w io.Writer, err *validation.Error) {
	for _, f := range err.Fields {
		fmt.Fprintf(w, "  - %s\n", f.Message)
	}
}

// Confirm is the question asked before deleting e.
func Confirm(e models.Entry) string {
	return fmt.Sprintf("Delete %q? This cannot be undone. [y/N] ", e.Topic)
}

// Preview shortens s to at most n runes on a single line.
func Preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// Wrap breaks s into lines of at most width runes at word boundaries. Words
// longer than width are split. Paragraph breaks are kept.
func Wrap(s string, width int) []string {
	if width < minWidth {
		width = minWidth
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for utf8.RuneCountInString(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				r := []rune(word)
				out = append(out, string(r[:width]))
				word = string(r[width:])
			}
			switch {
			case line == "":
				line = word
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		out = append(out, line)
	}
	return out
}
