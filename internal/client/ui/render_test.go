package ui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/diary/internal/client/models"
	"github.com/dmitrijs2005/diary/internal/client/pagination"
	"github.com/dmitrijs2005/diary/internal/client/state"
	"github.com/dmitrijs2005/diary/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(n int) []models.Entry {
	t0 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	out := make([]models.Entry, n)
	for i := range out {
		out[i] = models.Entry{
			ID:        fmt.Sprintf("id-%02d", i+1),
			Topic:     fmt.Sprintf("Topic %02d", i+1),
			Body:      "Some body text",
			CreatedAt: t0,
			UpdatedAt: t0,
		}
	}
	return out
}

func TestList_Empty(t *testing.T) {
	var buf bytes.Buffer
	List(&buf, nil, pagination.New(0, 5))
	assert.Equal(t, "No diary entries yet. Create your first one!\n", buf.String())
}

func TestList_SecondPage(t *testing.T) {
	var buf bytes.Buffer
	p := pagination.New(12, 5)
	require.True(t, p.SetPage(2))

	List(&buf, entries(12), p)
	out := buf.String()

	assert.Contains(t, out, "  6. Topic 06")
	assert.Contains(t, out, " 10. Topic 10")
	assert.NotContains(t, out, "Topic 05")
	assert.NotContains(t, out, "Topic 11")
	assert.Contains(t, out, "id: id-07")
	assert.True(t, strings.HasSuffix(out, "Page 2 of 3: 1 [2] 3\n"))
}

func TestPageBar(t *testing.T) {
	assert.Empty(t, PageBar(pagination.New(5, 5)))
	assert.Equal(t, "Page 5 of 10: 1 ... 4 [5] 6 ... 10",
		PageBar(pagination.Pager{TotalItems: 10, PerPage: 1, Current: 5}))
}

func TestStatus(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, Status(&buf, state.Snapshot{}))
	assert.Empty(t, buf.String())

	assert.True(t, Status(&buf, state.Snapshot{Loading: true, Error: "ignored"}))
	assert.Equal(t, "Loading entries...\n", buf.String())

	buf.Reset()
	assert.True(t, Status(&buf, state.Snapshot{Error: state.MsgLoadFailed}))
	assert.Equal(t, "! "+state.MsgLoadFailed+"\n", buf.String())
}

func TestCard(t *testing.T) {
	e := entries(1)[0]
	e.Body = strings.Repeat("word ", 10)

	var buf bytes.Buffer
	Card(&buf, e, 20)
	out := buf.String()
	assert.Contains(t, out, "Topic 01\n")
	assert.Contains(t, out, "word word word word\n")
	assert.Contains(t, out, "ID:      id-01\n")
	assert.NotContains(t, out, "Updated:")

	e.UpdatedAt = e.CreatedAt.Add(time.Hour)
	buf.Reset()
	Card(&buf, e, 20)
	assert.Contains(t, buf.String(), "Updated:")
}

func TestFormHeader(t *testing.T) {
	var buf bytes.Buffer
	FormHeader(&buf, state.Draft{})
	FormHeader(&buf, state.Edit(models.Entry{ID: "x"}))
	assert.Equal(t, "New entry\nEdit entry\n", buf.String())
}

func TestFieldPromptAndErrors(t *testing.T) {
	assert.Equal(t, "Topic (3/25)", FieldPrompt(validation.TopicRule, " ABC "))

	_, err := state.Draft{Topic: "ab", Body: "1234567890"}.Validate()
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))

	var buf bytes.Buffer
	FieldErrors(&buf, verr)
	assert.Equal(t, "  - Topic must be at least 3 characters\n", buf.String())
}

func TestConfirm(t *testing.T) {
	assert.Equal(t, `Delete "ABC"? This cannot be undone. [y/N] `, Confirm(models.Entry{Topic: "ABC"}))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b", Preview("a\n  b", 10))
	assert.Equal(t, "abcdefg...", Preview(strings.Repeat("abcdefghij", 2), 10))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks at words", "aaaa bbbb cccc dddd eeee", 20, []string{"aaaa bbbb cccc dddd", "eeee"}},
		{"keeps paragraphs", "one\n\ntwo", 20, []string{"one", "", "two"}},
		{"splits long words", strings.Repeat("x", 45), 20, []string{strings.Repeat("x", 20), strings.Repeat("x", 20), strings.Repeat("x", 5)}},
		{"minimum width", "aaaa bbbb", 5, []string{"aaaa bbbb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.in, tt.width))
		})
	}
}

func TestWidth(t *testing.T) {
	orig := termSize
	t.Cleanup(func() { termSize = orig })

	termSize = func(int) (int, int, error) { return 120, 40, nil }
	assert.Equal(t, 120, Width())

	termSize = func(int) (int, int, error) { return 0, 0, errors.New("not a terminal") }
	assert.Equal(t, 80, Width())
}
