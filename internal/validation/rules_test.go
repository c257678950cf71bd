package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Check_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		value   string
		wantMsg string
	}{
		{"topic 3 accepted", TopicRule, "abc", ""},
		{"topic 25 accepted", TopicRule, strings.Repeat("a", 25), ""},
		{"topic 2 rejected", TopicRule, "ab", "Topic must be at least 3 characters"},
		{"topic 26 rejected", TopicRule, strings.Repeat("a", 26), "Topic must be 25 characters or less"},
		{"topic trimmed before length", TopicRule, "   ab   ", "Topic must be at least 3 characters"},
		{"topic padded 25 accepted", TopicRule, "  " + strings.Repeat("a", 25) + "\t", ""},
		{"topic whitespace only", TopicRule, " \t\n ", "Topic is required and cannot be empty or only whitespace"},
		{"topic empty", TopicRule, "", "Topic is required and cannot be empty or only whitespace"},
		{"body 10 accepted", BodyRule, "1234567890", ""},
		{"body 1000 accepted", BodyRule, strings.Repeat("b", 1000), ""},
		{"body 9 rejected", BodyRule, "123456789", "Body must be at least 10 characters"},
		{"body 1001 rejected", BodyRule, strings.Repeat("b", 1001), "Body must be 1000 characters or less"},
		{"body whitespace only", BodyRule, "     ", "Body is required and cannot be empty or only whitespace"},
		{"multibyte counted as runes", TopicRule, "äöü", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, msg := tt.rule.Check(tt.value)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRule_Check_ReturnsTrimmed(t *testing.T) {
	v, msg := TopicRule.Check("  hello  ")
	assert.Empty(t, msg)
	assert.Equal(t, "hello", v)
}

func TestRule_Counter(t *testing.T) {
	assert.Equal(t, "5/25", TopicRule.Counter(" hello "))
	assert.Equal(t, "0/1000", BodyRule.Counter(""))
}

func TestCollector_AggregatesAllViolations(t *testing.T) {
	var c Collector
	topic := c.Required(TopicRule, " x ")
	body := c.Optional(BodyRule, nil)

	assert.Equal(t, "x", topic)
	assert.Nil(t, body)

	short := "short"
	c.Optional(BodyRule, &short)

	err := c.Err()
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []FieldError{
		{Field: "topic", Message: "Topic must be at least 3 characters"},
		{Field: "body", Message: "Body must be at least 10 characters"},
	}, verr.Fields)
	assert.Equal(t, "Topic must be at least 3 characters; Body must be at least 10 characters", err.Error())
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestCollector_NoViolations(t *testing.T) {
	var c Collector
	body := "  a long enough body  "
	got := c.Optional(BodyRule, &body)

	require.NoError(t, c.Err())
	require.NotNil(t, got)
	assert.Equal(t, "a long enough body", *got)
}
