package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	l := slog.New(h)
	return NewSlogLogger(l), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.key+"="+tc.val) {
			t.Fatalf("expected attribute %s=%s in output:\n%s", tc.key, tc.val, out)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log2 := log.With("req_id", "123", "entry_id", "e-1")
	log2.Info(ctx, "hello", "k", "v")

	out := buf.String()
	wantSubs := []string{
		"level=INFO",
		"msg=hello",
		"req_id=123",
		"entry_id=e-1",
		"k=v",
	}
	for _, s := range wantSubs {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestSlogLogger_ContextDoesNotPanic(t *testing.T) {
	log, _ := newTestLogger(t)

	ctx := context.TODO()
	log.Info(ctx, "ctx-ok")
	log.Debug(ctx, "ctx-ok")
	log.Warn(ctx, "ctx-ok")
	log.Error(ctx, "ctx-ok")
}

func TestNewSlogHandlerLogger_FormatAndLevel(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		level   string
		want    []string
		notWant []string
	}{
		{"json default level", "", "", []string{`"msg":"shown"`, `"level":"INFO"`}, []string{"hidden"}},
		{"text warn", "TEXT", "warn", []string{"level=WARN", "msg=warned"}, []string{"shown", "hidden"}},
		{"level with offset and spaces", "json", " info+2 ", []string{`"msg":"warned"`}, []string{"shown"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := NewSlogHandlerLogger(tt.format, tt.level, &buf)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			ctx := context.Background()
			l.Debug(ctx, "hidden")
			l.Info(ctx, "shown")
			l.Warn(ctx, "warned")

			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Fatalf("expected %q in output, got:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Fatalf("did not expect %q in output, got:\n%s", s, out)
				}
			}
		})
	}
}

func TestNewSlogHandlerLogger_Errors(t *testing.T) {
	if _, err := NewSlogHandlerLogger(FormatHuman, "info", &bytes.Buffer{}); err == nil || !strings.Contains(err.Error(), "invalid slog format") {
		t.Fatalf("expected format error, got %v", err)
	}
	if _, err := NewSlogHandlerLogger(FormatJSON, "loud", &bytes.Buffer{}); err == nil || !strings.Contains(err.Error(), `invalid log level "loud"`) {
		t.Fatalf("expected level error, got %v", err)
	}
}

func TestSlogLogger_WithNoArgsReturnsSame(t *testing.T) {
	log, _ := newTestLogger(t)
	if got := log.With(); got != Logger(log) {
		t.Fatalf("expected the same logger back")
	}
}
