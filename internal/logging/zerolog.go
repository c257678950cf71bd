package logging

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure"
	"github.com/rs/zerolog"
)

// ZerologLogger renders human-friendly console output. It is selected with
// the "human" log format and is meant for local development.
type ZerologLogger struct {
	l zerolog.Logger
}

func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

// NewConsoleLogger builds a zerolog console logger writing to w. Colours are
// disabled when w is not a terminal.
func NewConsoleLogger(w io.Writer, level zerolog.Level) *ZerologLogger {
	cw := zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		f, ok := w.(*os.File)
		if !ok || !isatty.IsTerminal(f.Fd()) {
			cw.NoColor = true
		}
	})
	zerolog.ErrorStackMarshaler = errorStackMarshaller
	return NewZerologLogger(zerolog.New(cw).Level(level).With().Timestamp().Logger())
}

func formatFrame(frame failure.Frame) string {
	return frame.Pkg() + "." + frame.Func() + ":" + strconv.Itoa(frame.Line())
}

func errorStackMarshaller(err error) interface{} {
	if cs, ok := failure.CallStackOf(err); ok {
		frames := cs.Frames()
		res := make([]string, 0, len(frames))
		for _, frame := range frames {
			res = append(res, formatFrame(frame))
		}
		return res
	}
	return nil
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.write(z.l.Debug(), ctx, msg, args)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.write(z.l.Info(), ctx, msg, args)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.write(z.l.Warn(), ctx, msg, args)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.write(z.l.Error(), ctx, msg, args)
}

func (z *ZerologLogger) With(args ...any) Logger {
	return &ZerologLogger{l: z.l.With().Fields(args).Logger()}
}

// write moves the first error value out of args so zerolog can attach its
// call stack, then emits the remaining pairs as fields.
func (z *ZerologLogger) write(ev *zerolog.Event, ctx context.Context, msg string, args []any) {
	fields := make([]any, 0, len(args))
	var err error
	for i := 0; i+1 < len(args); i += 2 {
		if e, ok := args[i+1].(error); ok && err == nil {
			err = e
			continue
		}
		fields = append(fields, args[i], args[i+1])
	}
	ev = ev.Ctx(ctx).Fields(fields)
	if err != nil {
		ev = ev.Stack().Err(err)
	}
	ev.Msg(msg)
}
