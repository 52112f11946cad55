package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// stack traces get truncated past this size
const stackBufferSize = 8192

// StackTraceHandler decorates records with the request_id stored in the
// context and, for error-level records, the goroutine stack trace.
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, record slog.Record) error {
	if ctx != nil {
		if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
			record.AddAttrs(slog.String("request_id", reqID))
		}
	}

	if record.Level >= slog.LevelError {
		buf := make([]byte, stackBufferSize)
		n := runtime.Stack(buf, false)
		record.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}

	return h.Handler.Handle(ctx, record)
}

// InitStructuredLogger installs the process-wide JSON logger. Source
// locations are only added at debug level.
func InitStructuredLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	handler := &StackTraceHandler{Handler: slog.NewJSONHandler(os.Stdout, opts)}

	slog.SetDefault(slog.New(handler))
}
