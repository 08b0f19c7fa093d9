package bitconv

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitconv-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithBits adds a bits field to the logger.
func (l *Logger) WithBits(bits BitWidth) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", uint32(bits)),
	}
}

// WithNotation adds a notation field to the logger.
func (l *Logger) WithNotation(n Notation) *Logger {
	return &Logger{
		Logger: l.Logger.With("notation", n.String()),
	}
}

// LogConvert logs a single conversion. Rejected input is expected during
// normal use, so failures are logged at debug level.
func (l *Logger) LogConvert(ctx context.Context, req Request, err *ConversionError) {
	if err != nil {
		l.DebugContext(ctx, "conversion rejected",
			"bits", uint32(req.Bits),
			"notation", req.InputType.String(),
			"kind", err.Kind.String(),
			"error", err.Message,
		)
	} else {
		l.DebugContext(ctx, "conversion completed",
			"bits", uint32(req.Bits),
			"notation", req.InputType.String(),
		)
	}
}

// LogBatch logs a batch conversion.
func (l *Logger) LogBatch(ctx context.Context, count, failed int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "batch conversion aborted",
			"total", count,
			"error", err,
		)
	case failed > 0:
		l.WarnContext(ctx, "batch conversion completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	default:
		l.InfoContext(ctx, "batch conversion completed",
			"count", count,
		)
	}
}
