package ngramvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with ngramvec-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMode adds the weighting mode field to the logger.
func (l *Logger) WithMode(mode Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode.String()),
	}
}

// WithOutputSize adds the output vector size field to the logger.
func (l *Logger) WithOutputSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("output_size", size),
	}
}

// LogBuild logs a vectorizer construction.
func (l *Logger) LogBuild(ctx context.Context, poolLen, outputSize int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "build completed",
			"pool_len", poolLen,
			"output_size", outputSize,
		)
	}
}

// LogTransform logs a transform operation.
func (l *Logger) LogTransform(ctx context.Context, tokens int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "transform failed",
			"tokens", tokens,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "transform completed",
			"tokens", tokens,
		)
	}
}

// LogBatchTransform logs a batch transform operation.
func (l *Logger) LogBatchTransform(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch transform failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch transform completed",
			"count", count,
		)
	}
}
