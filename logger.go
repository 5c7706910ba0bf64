package mimatch

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with mimatch-specific context.
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

// WithColumns adds a column-group field to the logger.
func (l *Logger) WithColumns(tuple string) *Logger {
	return &Logger{
		Logger: l.Logger.With("group", tuple),
	}
}

// WithImputation adds a completed-imputation index field to the logger.
func (l *Logger) WithImputation(imp int) *Logger {
	return &Logger{
		Logger: l.Logger.With("imputation", imp),
	}
}

// LogAnalyze logs the analysis result for one group.
func (l *Logger) LogAnalyze(ctx context.Context, tuple string, donors, recipients uint64, partitions int) {
	l.DebugContext(ctx, "group analyzed",
		"group", tuple,
		"donors", donors,
		"recipients", recipients,
		"partitions", partitions,
	)
}

// LogMatch logs a completed matching call.
func (l *Logger) LogMatch(ctx context.Context, groups, imputations int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "matching failed",
			"groups", groups,
			"imputations", imputations,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "matching completed",
			"groups", groups,
			"imputations", imputations,
		)
	}
}
