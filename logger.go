package crc32c

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with crc32c-specific context.
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

// WithImpl adds the engine label ("hw" or "sw") to the logger.
func (l *Logger) WithImpl(impl string) *Logger {
	return &Logger{
		Logger: l.Logger.With("impl", impl),
	}
}

// LogDispatch logs the selected engine and hardware capability.
// Calling it triggers dispatch if it has not happened yet.
func (l *Logger) LogDispatch() {
	l.Info("crc32c engine selected",
		"impl", ImplName(),
		"hardware_available", HardwareAvailable(),
	)
}

// LogSelfCheck logs the outcome of a self-check run.
func (l *Logger) LogSelfCheck(res SelfCheckResult) {
	switch res.Status {
	case SelfCheckFailed:
		l.Error("crc32c self-check failed, forced software engine",
			"status", res.Status.String(),
			"mismatches", res.Mismatches,
			"impl", ImplName(),
		)
	case SelfCheckSkipped:
		l.Debug("crc32c self-check skipped, hardware engine not selected",
			"status", res.Status.String(),
			"impl", ImplName(),
		)
	default:
		l.Info("crc32c self-check passed",
			"status", res.Status.String(),
			"impl", ImplName(),
		)
	}
}
