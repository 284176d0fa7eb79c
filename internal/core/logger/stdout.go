package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

type StdoutLogger struct {
	logger *slog.Logger
}

func initStdoutLogger(serviceName string, level LogLevel) (Logger, error) {
	return newStdoutLogger(os.Stdout, serviceName, level), nil
}

func newStdoutLogger(w io.Writer, serviceName string, level LogLevel) *StdoutLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: toSlogLevel(level),
	})

	return &StdoutLogger{
		logger: slog.New(handler).With(slog.String("service", serviceName)),
	}
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError, LogLevelFatal:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *StdoutLogger) Log(ctx context.Context, entry LogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	attrs := make([]any, 0, len(entry.Attributes)*2+2)
	for key, value := range entry.Attributes {
		attrs = append(attrs, key, value)
	}
	if entry.Error != nil {
		attrs = append(attrs, "error", entry.Error.Error())
	}

	switch entry.Level {
	case LogLevelDebug:
		l.logger.DebugContext(ctx, entry.Message, attrs...)
	case LogLevelWarn:
		l.logger.WarnContext(ctx, entry.Message, attrs...)
	case LogLevelError, LogLevelFatal:
		l.logger.ErrorContext(ctx, entry.Message, attrs...)
	default:
		l.logger.InfoContext(ctx, entry.Message, attrs...)
	}
}

func (l *StdoutLogger) Shutdown(context.Context) error {
	return nil
}
