package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

// New returns a JSON logger writing to stdout at the given level.
func New(service, level string) *Logger {
	return NewWithWriter(service, level, os.Stdout)
}

func NewWithWriter(service, level string, w io.Writer) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

// Discard is a logger that drops everything, used by tests.
func Discard() *Logger {
	return NewWithWriter("test", "error", io.Discard)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(action, requestID, message string, fields map[string]any) {
	l.log(slog.LevelDebug, action, requestID, message, fields)
}

func (l *Logger) Info(action, requestID, message string, fields map[string]any) {
	l.log(slog.LevelInfo, action, requestID, message, fields)
}

func (l *Logger) Error(action, requestID, message string, err error, fields map[string]any) {
	attrs := l.baseAttrs(action, requestID)
	if err != nil {
		attrs = append(attrs, slog.Group("error", slog.String("msg", err.Error())))
	}
	attrs = append(attrs, fieldAttrs(fields)...)
	l.handler.LogAttrs(context.TODO(), slog.LevelError, message, attrs...)
}

func (l *Logger) log(level slog.Level, action, requestID, message string, fields map[string]any) {
	attrs := append(l.baseAttrs(action, requestID), fieldAttrs(fields)...)
	l.handler.LogAttrs(context.TODO(), level, message, attrs...)
}

func (l *Logger) baseAttrs(action, requestID string) []slog.Attr {
	return []slog.Attr{
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("request_id", requestID),
	}
}

func fieldAttrs(fields map[string]any) []slog.Attr {
	if len(fields) == 0 {
		return nil
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return []slog.Attr{{Key: "details", Value: slog.GroupValue(attrs...)}}
}
