package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// ContextKey is the type for context keys used in logging
type ContextKey string

const (
	// RequestIDKey is the context key for request IDs
	RequestIDKey ContextKey = "request_id"
	// CampusIDKey is the context key for the campus scope of a call
	CampusIDKey ContextKey = "campus_id"
	// OperationKey is the context key for operation names
	OperationKey ContextKey = "operation"
)

// Logger wraps slog.Logger with additional helper methods
type Logger struct {
	*slog.Logger
}

// New creates a new Logger with the specified level and format. The text
// format uses a colorized tint handler; json is for machine consumption.
func New(level, format string) *Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		})
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewDevelopment creates a debug-level text logger scoped to a component.
func NewDevelopment(component string) *Logger {
	log := New("debug", "text")
	return &Logger{
		Logger: log.Logger.With(slog.String("component", component)),
	}
}

// With returns a new logger with additional attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// WithRequestID returns a new logger with the request ID in context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithCampusID returns a new logger scoped to a campus
func (l *Logger) WithCampusID(campusID int64) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.Int64("campus_id", campusID)),
	}
}

// WithOperation returns a new logger with the operation name in context
func (l *Logger) WithOperation(operation string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("operation", operation)),
	}
}

// WithContext extracts common fields from context and returns a new logger
func (l *Logger) WithContext(ctx context.Context) *Logger {
	logger := l.Logger

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		logger = logger.With(slog.String("request_id", requestID))
	}

	if campusID, ok := ctx.Value(CampusIDKey).(int64); ok && campusID != 0 {
		logger = logger.With(slog.Int64("campus_id", campusID))
	}

	if operation, ok := ctx.Value(OperationKey).(string); ok && operation != "" {
		logger = logger.With(slog.String("operation", operation))
	}

	return &Logger{Logger: logger}
}

// InfoContext logs at Info level with context
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Info(msg, args...)
}

// DebugContext logs at Debug level with context
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Debug(msg, args...)
}

// WarnContext logs at Warn level with context
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Warn(msg, args...)
}

// ErrorContext logs at Error level with context
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Error(msg, args...)
}

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(ctx context.Context, method, path string, statusCode int, duration int64) {
	l.WithContext(ctx).Info("http request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", statusCode),
		slog.Int64("duration_ms", duration),
	)
}
