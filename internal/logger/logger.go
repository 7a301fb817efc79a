// Package logger wraps log/slog with a process-wide structured logger.
package logger

import (
	"context"
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

func init() {
	// JSON output so log aggregation can parse fields.
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	defaultLogger = slog.New(handler)
}

// SetLogger allows setting a custom logger (useful for testing).
func SetLogger(logger *slog.Logger) {
	defaultLogger = logger
}

// Default returns the default logger.
func Default() *slog.Logger {
	return defaultLogger
}

// Info logs an info message with optional attributes.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// InfoContext logs an info message with context.
func InfoContext(ctx context.Context, msg string, args ...any) {
	defaultLogger.InfoContext(ctx, msg, args...)
}

// Warn logs a warning message with optional attributes.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message with optional attributes.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// ErrorContext logs an error message with context.
func ErrorContext(ctx context.Context, msg string, args ...any) {
	defaultLogger.ErrorContext(ctx, msg, args...)
}

// Debug logs a debug message with optional attributes.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// WithRequestID adds request_id to logger context.
func WithRequestID(requestID string) *slog.Logger {
	return defaultLogger.With(slog.String("request_id", requestID))
}

// WithArticleID adds article_id to logger context.
func WithArticleID(articleID string) *slog.Logger {
	return defaultLogger.With(slog.String("article_id", articleID))
}

// WithViewer adds the viewer's username to logger context. Anonymous
// requests log as "anonymous".
func WithViewer(username string) *slog.Logger {
	if username == "" {
		username = "anonymous"
	}
	return defaultLogger.With(slog.String("viewer", username))
}
