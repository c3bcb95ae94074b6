package logger

import (
	"context"
	"log/slog"
)

// contextKey is a private key type to avoid collisions with other packages
// storing values in the same context.
type contextKey struct{}

// loggerKey is the context key under which the request-scoped logger lives.
var loggerKey = contextKey{}

// WithContext returns a copy of ctx carrying the given logger.
// Middleware uses this to attach a request-scoped logger (with trace ID
// attributes) that downstream handlers and stores can retrieve.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from the context.
// Returns nil if no logger has been attached.
func FromContext(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)
	return logger
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default when the context carries none. If the default is
// also nil, the process-wide slog default is returned, so callers always get
// a usable logger.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger := FromContext(ctx); logger != nil {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
