// Package logger provides structured logging functionality for the
// application, built on log/slog with a JSON handler. It also carries
// per-request loggers through the context so handlers and stores can log
// with correlated attributes.
package logger
