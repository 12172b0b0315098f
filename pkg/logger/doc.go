// Package logger provides a small factory for configured slog.Logger
// instances using the functional options pattern.
package logger
