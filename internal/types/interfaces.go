// Package types holds the small set of cross-cutting types shared by the
// notifier packages: the Logger abstraction, secret redaction and telemetry
// names.
package types

// Logger is the structured logging interface used throughout the notifier.
// Arguments are alternating key/value pairs, as with log/slog.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}

// NopLogger discards everything. Used where a logger is optional.
type NopLogger struct{}

func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (NopLogger) Warn(string, ...any)  {}
func (l NopLogger) With(...any) Logger { return l }
