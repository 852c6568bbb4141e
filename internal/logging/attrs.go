package logging

import (
	"context"
	"log/slog"
)

// Attr aliases slog.Attr so call sites build records without importing both
// packages.
type Attr = slog.Attr

// Constructors for the attribute kinds the pipeline logs. Using these
// instead of raw slog keeps the import surface of callers to one package.
func String(key, value string) Attr     { return slog.String(key, value) }
func Int(key string, value int) Attr    { return slog.Int(key, value) }
func Bool(key string, value bool) Attr  { return slog.Bool(key, value) }
func Float64(key string, v float64) Attr { return slog.Float64(key, v) }
func Any(key string, value any) Attr    { return slog.Any(key, value) }

// Error wraps err under the standard "error" key. A nil error logs the
// literal <nil> rather than panicking inside the handler.
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger whose handler drops everything. Constructors take
// it when the caller passes no logger.
func NewNop() *slog.Logger {
	return slog.New(discardHandler{})
}

// NewComponentLogger tags every record from the returned logger with the
// component name, which the console handler promotes into the line prefix.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
