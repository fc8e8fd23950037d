package logging

import (
	"context"
	"log/slog"
)

// Attr aliases slog.Attr so call sites build structured fields without a
// second import.
type Attr = slog.Attr

func String(key, value string) Attr { return slog.String(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

// Error builds the standard error attribute. The message is flattened to a
// string so the console and JSON handlers render it identically. A nil error
// is logged as "<nil>" rather than panicking, letting callers report
// outcomes unconditionally.
func Error(err error) Attr {
	if err == nil {
		return slog.String(FieldError, "<nil>")
	}
	return slog.String(FieldError, err.Error())
}

// NewNop returns a logger that drops everything. Constructors accept it in
// place of nil so components never guard their log calls.
func NewNop() *slog.Logger {
	return slog.New(discardHandler{})
}

// discardHandler mirrors slog.DiscardHandler, which requires Go 1.24+; it
// discards all log output and reports every level as disabled.
type discardHandler struct{}

func (dh discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (dh discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (dh discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return dh }
func (dh discardHandler) WithGroup(string) slog.Handler             { return dh }

// NewComponentLogger scopes logger with the component attribute that the
// console handler renders as a message prefix.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}
