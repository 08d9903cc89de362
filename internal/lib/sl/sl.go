// Package sl holds small helpers for building slog loggers and attributes.
package sl

import (
	"io"
	"log/slog"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Err returns an attribute carrying the error text under the "error" key.
//
//	log.Error("failed to save", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// New builds a logger writing to w. Unknown formats fall back to text.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
