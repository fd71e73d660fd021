// Package logging provides the structured logger shared by the service
// layer and HTTP middleware.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Logger is a context-aware, key-value structured logger. Args are
// alternating key/value pairs, as in slog.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key-value pairs.
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New returns a Logger writing JSON lines to w.
func New(w io.Writer) Logger {
	return &slogLogger{l: slog.New(slog.NewJSONHandler(w, nil))}
}

// Wrap adapts an existing slog.Logger.
func Wrap(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

func (s *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}
