// Package types provides internal types shared across gometar packages.
package types

import (
	"context"
	"log/slog"
)

// LevelTrace sits below slog.LevelDebug. The parser logs each token and
// each grammar transition at this level.
const LevelTrace = slog.Level(-8)

var ctx = context.Background()

// Logger is embedded by components that log. A zero Logger discards
// everything.
type Logger struct {
	L *slog.Logger
}

func (l *Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(ctx, level)
}

// Log writes msg when level is enabled.
func (l *Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.L != nil && l.L.Enabled(ctx, level) {
		l.L.LogAttrs(ctx, level, msg, attrs...)
	}
}

func (l *Logger) TraceEnabled() bool {
	return l.Enabled(LevelTrace)
}

func (l *Logger) Trace(msg string, attrs ...slog.Attr) {
	l.Log(LevelTrace, msg, attrs...)
}

// Component tags logger with a component attribute. It returns nil for a
// nil logger.
func Component(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", name))
}

// ByteOffset is a byte position in report text.
type ByteOffset uint32

// Span represents a range in report text.
type Span struct {
	Start ByteOffset // inclusive
	End   ByteOffset // exclusive
}

func NewSpan(start, end ByteOffset) Span {
	return Span{Start: start, End: end}
}
