// Package applog wraps log/slog with a rotating file writer. The Logger's
// methods are safe to call on a nil receiver so library code can always
// accept a *Logger without forcing every caller to construct one.
package applog

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog with a nil-safe API.
type Logger struct {
	*slog.Logger
}

// New creates a Logger that writes rotating JSON logs to dir (default
// filename "habpredict.log") at the given level ("debug", "info", "warn",
// "error").
func New(level, dir, filename string) *Logger {
	if filename == "" {
		filename = "habpredict.log"
	}

	w := &lumberjack.Logger{
		Filename:   dirJoin(dir, filename),
		MaxSize:    32, // MB
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}

	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return &Logger{Logger: slog.New(h)}
}

// Discard returns a Logger whose output goes nowhere; used as a fallback
// when a caller passes a nil *Logger and something still needs to log.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(discardWriter{}, nil))}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func dirJoin(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + string(os.PathSeparator) + name
}

func (l *Logger) Debugf(format string, args ...any) {
	if l != nil && l.Logger != nil {
		l.Logger.Debug(fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Infof(format string, args ...any) {
	if l != nil && l.Logger != nil {
		l.Logger.Info(fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Warnf(format string, args ...any) {
	if l == nil || l.Logger == nil {
		return
	}
	l.Logger.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	if l == nil || l.Logger == nil {
		return
	}
	l.Logger.Error(fmt.Sprintf(format, args...))
}

// With returns a Logger whose subsequent entries carry the given attrs.
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.Logger == nil {
		return Discard()
	}
	return &Logger{Logger: l.Logger.With(args...)}
}
