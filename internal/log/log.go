// ABOUTME: Level-gated logging wrapper around slog for widgets and hosts
// ABOUTME: Global level via SetLevel; output defaults to stderr and can be redirected while a TUI runs

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level   atomic.Int64
	mu      sync.RWMutex
	handler slog.Handler
)

func init() {
	level.Store(int64(LevelInfo))
	handler = newHandler(os.Stderr)
}

type levelVar struct{}

func (levelVar) Level() slog.Level { return slog.Level(level.Load()) }

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar{}})
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// ParseLevel maps "debug", "info", "warn" and "error" to a level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return LevelInfo, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return l, nil
}

// SetOutput redirects every logger, including ones created earlier by With.
// Bubble Tea owns the terminal, so interactive programs point this at a file.
func SetOutput(w io.Writer) {
	mu.Lock()
	handler = newHandler(w)
	mu.Unlock()
}

func current() slog.Handler {
	mu.RLock()
	defer mu.RUnlock()
	return handler
}

// Logger tags records with a component name.
type Logger struct {
	component string
}

// With returns a logger whose records carry component=name.
func With(component string) *Logger {
	return &Logger{component: component}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

func (l *Logger) log(lv slog.Level, format string, args ...any) {
	h := current()
	if l != nil && l.component != "" {
		h = h.WithAttrs([]slog.Attr{slog.String("component", l.component)})
	}
	emit(h, lv, format, args...)
}

var root = &Logger{}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) { root.Debug(format, args...) }

// Info logs an info message if the level allows it.
func Info(format string, args ...any) { root.Info(format, args...) }

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) { root.Warn(format, args...) }

// Error logs an error message (always emitted).
func Error(format string, args ...any) { root.Error(format, args...) }

func emit(h slog.Handler, lv slog.Level, format string, args ...any) {
	if lv < LevelError && lv < GetLevel() {
		return
	}
	if lv >= LevelError {
		// Errors bypass the level gate.
		h = alwaysHandler{h}
	}
	slog.New(h).Log(context.Background(), lv, fmt.Sprintf(format, args...))
}

type alwaysHandler struct{ slog.Handler }

func (alwaysHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }
