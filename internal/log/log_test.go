// ABOUTME: Tests for the logging package
// ABOUTME: Validates level filtering, output redirection and component tagging

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// Tests in this file mutate package globals and therefore do not run in parallel.

func capture(t *testing.T, lv slog.Level) *bytes.Buffer {
	t.Helper()
	saved := GetLevel()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(lv)
	t.Cleanup(func() {
		SetLevel(saved)
		SetOutput(nopWriter{})
	})
	return &buf
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestSetLevel(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t, LevelInfo)

	Debug("this should be suppressed: %s", "test")
	if buf.Len() != 0 {
		t.Errorf("debug output at info level: %q", buf.String())
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t, LevelError+4)

	Warn("dropped")
	Error("kept: %d", 4)
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("warn emitted above its level: %q", out)
	}
	if !strings.Contains(out, "kept: 4") {
		t.Errorf("error missing from output: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	buf := capture(t, LevelDebug)

	With("tooltip").Info("shown at %d,%d", 3, 4)
	out := buf.String()
	if !strings.Contains(out, "component=tooltip") {
		t.Errorf("component attribute missing: %q", out)
	}
	if !strings.Contains(out, "shown at 3,4") {
		t.Errorf("message missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		err  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseLevel(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
