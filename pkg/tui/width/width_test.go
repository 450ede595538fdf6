// ABOUTME: Tests for display-width measurement and block fitting
// ABOUTME: Covers ASCII, wide graphemes, ANSI sequences, and truncate/pad behavior

package width

import (
	"testing"

	"github.com/mauromedda/tui-overlay/pkg/geom"
)

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "ansi colored", input: "\x1b[31mred\x1b[0m", want: 3},
		{name: "cjk", input: "你好", want: 4},
		{name: "mixed", input: "hi\x1b[1m!\x1b[0m", want: 3},
		{name: "box drawing", input: "╭──╮", want: 4},
		{name: "only ansi", input: "\x1b[31m\x1b[0m", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := VisibleWidth(tt.input); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	t.Parallel()

	got := Measure([]string{"ab", "\x1b[1mabcd\x1b[0m", ""})
	if want := (geom.Size{Width: 4, Height: 3}); got != want {
		t.Errorf("Measure = %+v, want %+v", got, want)
	}
	if got := MeasureString(""); got != (geom.Size{}) {
		t.Errorf("MeasureString(\"\") = %+v, want zero", got)
	}
	if got := MeasureString("one\nthree"); got != (geom.Size{Width: 5, Height: 2}) {
		t.Errorf("MeasureString = %+v", got)
	}
}

func TestFit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		w     int
		want  string
	}{
		{name: "pad", input: "ab", w: 4, want: "ab  "},
		{name: "exact", input: "abcd", w: 4, want: "abcd"},
		{name: "truncate", input: "abcdef", w: 3, want: "abc"},
		{name: "zero width", input: "abc", w: 0, want: ""},
		{name: "wide rune at edge", input: "a你", w: 2, want: "a "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Fit(tt.input, tt.w); got != tt.want {
				t.Errorf("Fit(%q, %d) = %q, want %q", tt.input, tt.w, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := Truncate("hello world", 8, "…"); VisibleWidth(got) != 8 {
		t.Errorf("Truncate width = %d (%q), want 8", VisibleWidth(got), got)
	}
	if got := Truncate("short", 8, "…"); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
}

func BenchmarkVisibleWidth_ANSI(b *testing.B) {
	s := "\x1b[1;31mhello\x1b[0m \x1b[32mworld\x1b[0m"
	for b.Loop() {
		VisibleWidth(s)
	}
}
