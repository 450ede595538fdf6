// ABOUTME: Display-width measurement for rendered overlay content
// ABOUTME: Grapheme-aware via uniseg/runewidth; ANSI sequences count as zero width

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/mauromedda/tui-overlay/pkg/geom"
)

// VisibleWidth returns the display width of s in terminal cells.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	stripped := ansi.Strip(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// isPlainASCII reports whether s is printable ASCII with no escapes.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

func graphemeWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// Measure returns the size of a block of rendered lines: the widest line
// and the line count.
func Measure(lines []string) geom.Size {
	w := 0
	for _, l := range lines {
		w = max(w, VisibleWidth(l))
	}
	return geom.Size{Width: w, Height: len(lines)}
}

// MeasureString measures a newline-separated block.
func MeasureString(s string) geom.Size {
	if s == "" {
		return geom.Size{}
	}
	return Measure(strings.Split(s, "\n"))
}

// Fit truncates or right-pads s to exactly w cells.
func Fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	vw := VisibleWidth(s)
	switch {
	case vw > w:
		s = ansi.Truncate(s, w, "")
		// A wide grapheme straddling the edge leaves a one-cell gap.
		return s + strings.Repeat(" ", w-VisibleWidth(s))
	case vw < w:
		return s + strings.Repeat(" ", w-vw)
	}
	return s
}

// Truncate shortens s to at most w cells, appending tail when it cuts.
func Truncate(s string, w int, tail string) string {
	if VisibleWidth(s) <= w {
		return s
	}
	return ansi.Truncate(s, w, tail)
}
