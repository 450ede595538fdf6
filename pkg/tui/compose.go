// ABOUTME: Layer compositor: splices rendered overlays onto background lines by stack order
// ABOUTME: ANSI-aware column cuts keep background styling intact left and right of each overlay

package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/tui-overlay/pkg/tui/width"
)

// Placement is a rendered overlay positioned in screen cells.
// Higher Z paints later; equal Z keeps input order.
type Placement struct {
	Lines []string
	Left  int
	Top   int
	Width int
	Z     int
}

// Composite returns a w x h frame: background lines fitted to the screen
// with every placement painted on top. Placements may extend past any edge.
func Composite(background []string, placements []Placement, w, h int) []string {
	frame := make([]string, h)
	for row := range frame {
		line := ""
		if row < len(background) {
			line = background[row]
		}
		frame[row] = width.Fit(line, w)
	}

	ordered := slices.Clone(placements)
	slices.SortStableFunc(ordered, func(a, b Placement) int { return a.Z - b.Z })

	for _, p := range ordered {
		pw := p.Width
		if pw <= 0 {
			pw = width.Measure(p.Lines).Width
		}
		for i, line := range p.Lines {
			row := p.Top + i
			if row < 0 || row >= h {
				continue
			}
			frame[row] = splice(frame[row], width.Fit(line, pw), p.Left, w)
		}
	}
	return frame
}

// splice paints ov over bg starting at column col, clipped to [0, w).
func splice(bg, ov string, col, w int) string {
	ovw := width.VisibleWidth(ov)
	if col < 0 {
		ov = ansi.Cut(ov, -col, ovw)
		ovw += col
		col = 0
	}
	if ovw <= 0 || col >= w {
		return bg
	}
	if col+ovw > w {
		ov = ansi.Truncate(ov, w-col, "")
		ovw = w - col
	}

	var b strings.Builder
	prefix := ansi.Truncate(bg, col, "")
	b.WriteString(prefix)
	if pw := width.VisibleWidth(prefix); pw < col {
		b.WriteString(strings.Repeat(" ", col-pw))
	}
	b.WriteString(ansi.ResetStyle)
	b.WriteString(ov)
	b.WriteString(ansi.ResetStyle)
	if end := col + ovw; end < w {
		b.WriteString(ansi.Cut(bg, end, w))
	}
	return b.String()
}
