// ABOUTME: Single-line text aligned within the render width and truncated with an ellipsis
// ABOUTME: Used for window action bars and other one-row chrome

package component

import (
	"strings"

	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/tui"
	"github.com/mauromedda/tui-overlay/pkg/tui/width"
)

// Line renders exactly one row.
type Line struct {
	content string
	align   geom.HAlign
}

// NewLine creates a Line with the given alignment.
func NewLine(content string, align geom.HAlign) *Line {
	return &Line{content: content, align: align}
}

// SetContent updates the text.
func (l *Line) SetContent(content string) { l.content = content }

// Render writes the aligned, truncated line into the buffer.
func (l *Line) Render(out *tui.RenderBuffer, w int) {
	if w <= 0 {
		return
	}
	text := width.Truncate(l.content, w, "…")
	gap := w - width.VisibleWidth(text)
	switch l.align {
	case geom.AlignRight:
		text = strings.Repeat(" ", gap) + text
	case geom.AlignCenter:
		text = strings.Repeat(" ", gap/2) + text
	}
	out.WriteLine(width.Fit(text, w))
}

// Invalidate is a no-op for Line.
func (l *Line) Invalidate() {}
