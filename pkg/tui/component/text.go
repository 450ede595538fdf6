// ABOUTME: Text component: plain or ANSI text, word-wrapped to the render width
// ABOUTME: Caches wrapped lines per width until the content changes

package component

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/tui-overlay/pkg/tui"
)

// Text renders text content wrapped at the render width.
type Text struct {
	mu      sync.Mutex
	content string
	lines   []string
	width   int
	dirty   bool
}

// NewText creates a Text component with the given content.
func NewText(content string) *Text {
	return &Text{content: content, dirty: true}
}

// Content returns the current text.
func (t *Text) Content() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.content
}

// SetContent updates the displayed text.
func (t *Text) SetContent(content string) {
	t.mu.Lock()
	t.content = content
	t.dirty = true
	t.mu.Unlock()
}

// Render writes the wrapped lines into the buffer.
func (t *Text) Render(out *tui.RenderBuffer, width int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dirty || t.width != width {
		t.lines = wrapLines(t.content, width)
		t.width = width
		t.dirty = false
	}
	out.WriteLines(t.lines)
}

// Invalidate marks the component for re-render.
func (t *Text) Invalidate() {
	t.mu.Lock()
	t.dirty = true
	t.mu.Unlock()
}

func wrapLines(s string, width int) []string {
	if width > 0 {
		s = ansi.Wrap(s, width, "")
	}
	return strings.Split(s, "\n")
}
