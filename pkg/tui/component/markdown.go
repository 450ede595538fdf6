// ABOUTME: Markdown component rendering window content through glamour
// ABOUTME: Caches rendered results keyed by content hash + width

package component

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/tui-overlay/pkg/tui"
)

// Markdown renders markdown with glamour using a named standard style
// ("dark", "light", "notty", ...).
type Markdown struct {
	mu      sync.Mutex
	content string
	style   string
	cache   map[string][]string
}

// NewMarkdown creates a Markdown component with the given content.
func NewMarkdown(content, style string) *Markdown {
	if style == "" {
		style = "dark"
	}
	return &Markdown{
		content: content,
		style:   style,
		cache:   make(map[string][]string),
	}
}

// SetContent updates the markdown content.
func (md *Markdown) SetContent(content string) {
	md.mu.Lock()
	md.content = content
	md.mu.Unlock()
}

// Invalidate drops every cached rendering.
func (md *Markdown) Invalidate() {
	md.mu.Lock()
	clear(md.cache)
	md.mu.Unlock()
}

// Render writes the rendered markdown into the buffer.
func (md *Markdown) Render(out *tui.RenderBuffer, width int) {
	md.mu.Lock()
	defer md.mu.Unlock()

	if md.content == "" {
		return
	}
	key := cacheKey(md.content, width)
	if lines, ok := md.cache[key]; ok {
		out.WriteLines(lines)
		return
	}
	lines := strings.Split(md.render(width), "\n")
	md.cache[key] = lines
	out.WriteLines(lines)
}

func (md *Markdown) render(width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(md.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Fallback: return raw text
		return md.content
	}
	rendered, err := renderer.Render(md.content)
	if err != nil {
		return md.content
	}
	// glamour pads with blank lines and trailing spaces
	return strings.Trim(rendered, "\n ")
}

// cacheKey produces a string key from content hash and width.
func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
