// ABOUTME: Core TUI interfaces: Component and the ComponentFunc adapter
// ABOUTME: Defines the contract for everything mounted inside an overlay layer

package tui

// Component is the base interface for all TUI elements.
// Components render into a pooled RenderBuffer and must not exceed the given width.
type Component interface {
	// Render writes the component's visual lines into out.
	// Lines must not exceed width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate clears any cached render state, forcing a full re-render
	// on the next Render call.
	Invalidate()
}

// ComponentFunc adapts a render function without cached state.
type ComponentFunc func(out *RenderBuffer, width int)

func (f ComponentFunc) Render(out *RenderBuffer, width int) { f(out, width) }

func (ComponentFunc) Invalidate() {}

// RenderLines renders c at width into a fresh slice.
func RenderLines(c Component, width int) []string {
	if c == nil {
		return nil
	}
	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)
	c.Render(buf, width)
	out := make([]string, len(buf.Lines))
	copy(out, buf.Lines)
	return out
}
