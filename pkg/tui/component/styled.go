// ABOUTME: Styled wraps a child component in a lipgloss style (padding, border, colors)
// ABOUTME: The child renders at the width left after the style's frame

package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/tui-overlay/pkg/tui"
)

// Styled renders Child inside the style returned by Style. Style is a
// func so theme changes apply on the next render.
type Styled struct {
	Child tui.Component
	Style func() lipgloss.Style
}

// NewStyled wraps child with style.
func NewStyled(child tui.Component, style func() lipgloss.Style) *Styled {
	return &Styled{Child: child, Style: style}
}

// FrameWidth returns the horizontal cells taken by borders and padding.
func (s *Styled) FrameWidth() int {
	return s.Style().GetHorizontalFrameSize()
}

// Render draws the styled child.
func (s *Styled) Render(out *tui.RenderBuffer, width int) {
	st := s.Style()
	inner := width - st.GetHorizontalFrameSize()
	if inner <= 0 {
		return
	}
	body := tui.RenderLines(s.Child, inner)
	out.WriteLines(strings.Split(st.Render(strings.Join(body, "\n")), "\n"))
}

// Invalidate invalidates the child.
func (s *Styled) Invalidate() {
	if s.Child != nil {
		s.Child.Invalidate()
	}
}
