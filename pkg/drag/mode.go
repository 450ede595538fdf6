// ABOUTME: Drag modes: move plus edge and corner resizes, each a pure delta function
// ABOUTME: SizePolicy clamps the result while keeping the edge opposite the handle fixed

package drag

import "github.com/mauromedda/tui-overlay/pkg/geom"

// Mode selects how pointer deltas deform the starting rectangle.
type Mode int

const (
	Move Mode = iota
	ResizeRight
	ResizeLeft
	ResizeBottom
	ResizeTop
	ResizeBottomRight
)

func (m Mode) String() string {
	switch m {
	case Move:
		return "move"
	case ResizeRight:
		return "resize-right"
	case ResizeLeft:
		return "resize-left"
	case ResizeBottom:
		return "resize-bottom"
	case ResizeTop:
		return "resize-top"
	case ResizeBottomRight:
		return "resize-bottom-right"
	default:
		return "unknown"
	}
}

// IsResize reports whether m changes the size rather than the position.
func (m Mode) IsResize() bool { return m != Move }

// Apply returns start deformed by (dx, dy). It never reads global state.
func (m Mode) Apply(dx, dy int, start geom.Rect) geom.Rect {
	r := start
	switch m {
	case Move:
		r.Left += dx
		r.Top += dy
	case ResizeRight:
		r.Width += dx
	case ResizeLeft:
		r.Left += dx
		r.Width -= dx
	case ResizeBottom:
		r.Height += dy
	case ResizeTop:
		r.Top += dy
		r.Height -= dy
	case ResizeBottomRight:
		r.Width += dx
		r.Height += dy
	}
	return r
}

// SizePolicy bounds the size produced by a resize. The zero value only
// forbids negative sizes.
type SizePolicy struct {
	MinWidth  int
	MinHeight int
}

// Clamp enforces the minimums on a resized r. For left and top resizes the right or
// bottom edge of start stays where it was.
func (p SizePolicy) Clamp(m Mode, start, r geom.Rect) geom.Rect {
	if !m.IsResize() {
		return r
	}
	minW, minH := max(p.MinWidth, 0), max(p.MinHeight, 0)
	if r.Width < minW {
		r.Width = minW
		if m == ResizeLeft {
			r.Left = start.Right() - minW
		}
	}
	if r.Height < minH {
		r.Height = minH
		if m == ResizeTop {
			r.Top = start.Bottom() - minH
		}
	}
	return r
}
