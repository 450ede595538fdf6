// ABOUTME: Cell-based geometry primitives: Rect, Size, Viewport, Anchor, Geometry
// ABOUTME: Coordinates are terminal cells; Rect edges are half-open like image.Rectangle

package geom

import "fmt"

// Rect is an axis-aligned rectangle in cells.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Left, r.Top, r.Width, r.Height)
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// Viewport is the visible window onto the document.
// It must be read fresh for every computation.
type Viewport struct {
	ScrollX int
	ScrollY int
	Width   int
	Height  int
}

// Rect returns the viewport area in document coordinates.
func (v Viewport) Rect() Rect {
	return Rect{Left: v.ScrollX, Top: v.ScrollY, Width: v.Width, Height: v.Height}
}

// Anchor is an element's full bounding box in viewport coordinates
// together with its computed visibility.
type Anchor struct {
	Rect
	Visible bool
}

// Geometry is where an overlay goes: a document-space rectangle and the
// stack index that places it above its anchor.
type Geometry struct {
	Rect
	StackIndex int
}
