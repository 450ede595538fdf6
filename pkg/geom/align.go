// ABOUTME: Alignment enums and placement helpers for tooltips and floating windows
// ABOUTME: PlaceAdjacent positions an overlay around an anchor; AlignWithin places it inside a box

package geom

import (
	"fmt"
	"strings"
)

// HAlign is a horizontal alignment.
type HAlign int

const (
	AlignCenter HAlign = iota
	AlignLeft
	AlignRight
)

func (h HAlign) String() string {
	switch h {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// ParseHAlign parses "left", "center" or "right".
func ParseHAlign(s string) (HAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "center", "":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignCenter, fmt.Errorf("unknown horizontal alignment %q", s)
}

// VAlign is a vertical alignment.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

func (v VAlign) String() string {
	switch v {
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

// ParseVAlign parses "top", "middle" or "bottom".
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "":
		return AlignTop, nil
	case "middle":
		return AlignMiddle, nil
	case "bottom":
		return AlignBottom, nil
	}
	return AlignTop, fmt.Errorf("unknown vertical alignment %q", s)
}

// PlaceAdjacent positions an overlay of the given size relative to bounds.
//
// Vertically, top puts the overlay directly above bounds, bottom directly
// below, and middle centers it on bounds. Horizontally, left aligns the left
// edges, right aligns the right edges, and center centers the overlay.
func PlaceAdjacent(bounds Rect, size Size, h HAlign, v VAlign) Rect {
	out := Rect{Left: bounds.Left, Width: size.Width, Height: size.Height}

	switch h {
	case AlignCenter:
		out.Left = bounds.Left + bounds.Width/2 - size.Width/2
	case AlignRight:
		out.Left = bounds.Right() - size.Width
	}

	switch v {
	case AlignTop:
		out.Top = bounds.Top - size.Height
	case AlignMiddle:
		out.Top = bounds.Top + bounds.Height/2 - size.Height/2
	case AlignBottom:
		out.Top = bounds.Bottom()
	}
	return out
}

// AlignWithin places a box of the given size inside container.
func AlignWithin(container Rect, size Size, h HAlign, v VAlign) Rect {
	out := Rect{Left: container.Left, Top: container.Top, Width: size.Width, Height: size.Height}

	switch h {
	case AlignCenter:
		out.Left += (container.Width - size.Width) / 2
	case AlignRight:
		out.Left = container.Right() - size.Width
	}

	switch v {
	case AlignMiddle:
		out.Top += (container.Height - size.Height) / 2
	case AlignBottom:
		out.Top = container.Bottom() - size.Height
	}
	return out
}
