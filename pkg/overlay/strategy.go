// ABOUTME: Placement strategies: Cover fills the anchor, Edge sits beside it
// ABOUTME: Busy indicators cover their anchor; tooltips use Edge with an alignment pair

package overlay

import "github.com/mauromedda/tui-overlay/pkg/geom"

// Strategy turns the anchor's visible geometry and the overlay's natural
// size into the overlay rectangle.
type Strategy interface {
	Place(visible geom.Geometry, size geom.Size) geom.Rect
}

// Cover makes the overlay exactly the anchor's visible bounds.
type Cover struct{}

func (Cover) Place(visible geom.Geometry, _ geom.Size) geom.Rect { return visible.Rect }

// Edge places the overlay next to the anchor.
type Edge struct {
	H geom.HAlign
	V geom.VAlign
}

func (e Edge) Place(visible geom.Geometry, size geom.Size) geom.Rect {
	return geom.PlaceAdjacent(visible.Rect, size, e.H, e.V)
}
