// ABOUTME: Visible-bounds computation for an anchor against the current viewport
// ABOUTME: Clips per axis, rejects hidden or off-screen anchors, stacks one above the anchor

package geom

// ComputeVisibleBounds returns the part of the anchor that is on screen,
// in document coordinates. maxZ is the highest z-index found on the anchor's
// ancestor chain; the result stacks one layer above it.
// It reports false when the anchor is hidden or entirely outside the viewport.
func ComputeVisibleBounds(a Anchor, vp Viewport, maxZ int) (Geometry, bool) {
	if !a.Visible {
		return Geometry{}, false
	}
	if a.Right() <= 0 || a.Left >= vp.Width || a.Bottom() <= 0 || a.Top >= vp.Height {
		return Geometry{}, false
	}

	left, width := clipAxis(a.Left, a.Width, vp.Width)
	top, height := clipAxis(a.Top, a.Height, vp.Height)

	return Geometry{
		Rect: Rect{
			Left:   left + vp.ScrollX,
			Top:    top + vp.ScrollY,
			Width:  width,
			Height: height,
		},
		StackIndex: max(maxZ, 0) + 1,
	}, true
}

// clipAxis clips the segment [start, start+length) to [0, viewLength).
func clipAxis(start, length, viewLength int) (visibleStart, visibleLength int) {
	end := start + length
	visibleLength = length + min(start, 0) + (viewLength - max(end, viewLength))
	return max(start, 0), max(visibleLength, 0)
}
