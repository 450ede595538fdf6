// ABOUTME: Positioner keeps an overlay layer glued to its anchor while shown
// ABOUTME: Owns scroll/resize subscriptions between Attach and Detach; hides the layer when the anchor leaves the viewport

package overlay

import (
	"github.com/mauromedda/tui-overlay/pkg/event"
	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/host"
	"github.com/mauromedda/tui-overlay/pkg/tui"
	"github.com/mauromedda/tui-overlay/pkg/tui/width"
)

// Env is the part of the host a positioner needs.
type Env interface {
	host.Viewporter
	host.Notifier
}

// Measure returns the natural size of the overlay's content given the
// visible anchor bounds.
type Measure func(anchor geom.Rect) geom.Size

// MeasureContent measures c rendered at most maxWidth cells wide.
func MeasureContent(c tui.Component, maxWidth int) Measure {
	return func(geom.Rect) geom.Size {
		return width.Measure(tui.RenderLines(c, maxWidth))
	}
}

// Positioner places one layer relative to one anchor.
type Positioner struct {
	env      Env
	anchor   host.Element
	layer    *host.Layer
	strategy Strategy
	measure  Measure

	scrollSub *event.Subscription
	resizeSub *event.Subscription
}

// New creates a detached positioner. measure may be nil for strategies
// that ignore the overlay size.
func New(env Env, anchor host.Element, layer *host.Layer, strategy Strategy, measure Measure) *Positioner {
	return &Positioner{
		env:      env,
		anchor:   anchor,
		layer:    layer,
		strategy: strategy,
		measure:  measure,
	}
}

// Anchor returns the element the overlay follows.
func (p *Positioner) Anchor() host.Element { return p.anchor }

// Strategy returns the placement strategy.
func (p *Positioner) Strategy() Strategy { return p.strategy }

// SetStrategy swaps the strategy and repositions when attached.
func (p *Positioner) SetStrategy(s Strategy) {
	p.strategy = s
	if p.Attached() {
		p.Reposition()
	}
}

// Attached reports whether the positioner is tracking scroll and resize.
func (p *Positioner) Attached() bool { return p.scrollSub != nil }

// Attach subscribes to scroll and resize and positions immediately.
// Calling it while attached only repositions.
func (p *Positioner) Attach() bool {
	if !p.Attached() {
		p.scrollSub = p.env.OnScroll(func() { p.Reposition() })
		p.resizeSub = p.env.OnResize(func() { p.Reposition() })
	}
	return p.Reposition()
}

// Detach releases both subscriptions. It is safe to call repeatedly.
func (p *Positioner) Detach() {
	event.Release(p.scrollSub, p.resizeSub)
	p.scrollSub, p.resizeSub = nil, nil
}

// Reposition recomputes the geometry and applies it to the layer. When the
// anchor is not on screen it removes the shown class and reports false.
func (p *Positioner) Reposition() bool {
	g, ok := Compute(p.anchor, p.env.Viewport())
	if !ok {
		p.layer.RemoveClass(host.ClassShown)
		return false
	}

	var size geom.Size
	if p.measure != nil {
		size = p.measure(g.Rect)
	}
	p.layer.SetRect(p.strategy.Place(g, size))
	p.layer.SetZ(g.StackIndex)
	p.layer.AddClass(host.ClassShown)
	return true
}

// Compute returns the anchor's visible geometry in document coordinates.
func Compute(anchor host.Element, vp geom.Viewport) (geom.Geometry, bool) {
	a := geom.Anchor{Rect: anchor.Bounds(), Visible: anchor.Visible()}
	return geom.ComputeVisibleBounds(a, vp, MaxZIndex(anchor))
}

// MaxZIndex returns the highest explicit z-index on el and its ancestors,
// stopping below the root. Auto entries are skipped; the floor is 0.
func MaxZIndex(el host.Element) int {
	maxZ := 0
	for cur := el; cur != nil; {
		if z, ok := cur.ZIndex(); ok && z > maxZ {
			maxZ = z
		}
		parent := cur.Parent()
		if parent == nil || parent.Parent() == nil {
			break
		}
		cur = parent
	}
	return maxZ
}
