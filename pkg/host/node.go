// ABOUTME: Node is a document element usable as an anchor: document rect, display flag, z-index, parent
// ABOUTME: Bounds are reported in viewport coordinates by subtracting the live scroll offset

package host

import "github.com/mauromedda/tui-overlay/pkg/geom"

// Node is a concrete Element positioned in document coordinates.
type Node struct {
	Name string

	vp     Viewporter
	rect   geom.Rect
	hidden bool
	z      int
	hasZ   bool
	parent *Node
}

// NewNode creates a visible node with auto z-index.
func NewNode(vp Viewporter, name string, rect geom.Rect) *Node {
	return &Node{Name: name, vp: vp, rect: rect}
}

// Child creates a node parented to n.
func (n *Node) Child(name string, rect geom.Rect) *Node {
	c := NewNode(n.vp, name, rect)
	c.parent = n
	return c
}

// DocumentRect returns the node's rectangle in document coordinates.
func (n *Node) DocumentRect() geom.Rect { return n.rect }

// SetDocumentRect moves or resizes the node.
func (n *Node) SetDocumentRect(r geom.Rect) { n.rect = r }

// SetHidden toggles display of the node and, through it, its descendants.
func (n *Node) SetHidden(hidden bool) { n.hidden = hidden }

// SetZIndex gives the node an explicit stacking index.
func (n *Node) SetZIndex(z int) {
	n.z = z
	n.hasZ = true
}

// ClearZIndex resets the stacking index to auto.
func (n *Node) ClearZIndex() { n.hasZ = false }

func (n *Node) Bounds() geom.Rect {
	vp := n.vp.Viewport()
	return n.rect.Translate(-vp.ScrollX, -vp.ScrollY)
}

// Visible is false when the node or an ancestor is hidden, or it has no area.
func (n *Node) Visible() bool {
	if n.rect.Empty() {
		return false
	}
	for cur := n; cur != nil; cur = cur.parent {
		if cur.hidden {
			return false
		}
	}
	return true
}

func (n *Node) ZIndex() (int, bool) { return n.z, n.hasZ }

func (n *Node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}
