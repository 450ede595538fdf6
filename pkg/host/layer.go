// ABOUTME: Layer is a mounted overlay node: rectangle, stack index, class set and content
// ABOUTME: The "shown" class gates painting; Fixed layers ignore the scroll offset

package host

import (
	"slices"
	"sync"

	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/tui"
)

// Class names toggled on layers.
const (
	ClassShown     = "shown"
	ClassMaximized = "maximized"
	ClassMovable   = "movable"
	ClassResizable = "resizable"
)

// Layer is an overlay node. Rect is in document coordinates unless Fixed,
// in which case it is in viewport coordinates.
type Layer struct {
	id string

	mu      sync.RWMutex
	rect    geom.Rect
	z       int
	fixed   bool
	classes []string
	content tui.Component
}

// NewLayer creates an unmounted, hidden layer.
func NewLayer(id string, content tui.Component) *Layer {
	return &Layer{id: id, content: content}
}

func (l *Layer) ID() string { return l.id }

func (l *Layer) Rect() geom.Rect {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rect
}

func (l *Layer) SetRect(r geom.Rect) {
	l.mu.Lock()
	l.rect = r
	l.mu.Unlock()
}

func (l *Layer) Z() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.z
}

func (l *Layer) SetZ(z int) {
	l.mu.Lock()
	l.z = z
	l.mu.Unlock()
}

func (l *Layer) Fixed() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fixed
}

func (l *Layer) SetFixed(fixed bool) {
	l.mu.Lock()
	l.fixed = fixed
	l.mu.Unlock()
}

func (l *Layer) Content() tui.Component {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.content
}

func (l *Layer) SetContent(c tui.Component) {
	l.mu.Lock()
	l.content = c
	l.mu.Unlock()
}

// AddClass adds name to the class set.
func (l *Layer) AddClass(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !slices.Contains(l.classes, name) {
		l.classes = append(l.classes, name)
	}
}

// RemoveClass removes name from the class set.
func (l *Layer) RemoveClass(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.classes = slices.DeleteFunc(l.classes, func(c string) bool { return c == name })
}

// ToggleClass adds or removes name.
func (l *Layer) ToggleClass(name string, on bool) {
	if on {
		l.AddClass(name)
	} else {
		l.RemoveClass(name)
	}
}

// HasClass reports whether name is set.
func (l *Layer) HasClass(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Contains(l.classes, name)
}

// Classes returns a copy of the class set in insertion order.
func (l *Layer) Classes() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.classes)
}

// Shown reports whether the layer is painted.
func (l *Layer) Shown() bool { return l.HasClass(ClassShown) }

// ScreenRect returns the layer's rectangle in viewport coordinates.
func (l *Layer) ScreenRect(vp geom.Viewport) geom.Rect {
	r := l.Rect()
	if l.Fixed() {
		return r
	}
	return r.Translate(-vp.ScrollX, -vp.ScrollY)
}
