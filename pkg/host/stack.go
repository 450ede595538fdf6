// ABOUTME: Stack keeps mounted layers, answers hit tests, and composes them onto a document view
// ABOUTME: Shared by every host; painting order is the layer Z with mount order breaking ties

package host

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/tui"
)

var (
	// ErrAlreadyMounted is returned when mounting a layer twice.
	ErrAlreadyMounted = errors.New("host: layer already mounted")
	// ErrNotMounted is returned when unmounting a layer that is not mounted.
	ErrNotMounted = errors.New("host: layer not mounted")
)

// Stack is an ordered set of mounted layers.
type Stack struct {
	layers []*Layer
}

// Mount adds l on top of the mount order.
func (s *Stack) Mount(l *Layer) error {
	if l == nil {
		return errors.New("host: mount nil layer")
	}
	if slices.Contains(s.layers, l) {
		return fmt.Errorf("mount %s: %w", l.ID(), ErrAlreadyMounted)
	}
	s.layers = append(s.layers, l)
	return nil
}

// Unmount removes l.
func (s *Stack) Unmount(l *Layer) error {
	i := slices.Index(s.layers, l)
	if i < 0 {
		id := "<nil>"
		if l != nil {
			id = l.ID()
		}
		return fmt.Errorf("unmount %s: %w", id, ErrNotMounted)
	}
	s.layers = slices.Delete(s.layers, i, i+1)
	return nil
}

// Layers returns mounted layers in painting order.
func (s *Stack) Layers() []*Layer {
	out := slices.Clone(s.layers)
	slices.SortStableFunc(out, func(a, b *Layer) int { return a.Z() - b.Z() })
	return out
}

// LayerAt returns the topmost shown layer containing the viewport cell.
func (s *Stack) LayerAt(vp geom.Viewport, x, y int) *Layer {
	layers := s.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if l.Shown() && l.ScreenRect(vp).Contains(x, y) {
			return l
		}
	}
	return nil
}

// Compose paints every shown layer over the visible part of document.
// document holds one string per document row.
func (s *Stack) Compose(document []string, vp geom.Viewport) []string {
	var background []string
	if vp.ScrollY < len(document) {
		background = document[max(vp.ScrollY, 0):]
	}
	if vp.ScrollX > 0 {
		shifted := make([]string, len(background))
		for i, line := range background {
			shifted[i] = cutLeft(line, vp.ScrollX)
		}
		background = shifted
	}

	var placements []tui.Placement
	for _, l := range s.Layers() {
		if !l.Shown() {
			continue
		}
		r := l.ScreenRect(vp)
		if r.Empty() {
			continue
		}
		buf := tui.AcquireBuffer()
		if c := l.Content(); c != nil {
			c.Render(buf, r.Width)
		}
		buf.Clip(r.Height)
		placements = append(placements, tui.Placement{
			Lines: slices.Clone(buf.Lines),
			Left:  r.Left,
			Top:   r.Top,
			Width: r.Width,
			Z:     l.Z(),
		})
		tui.ReleaseBuffer(buf)
	}
	return tui.Composite(background, placements, vp.Width, vp.Height)
}

// cutLeft drops the first n cells of line.
func cutLeft(line string, n int) string {
	return ansi.TruncateLeft(line, n, "")
}
