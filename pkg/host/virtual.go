// ABOUTME: Virtual implements Host in memory for tests and headless rendering
// ABOUTME: Manual clock via Advance, scripted scroll/resize/pointer input, mount failure injection

package host

import (
	"slices"
	"time"

	"github.com/mauromedda/tui-overlay/pkg/geom"
)

// Virtual is a fake Host. Timers fire only from Advance, so tests are
// deterministic.
type Virtual struct {
	*Dispatcher

	vp     geom.Viewport
	stack  Stack
	now    time.Duration
	timers []*timer
	seq    uint64

	mountErr error
}

type timer struct {
	at        time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// NewVirtual returns a host with a width x height viewport scrolled to the origin.
func NewVirtual(width, height int) *Virtual {
	v := &Virtual{vp: geom.Viewport{Width: width, Height: height}}
	v.Dispatcher = NewDispatcher(v)
	return v
}

// Viewport returns the current viewport.
func (v *Virtual) Viewport() geom.Viewport { return v.vp }

// ScrollTo moves the viewport origin and notifies scroll listeners.
func (v *Virtual) ScrollTo(x, y int) {
	v.vp.ScrollX, v.vp.ScrollY = x, y
	_ = v.Scrolled()
}

// Resize changes the viewport size and notifies resize listeners.
func (v *Virtual) Resize(width, height int) {
	v.vp.Width, v.vp.Height = width, height
	_ = v.Resized()
}

// Press, Drag and Release script a pointer gesture in viewport cells.
func (v *Virtual) Press(x, y int)   { _ = v.PointerDown(Pointer{X: x, Y: y}) }
func (v *Virtual) Drag(x, y int)    { _ = v.PointerMove(Pointer{X: x, Y: y}) }
func (v *Virtual) Release(x, y int) { _ = v.PointerUp(Pointer{X: x, Y: y}) }

// FailMounts makes every later Mount return err until called with nil.
func (v *Virtual) FailMounts(err error) { v.mountErr = err }

// Mount adds a layer unless a failure was injected.
func (v *Virtual) Mount(l *Layer) error {
	if v.mountErr != nil {
		return v.mountErr
	}
	return v.stack.Mount(l)
}

// Unmount removes a layer.
func (v *Virtual) Unmount(l *Layer) error { return v.stack.Unmount(l) }

// LayerAt returns the topmost shown layer under a viewport cell.
func (v *Virtual) LayerAt(x, y int) *Layer { return v.stack.LayerAt(v.vp, x, y) }

// Layers returns mounted layers in painting order.
func (v *Virtual) Layers() []*Layer { return v.stack.Layers() }

// Render composes the shown layers over document rows.
func (v *Virtual) Render(document []string) []string { return v.stack.Compose(document, v.vp) }

// After schedules fn at Now()+d.
func (v *Virtual) After(d time.Duration, fn func()) func() {
	v.seq++
	t := &timer{at: v.now + d, seq: v.seq, fn: fn}
	v.timers = append(v.timers, t)
	return func() { t.cancelled = true }
}

// Now returns the virtual time elapsed since creation.
func (v *Virtual) Now() time.Duration { return v.now }

// PendingTimers returns the number of timers that have neither fired nor
// been cancelled.
func (v *Virtual) PendingTimers() int {
	n := 0
	for _, t := range v.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing due timers in deadline
// order. Timers scheduled by a firing timer run too if they fall due.
func (v *Virtual) Advance(d time.Duration) {
	target := v.now + d
	for {
		v.timers = slices.DeleteFunc(v.timers, func(t *timer) bool { return t.cancelled })
		i := v.nextDue(target)
		if i < 0 {
			break
		}
		t := v.timers[i]
		t.cancelled = true
		v.now = t.at
		t.fn()
	}
	v.now = target
}

func (v *Virtual) nextDue(target time.Duration) int {
	best := -1
	for i, t := range v.timers {
		if t.cancelled || t.at > target {
			continue
		}
		if best < 0 || t.at < v.timers[best].at || (t.at == v.timers[best].at && t.seq < v.timers[best].seq) {
			best = i
		}
	}
	return best
}
