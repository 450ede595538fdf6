// ABOUTME: Bubble Tea implementation of host.Host: viewport from WindowSizeMsg, pointers from MouseMsg
// ABOUTME: Timers become tea.Tick commands so every widget callback runs on the Update goroutine

package teahost

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/tui-overlay/internal/log"
	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/host"
	"github.com/mauromedda/tui-overlay/pkg/tui"
)

// WheelStep is how many rows one wheel notch scrolls.
const WheelStep = 3

// timerMsg fires the timer registered under id.
type timerMsg struct{ id uint64 }

// callMsg runs a function on the Update goroutine.
type callMsg func()

// Do wraps fn as a message. Goroutines outside the program use it with
// tea.Program.Send to reach widgets safely.
func Do(fn func()) tea.Msg { return callMsg(fn) }

// Host adapts a scrolling document plus overlay layers to Bubble Tea.
// It is not safe for concurrent use; all calls happen inside Update.
type Host struct {
	*host.Dispatcher

	doc     tui.Component
	vp      geom.Viewport
	stack   host.Stack
	timers  map[uint64]func()
	seq     uint64
	pending []tea.Cmd
	logger  *log.Logger
}

// New returns a host rendering doc as the scrollable background.
// The viewport is empty until the first WindowSizeMsg.
func New(doc tui.Component) *Host {
	h := &Host{
		doc:    doc,
		timers: make(map[uint64]func()),
		logger: log.With("teahost"),
	}
	h.Dispatcher = host.NewDispatcher(h)
	return h
}

// Viewport returns the current viewport.
func (h *Host) Viewport() geom.Viewport { return h.vp }

// Mount adds an overlay layer.
func (h *Host) Mount(l *host.Layer) error { return h.stack.Mount(l) }

// Unmount removes an overlay layer.
func (h *Host) Unmount(l *host.Layer) error { return h.stack.Unmount(l) }

// LayerAt returns the topmost shown layer under a viewport cell.
func (h *Host) LayerAt(x, y int) *host.Layer { return h.stack.LayerAt(h.vp, x, y) }

// Layers returns mounted layers in painting order.
func (h *Host) Layers() []*host.Layer { return h.stack.Layers() }

// After schedules fn through a tea.Tick command collected by the next
// Update or Flush.
func (h *Host) After(d time.Duration, fn func()) func() {
	h.seq++
	id := h.seq
	h.timers[id] = fn
	h.pending = append(h.pending, tea.Tick(d, func(time.Time) tea.Msg { return timerMsg{id: id} }))
	return func() { delete(h.timers, id) }
}

// PendingTimers returns the number of scheduled, uncancelled callbacks.
func (h *Host) PendingTimers() int { return len(h.timers) }

// Flush returns the commands queued since the last call.
func (h *Host) Flush() tea.Cmd {
	if len(h.pending) == 0 {
		return nil
	}
	cmds := h.pending
	h.pending = nil
	return tea.Batch(cmds...)
}

// DocumentHeight is the number of rows the document renders at the
// current width.
func (h *Host) DocumentHeight() int {
	return len(tui.RenderLines(h.doc, h.vp.Width))
}

// ScrollBy moves the viewport vertically, clamped to the document.
func (h *Host) ScrollBy(dy int) {
	h.ScrollTo(h.vp.ScrollY + dy)
}

// ScrollTo moves the viewport to row y, clamped to the document.
func (h *Host) ScrollTo(y int) {
	limit := max(h.DocumentHeight()-h.vp.Height, 0)
	y = min(max(y, 0), limit)
	if y == h.vp.ScrollY {
		return
	}
	h.vp.ScrollY = y
	h.report(h.Scrolled())
}

// Update applies one message and returns the commands it produced.
func (h *Host) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.vp.Width, h.vp.Height = msg.Width, msg.Height
		h.report(h.Resized())
		h.ScrollBy(0)

	case tea.MouseMsg:
		h.mouse(msg)

	case timerMsg:
		if fn, ok := h.timers[msg.id]; ok {
			delete(h.timers, msg.id)
			fn()
		}

	case callMsg:
		msg()
	}
	return h.Flush()
}

func (h *Host) mouse(msg tea.MouseMsg) {
	p := host.Pointer{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			h.ScrollBy(-WheelStep)
		case tea.MouseButtonWheelDown:
			h.ScrollBy(WheelStep)
		case tea.MouseButtonLeft:
			h.report(h.PointerDown(p))
		}
	case tea.MouseActionMotion:
		h.report(h.PointerMove(p))
	case tea.MouseActionRelease:
		h.report(h.PointerUp(p))
	}
}

// View renders the visible document rows with every shown layer on top.
func (h *Host) View() string {
	if h.vp.Width <= 0 || h.vp.Height <= 0 {
		return ""
	}
	lines := tui.RenderLines(h.doc, h.vp.Width)
	return strings.Join(h.stack.Compose(lines, h.vp), "\n")
}

func (h *Host) report(err error) {
	if err != nil {
		h.logger.Warn("listener failed: %v", err)
	}
}
