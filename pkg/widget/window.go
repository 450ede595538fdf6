// ABOUTME: Window is a floating, framed overlay with a title bar, close/maximize buttons and a body
// ABOUTME: Title drags move it, frame edges resize it; both run through the drag controller

package widget

import (
	"strings"

	"github.com/mauromedda/tui-overlay/pkg/drag"
	"github.com/mauromedda/tui-overlay/pkg/event"
	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/host"
	"github.com/mauromedda/tui-overlay/pkg/tui"
	"github.com/mauromedda/tui-overlay/pkg/tui/mouse"
	"github.com/mauromedda/tui-overlay/pkg/tui/theme"
	"github.com/mauromedda/tui-overlay/pkg/tui/width"
)

// Window events.
const (
	EventMoveStart                 event.Name = "moveStart"
	EventMove                      event.Name = "move"
	EventMoveEnd                   event.Name = "moveEnd"
	EventResizeStart               event.Name = "resizeStart"
	EventResize                    event.Name = "resize"
	EventResizeEnd                 event.Name = "resizeEnd"
	EventMaximizing                event.Name = "maximizing"
	EventMaximized                 event.Name = "maximized"
	EventRestoring                 event.Name = "restoring"
	EventRestored                  event.Name = "restored"
	EventMovableChanged            event.Name = "movableChanged"
	EventResizableChanged          event.Name = "resizableChanged"
	EventTitleChanged              event.Name = "titleChanged"
	EventShowCloseButtonChanged    event.Name = "showCloseButtonChanged"
	EventShowMaximizeButtonChanged event.Name = "showMaximizeButtonChanged"
)

// WindowZ is the stack index of every window layer.
const WindowZ = 1000

const (
	regionBody     = "body"
	regionTitle    = "title"
	regionClose    = "close"
	regionMaximize = "maximize"

	buttonWidth = 3
)

// WindowOption configures a Window.
type WindowOption func(*windowConfig)

type windowConfig struct {
	title     string
	body      tui.Component
	actions   tui.Component
	rect      geom.Rect
	movable   bool
	resizable bool
	showClose bool
	showMax   bool
	maximized bool
	policy    drag.SizePolicy
}

func WithTitle(s string) WindowOption         { return func(c *windowConfig) { c.title = s } }
func WithContent(b tui.Component) WindowOption { return func(c *windowConfig) { c.body = b } }
func WithActions(a tui.Component) WindowOption { return func(c *windowConfig) { c.actions = a } }
func WithMovable(v bool) WindowOption          { return func(c *windowConfig) { c.movable = v } }
func WithResizable(v bool) WindowOption        { return func(c *windowConfig) { c.resizable = v } }
func WithCloseButton(v bool) WindowOption      { return func(c *windowConfig) { c.showClose = v } }
func WithMaximizeButton(v bool) WindowOption   { return func(c *windowConfig) { c.showMax = v } }

// WithRect sets the initial viewport rectangle. Without it the window is
// centered at half the viewport size on first show.
func WithRect(r geom.Rect) WindowOption { return func(c *windowConfig) { c.rect = r } }

// WithMaximized starts the window maximized. It only applies when the
// maximize button is shown.
func WithMaximized(v bool) WindowOption { return func(c *windowConfig) { c.maximized = v } }

// WithMinSize sets the smallest size a resize may produce.
func WithMinSize(w, h int) WindowOption {
	return func(c *windowConfig) { c.policy = drag.SizePolicy{MinWidth: w, MinHeight: h} }
}

// Window is a floating dialog positioned in viewport coordinates.
type Window struct {
	*dialog

	title     string
	body      tui.Component
	actions   tui.Component
	rect      geom.Rect
	movable   bool
	resizable bool
	showClose bool
	showMax   bool
	maximized bool

	dragEm    *event.Emitter
	drag      *drag.Controller
	hits      *mouse.HitMap
	downSub   *event.Subscription
	resizeSub *event.Subscription
}

// NewWindow creates a hidden window.
func NewWindow(h host.Host, opts ...WindowOption) *Window {
	cfg := windowConfig{movable: true, resizable: true, showClose: true, showMax: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &Window{
		dialog:    newDialog(h, "window", nextLayerID("window")),
		title:     cfg.title,
		body:      cfg.body,
		actions:   cfg.actions,
		rect:      cfg.rect,
		movable:   cfg.movable,
		resizable: cfg.resizable,
		showClose: cfg.showClose,
		showMax:   cfg.showMax,
		maximized: cfg.maximized && cfg.showMax,
		hits:      mouse.NewHitMap(),
	}
	w.em.SetSource(w)

	w.layer.SetFixed(true)
	w.layer.SetZ(WindowZ)
	w.layer.SetContent(tui.ComponentFunc(w.render))
	w.layer.ToggleClass(host.ClassMovable, w.movable)
	w.layer.ToggleClass(host.ClassResizable, w.resizable)
	w.layer.ToggleClass(host.ClassMaximized, w.maximized)

	w.dragEm = event.New(w)
	w.drag = drag.New(h, w.dragEm, drag.WithSizePolicy(cfg.policy))
	w.dragEm.On(drag.EventDragStart, w.onDragStart)
	w.dragEm.On(drag.EventDragging, event.Notify(w.onDragging))
	w.dragEm.On(drag.EventDragEnd, event.Notify(w.onDragEnd))

	w.apply = w.onApply
	w.remove = w.onRemove
	return w
}

// Title returns the title bar text.
func (w *Window) Title() string { return w.title }

// SetTitle changes the title, emitting titleChanged.
func (w *Window) SetTitle(s string) {
	if w.title == s {
		return
	}
	prev := w.title
	w.title = s
	w.emit(EventTitleChanged, event.Changed(prev, s))
}

// Content returns the body component.
func (w *Window) Content() tui.Component { return w.body }

// SetContent replaces the body component.
func (w *Window) SetContent(c tui.Component) { w.body = c }

// Actions returns the footer component.
func (w *Window) Actions() tui.Component { return w.actions }

// SetActions replaces the footer drawn under the body.
func (w *Window) SetActions(c tui.Component) { w.actions = c }

// Rect returns the restored window rectangle in viewport coordinates.
func (w *Window) Rect() geom.Rect { return w.rect }

// SetRect moves or resizes the window programmatically.
func (w *Window) SetRect(r geom.Rect) {
	w.rect = r
	w.syncLayer()
}

// Movable reports whether the title bar drags the window.
func (w *Window) Movable() bool { return w.movable }

// SetMovable changes the movable property, emitting movableChanged.
func (w *Window) SetMovable(v bool) {
	if w.movable == v {
		return
	}
	w.movable = v
	w.layer.ToggleClass(host.ClassMovable, v)
	w.emit(EventMovableChanged, event.Changed(!v, v))
}

// Resizable reports whether the frame edges resize the window.
func (w *Window) Resizable() bool { return w.resizable }

// SetResizable changes the resizable property, emitting resizableChanged.
func (w *Window) SetResizable(v bool) {
	if w.resizable == v {
		return
	}
	w.resizable = v
	w.layer.ToggleClass(host.ClassResizable, v)
	w.emit(EventResizableChanged, event.Changed(!v, v))
}

// CloseButtonVisible reports whether the close button is drawn.
func (w *Window) CloseButtonVisible() bool { return w.showClose }

// SetCloseButtonVisible toggles the close button, emitting showCloseButtonChanged.
func (w *Window) SetCloseButtonVisible(v bool) {
	if w.showClose == v {
		return
	}
	w.showClose = v
	w.emit(EventShowCloseButtonChanged, event.Changed(!v, v))
}

// MaximizeButtonVisible reports whether the maximize button is drawn.
func (w *Window) MaximizeButtonVisible() bool { return w.showMax }

// SetMaximizeButtonVisible toggles the maximize button, emitting
// showMaximizeButtonChanged.
func (w *Window) SetMaximizeButtonVisible(v bool) {
	if w.showMax == v {
		return
	}
	w.showMax = v
	w.emit(EventShowMaximizeButtonChanged, event.Changed(!v, v))
}

// SetMinSize changes the smallest size a resize may produce.
func (w *Window) SetMinSize(width, height int) {
	w.drag.SetSizePolicy(drag.SizePolicy{MinWidth: width, MinHeight: height})
}

// Maximized reports whether the window fills the viewport.
func (w *Window) Maximized() bool { return w.maximized }

// Dragging reports whether a move or resize gesture is in progress.
func (w *Window) Dragging() bool { return w.drag.Dragging() }

// Maximize fills the viewport. It returns false when the maximize button
// is hidden, the window is already maximized, or a listener cancels.
func (w *Window) Maximize() bool {
	if !w.showMax || w.maximized {
		return false
	}
	if w.emitCancellable(EventMaximizing, nil) {
		return false
	}
	w.drag.Cancel()
	w.maximized = true
	w.layer.AddClass(host.ClassMaximized)
	w.syncLayer()
	w.emit(EventMaximized, event.Changed(false, true))
	return true
}

// Restore returns a maximized window to its previous rectangle.
func (w *Window) Restore() bool {
	if !w.showMax || !w.maximized {
		return false
	}
	if w.emitCancellable(EventRestoring, nil) {
		return false
	}
	w.maximized = false
	w.layer.RemoveClass(host.ClassMaximized)
	w.syncLayer()
	w.emit(EventRestored, event.Changed(true, false))
	return true
}

// ToggleMaximize maximizes or restores.
func (w *Window) ToggleMaximize() bool {
	if w.maximized {
		return w.Restore()
	}
	return w.Maximize()
}

func (w *Window) onApply() {
	if w.rect.Empty() {
		vp := w.host.Viewport()
		screen := geom.Rect{Width: vp.Width, Height: vp.Height}
		size := geom.Size{Width: max(vp.Width/2, 1), Height: max(vp.Height/2, 1)}
		w.rect = geom.AlignWithin(screen, size, geom.AlignCenter, geom.AlignMiddle)
	}
	w.syncLayer()
	w.layer.AddClass(host.ClassShown)
	if w.downSub == nil {
		w.downSub = w.host.OnPointerDown(w.onPointerDown)
		w.resizeSub = w.host.OnResize(w.syncLayer)
	}
}

func (w *Window) onRemove() {
	w.drag.Cancel()
	event.Release(w.downSub, w.resizeSub)
	w.downSub, w.resizeSub = nil, nil
	w.layer.RemoveClass(host.ClassShown)
}

// syncLayer copies the effective rectangle onto the layer.
func (w *Window) syncLayer() {
	if w.maximized {
		vp := w.host.Viewport()
		w.layer.SetRect(geom.Rect{Width: vp.Width, Height: vp.Height})
		return
	}
	w.layer.SetRect(w.rect)
}

func (w *Window) onPointerDown(p host.Pointer) {
	if !w.enabled || w.host.LayerAt(p.X, p.Y) != w.layer {
		return
	}
	w.layoutHits(w.layer.Rect())
	reg := w.hits.Test(p.X, p.Y)
	if reg == nil {
		return
	}
	switch reg.ID {
	case regionBody:
	case regionClose:
		w.Hide()
	case regionMaximize:
		w.ToggleMaximize()
	default:
		if mode, ok := reg.Data.(drag.Mode); ok {
			w.beginDrag(p, mode)
		}
	}
}

// layoutHits maps the chrome of r. Buttons beat the title bar, which
// beats the frame edges.
func (w *Window) layoutHits(r geom.Rect) {
	w.hits.Clear()
	w.hits.Add(regionBody, r, nil)
	if w.resizable && !w.maximized {
		w.hits.Add(drag.ResizeTop.String(), geom.Rect{Left: r.Left, Top: r.Top, Width: r.Width, Height: 1}, drag.ResizeTop)
		w.hits.Add(drag.ResizeBottom.String(), geom.Rect{Left: r.Left, Top: r.Bottom() - 1, Width: r.Width, Height: 1}, drag.ResizeBottom)
		w.hits.Add(drag.ResizeLeft.String(), geom.Rect{Left: r.Left, Top: r.Top, Width: 1, Height: r.Height}, drag.ResizeLeft)
		w.hits.Add(drag.ResizeRight.String(), geom.Rect{Left: r.Right() - 1, Top: r.Top, Width: 1, Height: r.Height}, drag.ResizeRight)
		w.hits.Add(drag.ResizeBottomRight.String(), geom.Rect{Left: r.Right() - 1, Top: r.Bottom() - 1, Width: 1, Height: 1}, drag.ResizeBottomRight)
	}

	bar := geom.Rect{Left: r.Left + 1, Top: r.Top + 1, Width: r.Width - 2, Height: 1}
	w.hits.Add(regionTitle, bar, drag.Move)
	x := bar.Right()
	if w.showClose {
		x -= buttonWidth
		w.hits.Add(regionClose, geom.Rect{Left: x, Top: bar.Top, Width: buttonWidth, Height: 1}, nil)
	}
	if w.showMax {
		x -= buttonWidth
		w.hits.Add(regionMaximize, geom.Rect{Left: x, Top: bar.Top, Width: buttonWidth, Height: 1}, nil)
	}
}

func (w *Window) beginDrag(p host.Pointer, mode drag.Mode) {
	if w.maximized || w.readonly {
		return
	}
	if mode.IsResize() && !w.resizable || !mode.IsResize() && !w.movable {
		return
	}
	w.drag.Begin(p.X, p.Y, w.rect, mode)
}

func (w *Window) onDragStart(e event.Event) bool {
	pl := e.Payload.(drag.Payload)
	name := EventMoveStart
	if pl.Mode.IsResize() {
		name = EventResizeStart
	}
	return w.emitCancellable(name, pl.Rect)
}

func (w *Window) onDragging(e event.Event) {
	pl := e.Payload.(drag.Payload)
	w.rect = pl.Rect
	w.syncLayer()
	name := EventMove
	if pl.Mode.IsResize() {
		name = EventResize
	}
	w.emit(name, pl.Rect)
}

func (w *Window) onDragEnd(e event.Event) {
	pl := e.Payload.(drag.Payload)
	name := EventMoveEnd
	if pl.Mode.IsResize() {
		name = EventResizeEnd
	}
	w.emit(name, pl.Rect)
}

func (w *Window) render(out *tui.RenderBuffer, cols int) {
	pal := theme.Current().Palette
	innerW, innerH := cols-2, w.layer.Rect().Height-2
	if innerW <= 0 || innerH <= 0 {
		return
	}

	lines := make([]string, 0, innerH)
	lines = append(lines, w.titleBar(innerW, pal))

	var footer []string
	if w.actions != nil {
		footer = tui.RenderLines(w.actions, innerW)
	}
	body := tui.RenderLines(w.body, innerW)
	for i := range max(innerH-1-len(footer), 0) {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, width.Fit(line, innerW))
	}
	for _, l := range footer {
		if len(lines) >= innerH {
			break
		}
		lines = append(lines, width.Fit(l, innerW))
	}

	framed := pal.WindowStyle().Render(strings.Join(lines, "\n"))
	out.WriteLines(strings.Split(framed, "\n"))
}

func (w *Window) titleBar(innerW int, pal theme.Palette) string {
	var buttons strings.Builder
	bw := 0
	if w.showMax {
		glyph := "□"
		if w.maximized {
			glyph = "❐"
		}
		buttons.WriteString(pal.ButtonStyle(false).Render(" " + glyph + " "))
		bw += buttonWidth
	}
	if w.showClose {
		buttons.WriteString(pal.ButtonStyle(true).Render(" × "))
		bw += buttonWidth
	}
	if bw >= innerW {
		return width.Fit(buttons.String(), innerW)
	}

	titleW := innerW - bw
	label := width.Fit(" "+width.Truncate(w.title, titleW-1, "…"), titleW)
	return pal.TitleStyle().Render(label) + buttons.String()
}
