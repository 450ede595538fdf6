// ABOUTME: Tooltip shows a text bubble beside an anchor element and lingers after hide requests
// ABOUTME: Text, hide delay and alignment are properties with changed events; changes reposition while shown

package widget

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/tui-overlay/pkg/event"
	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/host"
	"github.com/mauromedda/tui-overlay/pkg/lifecycle"
	"github.com/mauromedda/tui-overlay/pkg/overlay"
	"github.com/mauromedda/tui-overlay/pkg/tui/component"
	"github.com/mauromedda/tui-overlay/pkg/tui/theme"
)

// Tooltip defaults.
const (
	DefaultHideDelay       = 700 * time.Millisecond
	DefaultTooltipMaxWidth = 40
)

// Tooltip events.
const (
	EventHideDelayChanged          event.Name = "hideDelayChanged"
	EventHorizontalPositionChanged event.Name = "horizontalPositionChanged"
	EventVerticalPositionChanged   event.Name = "verticalPositionChanged"
	EventTextChanged               event.Name = "textChanged"
)

// TooltipOption configures a Tooltip.
type TooltipOption func(*tooltipConfig)

type tooltipConfig struct {
	hideDelay time.Duration
	h         geom.HAlign
	v         geom.VAlign
	maxWidth  int
}

// WithHideDelay sets how long the tooltip lingers after Hide.
func WithHideDelay(d time.Duration) TooltipOption {
	return func(c *tooltipConfig) { c.hideDelay = d }
}

// WithPosition sets the alignment relative to the anchor.
func WithPosition(h geom.HAlign, v geom.VAlign) TooltipOption {
	return func(c *tooltipConfig) { c.h, c.v = h, v }
}

// WithMaxWidth caps the bubble width; longer text wraps.
func WithMaxWidth(n int) TooltipOption {
	return func(c *tooltipConfig) { c.maxWidth = n }
}

// Tooltip is a text overlay placed beside its anchor.
type Tooltip struct {
	*dialog

	pos      *overlay.Positioner
	text     *component.Text
	h        geom.HAlign
	v        geom.VAlign
	maxWidth int
}

// NewTooltip creates a hidden tooltip for anchor.
func NewTooltip(h host.Host, anchor host.Element, text string, opts ...TooltipOption) *Tooltip {
	cfg := tooltipConfig{
		hideDelay: DefaultHideDelay,
		h:         geom.AlignCenter,
		v:         geom.AlignTop,
		maxWidth:  DefaultTooltipMaxWidth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tooltip{
		dialog:   newDialog(h, "tooltip", nextLayerID("tooltip"), lifecycle.WithHideDelay(cfg.hideDelay)),
		text:     component.NewText(text),
		h:        cfg.h,
		v:        cfg.v,
		maxWidth: cfg.maxWidth,
	}
	t.em.SetSource(t)

	bubble := component.NewStyled(t.text, tooltipStyle)
	t.layer.SetContent(bubble)
	t.pos = overlay.New(h, anchor, t.layer, overlay.Edge{H: t.h, V: t.v}, func(a geom.Rect) geom.Size {
		return overlay.MeasureContent(bubble, t.maxWidth)(a)
	})
	t.apply = func() { t.pos.Attach() }
	t.remove = func() {
		t.pos.Detach()
		t.layer.RemoveClass(host.ClassShown)
	}
	return t
}

func tooltipStyle() lipgloss.Style { return theme.Current().Palette.TooltipStyle() }

// Anchor returns the element the tooltip points at.
func (t *Tooltip) Anchor() host.Element { return t.pos.Anchor() }

// Text returns the tooltip text.
func (t *Tooltip) Text() string { return t.text.Content() }

// SetText replaces the text, emitting textChanged.
func (t *Tooltip) SetText(s string) {
	prev := t.text.Content()
	if prev == s {
		return
	}
	t.text.SetContent(s)
	t.reposition()
	t.emit(EventTextChanged, event.Changed(prev, s))
}

// HideDelay returns how long the tooltip lingers after Hide.
func (t *Tooltip) HideDelay() time.Duration { return t.life.HideDelay() }

// SetHideDelay changes the linger time, emitting hideDelayChanged.
func (t *Tooltip) SetHideDelay(d time.Duration) {
	prev := t.life.HideDelay()
	if prev == d {
		return
	}
	t.life.SetHideDelay(d)
	t.emit(EventHideDelayChanged, event.Changed(prev, d))
}

// MaxWidth returns the widest the bubble may render before wrapping.
func (t *Tooltip) MaxWidth() int { return t.maxWidth }

// SetMaxWidth changes the wrap width and repositions while shown.
func (t *Tooltip) SetMaxWidth(n int) {
	if t.maxWidth == n {
		return
	}
	t.maxWidth = n
	t.reposition()
}

// HorizontalPosition returns the horizontal alignment.
func (t *Tooltip) HorizontalPosition() geom.HAlign { return t.h }

// SetHorizontalPosition changes the horizontal alignment, emitting
// horizontalPositionChanged.
func (t *Tooltip) SetHorizontalPosition(h geom.HAlign) {
	if t.h == h {
		return
	}
	prev := t.h
	t.h = h
	t.pos.SetStrategy(overlay.Edge{H: t.h, V: t.v})
	t.emit(EventHorizontalPositionChanged, event.Changed(prev, h))
}

// VerticalPosition returns the vertical alignment.
func (t *Tooltip) VerticalPosition() geom.VAlign { return t.v }

// SetVerticalPosition changes the vertical alignment, emitting
// verticalPositionChanged.
func (t *Tooltip) SetVerticalPosition(v geom.VAlign) {
	if t.v == v {
		return
	}
	prev := t.v
	t.v = v
	t.pos.SetStrategy(overlay.Edge{H: t.h, V: t.v})
	t.emit(EventVerticalPositionChanged, event.Changed(prev, v))
}

func (t *Tooltip) reposition() {
	if t.pos.Attached() {
		t.pos.Reposition()
	}
}
