// ABOUTME: BusyIndicator covers an anchor element with an animated spinner while work is running
// ABOUTME: Follows the anchor's visible bounds through scroll and resize; frames tick on the host scheduler

package widget

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/tui-overlay/pkg/host"
	"github.com/mauromedda/tui-overlay/pkg/overlay"
	"github.com/mauromedda/tui-overlay/pkg/tui"
	"github.com/mauromedda/tui-overlay/pkg/tui/component"
	"github.com/mauromedda/tui-overlay/pkg/tui/theme"
)

// DefaultFrameInterval is the spinner frame period.
const DefaultFrameInterval = 80 * time.Millisecond

var layerSeq atomic.Uint64

func nextLayerID(kind string) string {
	return fmt.Sprintf("%s-%d", kind, layerSeq.Add(1))
}

// BusyOption configures a BusyIndicator.
type BusyOption func(*BusyIndicator)

// WithFrameInterval sets the spinner frame period; zero disables animation.
func WithFrameInterval(d time.Duration) BusyOption {
	return func(b *BusyIndicator) { b.frameInterval = d }
}

// WithBusyLabel sets the text drawn next to the spinner.
func WithBusyLabel(label string) BusyOption {
	return func(b *BusyIndicator) { b.spinner.SetLabel(label) }
}

// BusyIndicator is an overlay covering its anchor.
type BusyIndicator struct {
	*dialog

	pos           *overlay.Positioner
	spinner       *component.Spinner
	frameInterval time.Duration
	stopTick      func()
}

// NewBusyIndicator creates a hidden busy indicator over anchor.
func NewBusyIndicator(h host.Host, anchor host.Element, opts ...BusyOption) *BusyIndicator {
	b := &BusyIndicator{
		dialog:        newDialog(h, "busy", nextLayerID("busy")),
		spinner:       component.NewSpinner(""),
		frameInterval: DefaultFrameInterval,
	}
	b.em.SetSource(b)
	for _, opt := range opts {
		opt(b)
	}

	b.layer.SetContent(tui.ComponentFunc(b.render))
	b.pos = overlay.New(h, anchor, b.layer, overlay.Cover{}, nil)
	b.apply = b.onApply
	b.remove = b.onRemove
	return b
}

// Anchor returns the covered element.
func (b *BusyIndicator) Anchor() host.Element { return b.pos.Anchor() }

// Spinner exposes the animated content.
func (b *BusyIndicator) Spinner() *component.Spinner { return b.spinner }

// SetLabel changes the text next to the spinner.
func (b *BusyIndicator) SetLabel(label string) { b.spinner.SetLabel(label) }

func (b *BusyIndicator) render(out *tui.RenderBuffer, width int) {
	b.spinner.SetHeight(b.layer.Rect().Height)
	b.spinner.SetStyle(busyStyle())
	b.spinner.Render(out, width)
}

func busyStyle() lipgloss.Style { return theme.Current().Palette.BusyStyle() }

func (b *BusyIndicator) onApply() {
	b.pos.Attach()
	b.startTicking()
}

func (b *BusyIndicator) onRemove() {
	b.pos.Detach()
	b.layer.RemoveClass(host.ClassShown)
	b.stopTicking()
}

func (b *BusyIndicator) startTicking() {
	if b.frameInterval <= 0 || b.stopTick != nil {
		return
	}
	var tick func()
	tick = func() {
		b.spinner.Tick()
		b.stopTick = b.host.After(b.frameInterval, tick)
	}
	b.stopTick = b.host.After(b.frameInterval, tick)
}

func (b *BusyIndicator) stopTicking() {
	if b.stopTick != nil {
		b.stopTick()
		b.stopTick = nil
	}
}
