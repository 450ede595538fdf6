// ABOUTME: Tests for Tooltip placement, delayed hide and property events
// ABOUTME: Includes a show request arriving while a delayed hide is pending

package widget

import (
	"slices"
	"testing"
	"time"

	"github.com/mauromedda/tui-overlay/pkg/event"
	"github.com/mauromedda/tui-overlay/pkg/geom"
)

func TestTooltip_ShowPlacesAboveAnchor(t *testing.T) {
	t.Parallel()

	v, anchor := page(t)
	tip := NewTooltip(v, anchor, "hi")
	events := record(tip, lifecycleEvents...)

	if !tip.Show() {
		t.Fatal("Show failed")
	}
	if !slices.Equal(*events, []event.Name{EventShowing, EventShown}) {
		t.Errorf("events = %v", *events)
	}

	r := tip.Layer().Rect()
	if r.Top != 9 || r.Height != 1 {
		t.Errorf("rect = %v, want one row directly above the anchor", r)
	}
	if want := 15 - r.Width/2; r.Left != want {
		t.Errorf("Left = %d, want %d (centered)", r.Left, want)
	}
	if tip.Layer().Z() != 1 || !tip.Layer().Shown() {
		t.Errorf("Z=%d shown=%v", tip.Layer().Z(), tip.Layer().Shown())
	}
	if v.ListenerCount() != 2 {
		t.Errorf("ListenerCount = %d, want scroll+resize", v.ListenerCount())
	}
}

func TestTooltip_DelayedHide(t *testing.T) {
	t.Parallel()

	v, anchor := page(t)
	tip := NewTooltip(v, anchor, "hi")
	tip.Show()
	events := record(tip, lifecycleEvents...)

	if !tip.Hide() {
		t.Fatal("Hide failed")
	}
	if !tip.IsShown() || !tip.Layer().Shown() {
		t.Error("tooltip must stay visible during the hide delay")
	}

	v.Advance(699 * time.Millisecond)
	if !tip.IsShown() {
		t.Error("hidden before the delay elapsed")
	}
	v.Advance(time.Millisecond)

	if tip.IsShown() || tip.Layer().Shown() {
		t.Error("tooltip still shown after the delay")
	}
	if !slices.Equal(*events, []event.Name{EventHiding, EventHidden}) {
		t.Errorf("events = %v", *events)
	}
	if v.ListenerCount() != 0 {
		t.Errorf("ListenerCount = %d, want 0", v.ListenerCount())
	}
}

func TestTooltip_ShowDuringPendingHide(t *testing.T) {
	t.Parallel()

	v, anchor := page(t)
	tip := NewTooltip(v, anchor, "hi")
	events := record(tip, lifecycleEvents...)

	tip.Show()
	tip.Hide()
	v.Advance(300 * time.Millisecond)
	if !tip.Show() {
		t.Fatal("Show during a pending hide should succeed")
	}
	v.Advance(2 * time.Second)

	if !tip.IsShown() || !tip.Layer().Shown() {
		t.Error("tooltip should remain shown")
	}
	if slices.Contains(*events, EventHidden) {
		t.Errorf("hidden emitted: %v", *events)
	}
	if want := []event.Name{EventShowing, EventShown, EventHiding}; !slices.Equal(*events, want) {
		t.Errorf("events = %v, want %v", *events, want)
	}
	if v.PendingTimers() != 0 {
		t.Errorf("PendingTimers = %d, want 0", v.PendingTimers())
	}
}

func TestTooltip_ZeroDelayHidesImmediately(t *testing.T) {
	t.Parallel()

	v, anchor := page(t)
	tip := NewTooltip(v, anchor, "hi", WithHideDelay(0))
	tip.Show()
	tip.Hide()
	if tip.IsShown() {
		t.Error("zero delay should hide synchronously")
	}
}

func TestTooltip_FollowsScroll(t *testing.T) {
	t.Parallel()

	v, anchor := page(t)
	tip := NewTooltip(v, anchor, "hi", WithPosition(geom.AlignLeft, geom.AlignBottom))
	tip.Show()

	if r := tip.Layer().Rect(); r.Left != 10 || r.Top != 11 {
		t.Fatalf("rect = %v, want below the anchor at (10,11)", r)
	}

	v.ScrollTo(0, 5)
	if r := tip.Layer().Rect(); r.Top != 11 {
		t.Errorf("document Top = %d, want 11 after scroll", r.Top)
	}
	if sr := tip.Layer().ScreenRect(v.Viewport()); sr.Top != 6 {
		t.Errorf("screen Top = %d, want 6", sr.Top)
	}

	v.ScrollTo(0, 20)
	if tip.Layer().Shown() {
		t.Error("tooltip should vanish when its anchor scrolls out of view")
	}
	v.ScrollTo(0, 0)
	if !tip.Layer().Shown() {
		t.Error("tooltip should return when its anchor scrolls back")
	}
}

func TestTooltip_PropertyEvents(t *testing.T) {
	t.Parallel()

	v, anchor := page(t)
	tip := NewTooltip(v, anchor, "hi")
	tip.Show()

	var text event.ValueChanged[string]
	tip.On(EventTextChanged, event.Notify(func(e event.Event) {
		text = e.Payload.(event.ValueChanged[string])
	}))
	var delay event.ValueChanged[time.Duration]
	tip.On(EventHideDelayChanged, event.Notify(func(e event.Event) {
		delay = e.Payload.(event.ValueChanged[time.Duration])
	}))
	var vpos event.ValueChanged[geom.VAlign]
	tip.On(EventVerticalPositionChanged, event.Notify(func(e event.Event) {
		vpos = e.Payload.(event.ValueChanged[geom.VAlign])
	}))
	hpos := record(tip, EventHorizontalPositionChanged)

	tip.SetText("a much longer tip")
	tip.SetHideDelay(time.Second)
	tip.SetVerticalPosition(geom.AlignBottom)
	tip.SetHorizontalPosition(geom.AlignCenter)

	if text != (event.ValueChanged[string]{Previous: "hi", Value: "a much longer tip"}) {
		t.Errorf("textChanged = %+v", text)
	}
	if delay != (event.ValueChanged[time.Duration]{Previous: DefaultHideDelay, Value: time.Second}) {
		t.Errorf("hideDelayChanged = %+v", delay)
	}
	if vpos != (event.ValueChanged[geom.VAlign]{Previous: geom.AlignTop, Value: geom.AlignBottom}) {
		t.Errorf("verticalPositionChanged = %+v", vpos)
	}
	if len(*hpos) != 0 {
		t.Error("setting the same horizontal position must not emit")
	}
	if tip.Text() != "a much longer tip" || tip.HideDelay() != time.Second {
		t.Errorf("Text=%q HideDelay=%v", tip.Text(), tip.HideDelay())
	}
	if r := tip.Layer().Rect(); r.Top != 11 {
		t.Errorf("Top = %d, want 11 after moving below", r.Top)
	}
}

func TestTooltip_SetMaxWidthRewraps(t *testing.T) {
	t.Parallel()

	v, anchor := page(t)
	tip := NewTooltip(v, anchor, "alpha beta gamma delta")
	tip.Show()
	if r := tip.Layer().Rect(); r.Height != 1 {
		t.Fatalf("rect = %v, want a single row at the default width", r)
	}

	tip.SetMaxWidth(12)
	r := tip.Layer().Rect()
	if r.Height != 3 || r.Width > 12 {
		t.Errorf("rect = %v, want three rows at most 12 wide", r)
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom = %d, want the bubble to stay above the anchor", r.Bottom())
	}
	if tip.MaxWidth() != 12 {
		t.Errorf("MaxWidth = %d, want 12", tip.MaxWidth())
	}
}
