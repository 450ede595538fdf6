// ABOUTME: Translates validated Settings into widget options, log level and active theme
// ABOUTME: Callers run Validate first; unparsable values here fall back to widget defaults

package config

import (
	"fmt"

	"github.com/mauromedda/tui-overlay/internal/log"
	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/tui/theme"
	"github.com/mauromedda/tui-overlay/pkg/widget"
)

// TooltipOptions returns the options for a new tooltip.
func (s *Settings) TooltipOptions() []widget.TooltipOption {
	h, _ := geom.ParseHAlign(s.Tooltip.Horizontal)
	v, _ := geom.ParseVAlign(s.Tooltip.Vertical)
	return []widget.TooltipOption{
		widget.WithHideDelay(s.Tooltip.HideDelay.Std()),
		widget.WithPosition(h, v),
		widget.WithMaxWidth(s.Tooltip.MaxWidth),
	}
}

// WindowOptions returns the options for a new window.
func (s *Settings) WindowOptions() []widget.WindowOption {
	w := s.Window
	return []widget.WindowOption{
		widget.WithMovable(w.Movable),
		widget.WithResizable(w.Resizable),
		widget.WithCloseButton(w.ShowCloseButton),
		widget.WithMaximizeButton(w.ShowMaximizeButton),
		widget.WithMinSize(w.MinWidth, w.MinHeight),
	}
}

// BusyOptions returns the options for a new busy indicator.
func (s *Settings) BusyOptions() []widget.BusyOption {
	return []widget.BusyOption{widget.WithFrameInterval(s.Busy.FrameInterval.Std())}
}

// ApplyGlobals sets the log level and the active theme. Theme files are
// resolved relative to themeDir.
func (s *Settings) ApplyGlobals(themeDir string) error {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	t, err := theme.Resolve(s.Theme, themeDir)
	if err != nil {
		return fmt.Errorf("theme %q: %w", s.Theme, err)
	}
	theme.Set(t)
	return nil
}

// Reconfigure pushes the property values of s onto existing widgets.
// Construction-only settings such as the busy frame interval apply to new
// widgets.
func (s *Settings) Reconfigure(tips []*widget.Tooltip, wins []*widget.Window) {
	h, _ := geom.ParseHAlign(s.Tooltip.Horizontal)
	v, _ := geom.ParseVAlign(s.Tooltip.Vertical)
	for _, t := range tips {
		t.SetHideDelay(s.Tooltip.HideDelay.Std())
		t.SetHorizontalPosition(h)
		t.SetVerticalPosition(v)
		t.SetMaxWidth(s.Tooltip.MaxWidth)
	}
	for _, w := range wins {
		w.SetMovable(s.Window.Movable)
		w.SetResizable(s.Window.Resizable)
		w.SetCloseButtonVisible(s.Window.ShowCloseButton)
		w.SetMaximizeButtonVisible(s.Window.ShowMaximizeButton)
		w.SetMinSize(s.Window.MinWidth, s.Window.MinHeight)
	}
}
