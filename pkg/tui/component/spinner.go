// ABOUTME: Spinner animation component used as the busy indicator image
// ABOUTME: Fills its area with a shaded style and centers the current frame and label

package component

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/tui-overlay/pkg/tui"
	"github.com/mauromedda/tui-overlay/pkg/tui/width"
)

var defaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner displays an animated frame with an optional label, centered in
// an area Height lines tall.
type Spinner struct {
	mu     sync.Mutex
	frames []string
	frame  int
	label  string
	height int
	style  lipgloss.Style
}

// NewSpinner creates a one-line spinner with the given label.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		frames: defaultFrames,
		label:  label,
		height: 1,
		style:  lipgloss.NewStyle(),
	}
}

// SetLabel updates the spinner label.
func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	s.label = label
	s.mu.Unlock()
}

// SetHeight sets how many lines Render fills.
func (s *Spinner) SetHeight(h int) {
	s.mu.Lock()
	s.height = max(h, 1)
	s.mu.Unlock()
}

// SetStyle sets the style applied to every rendered line.
func (s *Spinner) SetStyle(st lipgloss.Style) {
	s.mu.Lock()
	s.style = st
	s.mu.Unlock()
}

// Frame returns the index of the current frame.
func (s *Spinner) Frame() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Tick advances the spinner to the next frame.
func (s *Spinner) Tick() {
	s.mu.Lock()
	s.frame = (s.frame + 1) % len(s.frames)
	s.mu.Unlock()
}

// Render draws the current frame and label on the middle line.
func (s *Spinner) Render(out *tui.RenderBuffer, w int) {
	s.mu.Lock()
	text := s.frames[s.frame]
	if s.label != "" {
		text += " " + s.label
	}
	height, style := s.height, s.style
	s.mu.Unlock()

	if w <= 0 {
		return
	}
	text = width.Truncate(text, w, "…")
	pad := (w - width.VisibleWidth(text)) / 2
	blank := strings.Repeat(" ", w)
	mid := height / 2
	for row := range height {
		line := blank
		if row == mid {
			line = width.Fit(strings.Repeat(" ", pad)+text, w)
		}
		out.WriteLine(style.Render(line))
	}
}

// Invalidate is a no-op for Spinner.
func (s *Spinner) Invalidate() {}
