// ABOUTME: Pre-sets the lipgloss dark background before Bubble Tea's init sends OSC queries
// ABOUTME: Import with _ ahead of any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background lipgloss skips the OSC 10/11 query whose
	// late reply would otherwise show up as pointer or key input.
	// This package must not import bubbletea, directly or transitively.
	lipgloss.SetHasDarkBackground(true)
}
