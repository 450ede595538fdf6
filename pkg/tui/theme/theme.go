// ABOUTME: Overlay color theme types: Palette of lipgloss colors and the derived widget styles
// ABOUTME: Palette fields map to tooltip, busy indicator and window chrome roles

package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the semantic colors of the overlay widgets.
type Palette struct {
	// Text
	Text   lipgloss.Color `yaml:"text"`
	Muted  lipgloss.Color `yaml:"muted"`
	Accent lipgloss.Color `yaml:"accent"`

	// Tooltip
	TooltipFg lipgloss.Color `yaml:"tooltip_fg"`
	TooltipBg lipgloss.Color `yaml:"tooltip_bg"`

	// Busy indicator
	BusyFg    lipgloss.Color `yaml:"busy_fg"`
	BusyShade lipgloss.Color `yaml:"busy_shade"`

	// Window chrome
	Border       lipgloss.Color `yaml:"border"`
	TitleFg      lipgloss.Color `yaml:"title_fg"`
	TitleBg      lipgloss.Color `yaml:"title_bg"`
	Button       lipgloss.Color `yaml:"button"`
	ButtonActive lipgloss.Color `yaml:"button_active"`
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `yaml:"name"`
	Palette Palette `yaml:"palette"`
}

// DefaultPalette uses the 16 basic ANSI colors so it reads on any terminal.
func DefaultPalette() Palette {
	return Palette{
		Text:   lipgloss.Color("7"),
		Muted:  lipgloss.Color("8"),
		Accent: lipgloss.Color("208"),

		TooltipFg: lipgloss.Color("0"),
		TooltipBg: lipgloss.Color("11"),

		BusyFg:    lipgloss.Color("14"),
		BusyShade: lipgloss.Color("236"),

		Border:       lipgloss.Color("8"),
		TitleFg:      lipgloss.Color("15"),
		TitleBg:      lipgloss.Color("4"),
		Button:       lipgloss.Color("7"),
		ButtonActive: lipgloss.Color("9"),
	}
}

// TooltipStyle is the bubble drawn around tooltip text.
func (p Palette) TooltipStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TooltipFg).
		Background(p.TooltipBg).
		Padding(0, 1)
}

// BusyStyle shades the area covered by a busy indicator.
func (p Palette) BusyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.BusyFg).
		Background(p.BusyShade).
		Bold(true)
}

// WindowStyle draws the window frame.
func (p Palette) WindowStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text)
}

// TitleStyle is the window title bar.
func (p Palette) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TitleFg).
		Background(p.TitleBg).
		Bold(true)
}

// ButtonStyle renders a title bar button.
func (p Palette) ButtonStyle(active bool) lipgloss.Style {
	c := p.Button
	if active {
		c = p.ButtonActive
	}
	return lipgloss.NewStyle().Foreground(c).Background(p.TitleBg)
}
