// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Text:         lipgloss.Color("#d0d0d0"),
			Muted:        lipgloss.Color("#6c6c6c"),
			Accent:       lipgloss.Color("#ffaf00"),
			TooltipFg:    lipgloss.Color("#1c1c1c"),
			TooltipBg:    lipgloss.Color("#ffd75f"),
			BusyFg:       lipgloss.Color("#87d7ff"),
			BusyShade:    lipgloss.Color("#262626"),
			Border:       lipgloss.Color("#585858"),
			TitleFg:      lipgloss.Color("#ffffff"),
			TitleBg:      lipgloss.Color("#005f87"),
			Button:       lipgloss.Color("#d0d0d0"),
			ButtonActive: lipgloss.Color("#ff5f5f"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Text:         lipgloss.Color("#1c1c1c"),
			Muted:        lipgloss.Color("#8a8a8a"),
			Accent:       lipgloss.Color("#d75f00"),
			TooltipFg:    lipgloss.Color("#ffffff"),
			TooltipBg:    lipgloss.Color("#303030"),
			BusyFg:       lipgloss.Color("#005faf"),
			BusyShade:    lipgloss.Color("#e4e4e4"),
			Border:       lipgloss.Color("#b2b2b2"),
			TitleFg:      lipgloss.Color("#1c1c1c"),
			TitleBg:      lipgloss.Color("#afd7ff"),
			Button:       lipgloss.Color("#303030"),
			ButtonActive: lipgloss.Color("#d70000"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Text:         lipgloss.Color("7"),
			Muted:        lipgloss.Color("8"),
			Accent:       lipgloss.Color("15"),
			TooltipFg:    lipgloss.Color("0"),
			TooltipBg:    lipgloss.Color("7"),
			BusyFg:       lipgloss.Color("15"),
			BusyShade:    lipgloss.Color("0"),
			Border:       lipgloss.Color("7"),
			TitleFg:      lipgloss.Color("0"),
			TitleBg:      lipgloss.Color("7"),
			Button:       lipgloss.Color("0"),
			ButtonActive: lipgloss.Color("0"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil.
func Builtin(name string) *Theme {
	t, ok := builtins[name]
	if !ok {
		return nil
	}
	cp := *t
	return &cp
}

// BuiltinNames returns the names of all built-in themes, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
