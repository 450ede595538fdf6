// ABOUTME: Tests for palettes, built-ins, YAML loading and the global theme pointer
// ABOUTME: Loader tests use t.TempDir for isolated files

package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBuiltinNames(t *testing.T) {
	t.Parallel()

	names := BuiltinNames()
	want := []string{"dark", "default", "light", "monochrome"}
	if len(names) != len(want) {
		t.Fatalf("BuiltinNames = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("BuiltinNames[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a := Builtin("dark")
	a.Palette.Text = lipgloss.Color("1")
	if b := Builtin("dark"); b.Palette.Text == lipgloss.Color("1") {
		t.Error("Builtin must return an independent copy")
	}
	if Builtin("nope") != nil {
		t.Error("unknown builtin should be nil")
	}
}

func TestParse_PartialPalette(t *testing.T) {
	t.Parallel()

	th, err := Parse([]byte("palette:\n  tooltip_bg: \"#ff0000\"\n"), "custom")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("Name = %q, want fallback", th.Name)
	}
	if th.Palette.TooltipBg != lipgloss.Color("#ff0000") {
		t.Errorf("TooltipBg = %q", th.Palette.TooltipBg)
	}
	if th.Palette.Border != DefaultPalette().Border {
		t.Errorf("unset Border = %q, want default", th.Palette.Border)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("palette: [unclosed"), "x"); err == nil {
		t.Error("invalid YAML should fail")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "ocean.yaml")
	if err := os.WriteFile(path, []byte("name: ocean\npalette:\n  title_bg: \"#003366\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  bool
	}{
		{"empty is default", "", "default", false},
		{"builtin", "light", "light", false},
		{"relative file", "ocean.yaml", "ocean", false},
		{"absolute file", path, "ocean", false},
		{"missing file", "missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			th, err := Resolve(tt.input, dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) err = %v", tt.input, err)
			}
			if err == nil && th.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", th.Name, tt.wantName)
			}
		})
	}
}

func TestGlobal(t *testing.T) {
	saved := Current()
	defer Set(saved)

	Set(Builtin("monochrome"))
	if Current().Name != "monochrome" {
		t.Errorf("Current = %q", Current().Name)
	}
	Set(nil)
	if Current() == nil || Current().Name != "monochrome" {
		t.Error("Set(nil) must keep the current theme")
	}
}

func TestStyles_Render(t *testing.T) {
	t.Parallel()

	p := DefaultPalette()
	if got := lipgloss.Width(p.TooltipStyle().Render("hi")); got != 4 {
		t.Errorf("tooltip width = %d, want 4 (text plus padding)", got)
	}
	if got := lipgloss.Height(p.WindowStyle().Render("x")); got != 3 {
		t.Errorf("window frame height = %d, want 3 (body between borders)", got)
	}
}
