// ABOUTME: Tests for YAML settings loading, layering, validation and widget option mapping
// ABOUTME: Uses t.TempDir files; global then project layering mirrors Load

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/host"
	"github.com/mauromedda/tui-overlay/pkg/widget"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFiles_Defaults(t *testing.T) {
	t.Parallel()

	s, err := LoadFiles(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if *s != Defaults() {
		t.Errorf("settings = %+v, want defaults", *s)
	}
	if s.Tooltip.HideDelay.Std() != 700*time.Millisecond {
		t.Errorf("HideDelay = %v", s.Tooltip.HideDelay.Std())
	}
}

func TestLoadFiles_ProjectOverridesGlobal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	global := writeFile(t, dir, "global.yaml", `
log_level: debug
theme: dark
tooltip:
  hide_delay: 1s
  vertical: bottom
window:
  min_width: 20
`)
	project := writeFile(t, dir, "project.yaml", `
tooltip:
  hide_delay: 250
window:
  movable: false
`)

	s, err := LoadFiles(global, project)
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"log level from global", s.LogLevel, "debug"},
		{"theme from global", s.Theme, "dark"},
		{"hide delay from project (ms)", s.Tooltip.HideDelay.Std(), 250 * time.Millisecond},
		{"vertical from global", s.Tooltip.Vertical, "bottom"},
		{"horizontal default kept", s.Tooltip.Horizontal, "center"},
		{"min width from global", s.Window.MinWidth, 20},
		{"movable from project", s.Window.Movable, false},
		{"resizable default kept", s.Window.Resizable, true},
		{"frame interval default", s.Busy.FrameInterval.Std(), 80 * time.Millisecond},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadFiles_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr []string
	}{
		{"bad yaml", "tooltip: [", []string{"parsing"}},
		{"bad duration", "tooltip:\n  hide_delay: soon\n", []string{"parsing"}},
		{
			name:    "every invalid value reported",
			content: "log_level: loud\ntooltip:\n  horizontal: diagonal\n  vertical: sideways\nwindow:\n  min_width: -1\n",
			wantErr: []string{"loud", "tooltip.horizontal", "tooltip.vertical", "minimum size"},
		},
		{"negative frame interval", "busy:\n  frame_interval: -5ms\n", []string{"busy.frame_interval"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), "config.yaml", tt.content)
			_, err := LoadFiles(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
		})
	}
}

func TestLoad_ProjectRoot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	if err := EnsureDir(ProjectDir(root)); err != nil {
		t.Fatal(err)
	}
	writeFile(t, ProjectDir(root), "config.yaml", "theme: light\n")

	s, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != "light" {
		t.Errorf("Theme = %q, want light", s.Theme)
	}
}

func TestSettings_WidgetOptions(t *testing.T) {
	t.Parallel()

	s := Defaults()
	s.Tooltip.Horizontal = "left"
	s.Tooltip.Vertical = "bottom"
	s.Tooltip.HideDelay = Duration(time.Second)
	s.Window.Resizable = false
	s.Window.ShowMaximizeButton = false

	v := host.NewVirtual(80, 24)
	anchor := host.NewNode(v, "body", geom.Rect{Width: 80, Height: 24}).Child("a", geom.Rect{Left: 1, Top: 1, Width: 4, Height: 1})

	tip := widget.NewTooltip(v, anchor, "x", s.TooltipOptions()...)
	if tip.HorizontalPosition() != geom.AlignLeft || tip.VerticalPosition() != geom.AlignBottom || tip.HideDelay() != time.Second {
		t.Errorf("tooltip = %v/%v/%v", tip.HorizontalPosition(), tip.VerticalPosition(), tip.HideDelay())
	}

	win := widget.NewWindow(v, s.WindowOptions()...)
	if win.Resizable() || win.MaximizeButtonVisible() || !win.Movable() || !win.CloseButtonVisible() {
		t.Error("window options not applied")
	}

	s.Tooltip.Vertical = "middle"
	s.Tooltip.MaxWidth = 12
	s.Window.Movable = false
	s.Reconfigure([]*widget.Tooltip{tip}, []*widget.Window{win})
	if tip.VerticalPosition() != geom.AlignMiddle || win.Movable() {
		t.Error("Reconfigure did not update existing widgets")
	}
	if tip.MaxWidth() != 12 {
		t.Errorf("MaxWidth = %d after Reconfigure, want 12", tip.MaxWidth())
	}
}

func TestDuration_MarshalYAML(t *testing.T) {
	t.Parallel()

	got, err := Duration(1500 * time.Millisecond).MarshalYAML()
	if err != nil || got != "1.5s" {
		t.Errorf("MarshalYAML = %v, %v", got, err)
	}
}
