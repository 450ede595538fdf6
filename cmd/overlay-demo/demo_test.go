// ABOUTME: Tests for the demo page layout, scene interaction and settings overrides
// ABOUTME: Drives the scene through the Bubble Tea host with synthetic messages

package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/tui-overlay/internal/config"
	"github.com/mauromedda/tui-overlay/pkg/teahost"
	"github.com/mauromedda/tui-overlay/pkg/tui/width"
)

func TestDocument_AnchorsMatchText(t *testing.T) {
	t.Parallel()

	doc := newDocument()
	if len(doc.lines) != pageHeight {
		t.Errorf("lines = %d, want %d", len(doc.lines), pageHeight)
	}
	for _, l := range doc.links {
		line := doc.lines[l.rect.Top]
		label := "[" + l.name + "]"
		at := strings.Index(line, label)
		if at < 0 || width.VisibleWidth(line[:at]) != l.rect.Left || l.rect.Width != len(label) {
			t.Errorf("link %s rect %v does not match %q", l.name, l.rect, line)
		}
	}
	for y := doc.panel.Top; y < doc.panel.Bottom(); y++ {
		if got := width.VisibleWidth(doc.lines[y]); got != doc.panel.Right() {
			t.Errorf("panel row %d is %d cells, want %d", y, got, doc.panel.Right())
		}
	}
}

func newTestScene(t *testing.T) (*teahost.Host, *scene, teahost.Model) {
	t.Helper()
	doc := newDocument()
	th := teahost.New(doc)
	s := config.Defaults()
	sc := newScene(th, doc, &s)
	m := teahost.NewModel(th, sc.keys)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return th, sc, m
}

func click(m teahost.Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease})
}

func TestScene_ClickShowsTooltip(t *testing.T) {
	t.Parallel()

	_, sc, m := newTestScene(t)
	docs, source := sc.links[0], sc.links[1]

	r := docs.node.Bounds()
	click(m, r.Left, r.Top)
	if !docs.tip.IsShown() || source.tip.IsShown() {
		t.Fatalf("after clicking docs: docs=%v source=%v", docs.tip.IsShown(), source.tip.IsShown())
	}

	r = source.node.Bounds()
	click(m, r.Left+1, r.Top)
	if !source.tip.IsShown() {
		t.Error("source tooltip should show")
	}
	if docs.tip.State().String() != "shown" {
		t.Errorf("docs tooltip state = %v, want shown while its hide delay runs", docs.tip.State())
	}
}

func TestScene_Keys(t *testing.T) {
	t.Parallel()

	_, sc, m := newTestScene(t)
	press := func(s string) { m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}) }

	press("b")
	if !sc.busy.IsShown() {
		t.Error("b should show the busy indicator")
	}
	press("w")
	press("m")
	if !sc.help.IsShown() || !sc.help.Maximized() {
		t.Error("w then m should show and maximize the help window")
	}
	if !strings.Contains(m.View(), "Help") {
		t.Error("help window title not rendered")
	}
	press("b")
	if sc.busy.IsShown() {
		t.Error("second b should hide the busy indicator")
	}
}

func TestScene_DisposeReleasesListeners(t *testing.T) {
	t.Parallel()

	th, sc, m := newTestScene(t)
	click(m, sc.links[0].node.Bounds().Left, sc.links[0].node.Bounds().Top)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})

	sc.dispose()
	if n := th.ListenerCount(); n != 0 {
		t.Errorf("ListenerCount = %d after dispose, want 0: %v", n, th.Listeners())
	}
	if n := len(th.Layers()); n != 0 {
		t.Errorf("layers = %d after dispose", n)
	}
}

func TestScene_Reload(t *testing.T) {
	t.Parallel()

	_, sc, _ := newTestScene(t)
	s := config.Defaults()
	s.Window.Movable = false
	s.Tooltip.Vertical = "bottom"
	sc.reload(&s)

	if sc.help.Movable() {
		t.Error("reload should update the window")
	}
	if sc.links[0].tip.VerticalPosition().String() != "bottom" {
		t.Error("reload should update tooltips")
	}
}

func TestLoadSettings_FlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := loadSettings(options{projectRoot: t.TempDir(), theme: "light", logLevel: "debug"})
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.Theme != "light" || s.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", s)
	}

	if _, err := loadSettings(options{projectRoot: t.TempDir(), logLevel: "chatty"}); err == nil {
		t.Error("an invalid log level flag should fail")
	}
}

func TestRun_RequiresTerminal(t *testing.T) {
	t.Parallel()

	if err := run(context.Background(), options{}); !errors.Is(err, ErrNoTTY) {
		t.Errorf("run = %v, want ErrNoTTY under go test", err)
	}
}
