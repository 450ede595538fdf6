// ABOUTME: Demo scene wiring: link tooltips, a busy indicator over the build panel and a help window
// ABOUTME: Clicking a link shows its tooltip; keys toggle the other widgets; reload pushes new settings

package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/tui-overlay/internal/config"
	"github.com/mauromedda/tui-overlay/internal/log"
	"github.com/mauromedda/tui-overlay/pkg/event"
	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/host"
	"github.com/mauromedda/tui-overlay/pkg/teahost"
	"github.com/mauromedda/tui-overlay/pkg/tui"
	"github.com/mauromedda/tui-overlay/pkg/tui/component"
	"github.com/mauromedda/tui-overlay/pkg/tui/mouse"
	"github.com/mauromedda/tui-overlay/pkg/widget"
)

const helpMarkdown = `# Overlay demo

- **Click** a link to show its tooltip.
- **Drag** this title bar to move the window.
- **Drag** an edge or the bottom-right corner to resize.
- Press **m** or the □ button to maximize.

Settings live in ` + "`.tui-overlay/config.yaml`" + ` and reload when saved.
`

const actionsLine = "b busy · w window · m maximize · q quit "

type link struct {
	name string
	node *host.Node
	tip  *widget.Tooltip
}

type scene struct {
	host    *teahost.Host
	links   []link
	busy    *widget.BusyIndicator
	help    *widget.Window
	hits    *mouse.HitMap
	downSub *event.Subscription
	logger  *log.Logger
}

func newScene(th *teahost.Host, doc *document, s *config.Settings) *scene {
	sc := &scene{host: th, hits: mouse.NewHitMap(), logger: log.With("demo")}

	body := host.NewNode(th, "body", geom.Rect{Width: pageWidth, Height: len(doc.lines)})
	for _, l := range doc.links {
		n := body.Child(l.name, l.rect)
		sc.links = append(sc.links, link{
			name: l.name,
			node: n,
			tip:  widget.NewTooltip(th, n, l.tip, s.TooltipOptions()...),
		})
	}

	panel := body.Child("build", doc.panel)
	sc.busy = widget.NewBusyIndicator(th, panel, append(s.BusyOptions(), widget.WithBusyLabel("building…"))...)

	mdStyle := "dark"
	if s.Theme == "light" {
		mdStyle = "light"
	}
	sc.help = widget.NewWindow(th, append(s.WindowOptions(),
		widget.WithTitle("Help"),
		widget.WithContent(tui.NewContainer(
			component.NewMarkdown(helpMarkdown, mdStyle),
			component.NewLine("theme: "+s.Theme, geom.AlignLeft),
		)),
		widget.WithActions(component.NewLine(actionsLine, geom.AlignRight)),
	)...)

	sc.downSub = th.OnPointerDown(sc.onPointerDown)
	return sc
}

// onPointerDown shows the tooltip of the clicked link and hides the rest.
// Clicks on overlays belong to the overlays.
func (sc *scene) onPointerDown(p host.Pointer) {
	if sc.host.LayerAt(p.X, p.Y) != nil {
		return
	}
	sc.hits.Clear()
	for i, l := range sc.links {
		if l.node.Visible() {
			sc.hits.Add(l.name, l.node.Bounds(), i)
		}
	}
	hit := -1
	if reg := sc.hits.Test(p.X, p.Y); reg != nil {
		hit = reg.Data.(int)
	}
	for i, l := range sc.links {
		switch {
		case i == hit:
			l.tip.Show()
		case l.tip.IsShown():
			l.tip.Hide()
		}
	}
}

func (sc *scene) keys(_ *teahost.Host, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "b":
		toggle(sc.busy)
	case "w":
		toggle(sc.help)
	case "m":
		sc.help.ToggleMaximize()
	case "esc":
		for _, l := range sc.links {
			l.tip.Hide()
		}
	default:
		return nil, false
	}
	return nil, true
}

func toggle(w widget.Showable) {
	if w.IsShown() {
		w.Hide()
		return
	}
	w.Show()
}

// reload applies settings read after a config file changed.
func (sc *scene) reload(s *config.Settings) {
	if err := s.ApplyGlobals(config.GlobalDir()); err != nil {
		sc.logger.Warn("apply settings: %v", err)
	}
	tips := make([]*widget.Tooltip, len(sc.links))
	for i, l := range sc.links {
		tips[i] = l.tip
	}
	s.Reconfigure(tips, []*widget.Window{sc.help})
}

func (sc *scene) dispose() {
	event.Release(sc.downSub)
	sc.downSub = nil
	disposers := []interface{ Dispose() error }{sc.busy, sc.help}
	for _, l := range sc.links {
		disposers = append(disposers, l.tip)
	}
	for _, d := range disposers {
		if err := d.Dispose(); err != nil {
			sc.logger.Warn("dispose: %v", err)
		}
	}
}
