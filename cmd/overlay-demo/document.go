// ABOUTME: Static demo page rendered behind the overlays, with the anchor rectangles it contains
// ABOUTME: Anchor positions are recorded while the lines are built so they always match the text

package main

import (
	"fmt"
	"strings"

	"github.com/mauromedda/tui-overlay/pkg/geom"
	"github.com/mauromedda/tui-overlay/pkg/tui"
	"github.com/mauromedda/tui-overlay/pkg/tui/width"
)

const (
	pageWidth  = 72
	pageHeight = 80
	panelInner = 34
)

type linkSpec struct {
	name string
	tip  string
	rect geom.Rect
}

type document struct {
	lines []string
	links []linkSpec
	panel geom.Rect
}

func newDocument() *document {
	d := &document{}
	d.add("  Overlay widgets demo")
	d.add("  " + strings.Repeat("=", 20))
	d.add("")
	d.addLinks(2, []linkSpec{
		{name: "docs", tip: "Read the widget reference"},
		{name: "source", tip: "Browse the code behind this page"},
		{name: "issues", tip: "Report a problem. Long tooltips wrap at the configured maximum width."},
	})
	d.add("")

	top := len(d.lines)
	d.add("  ┌─ build " + strings.Repeat("─", panelInner-8) + "┐")
	for i := range 3 {
		step := fmt.Sprintf("step %d: compile package %d", i+1, i+1)
		d.add("  │ " + width.Fit(step, panelInner-2) + " │")
	}
	d.add("  └" + strings.Repeat("─", panelInner) + "┘")
	d.panel = geom.Rect{Left: 2, Top: top, Width: panelInner + 2, Height: len(d.lines) - top}

	d.add("")
	d.add("  Press b to toggle the busy indicator over the build panel,")
	d.add("  w to open the help window and m to maximize it. Scroll with the")
	d.add("  wheel or arrow keys; overlays follow their anchors.")
	for len(d.lines) < pageHeight-2 {
		d.add(fmt.Sprintf("  %02d. filler line to make the page scroll", len(d.lines)))
	}
	d.add("")
	d.addLinks(len(d.lines), []linkSpec{{name: "end", tip: "You reached the bottom of the page"}})
	return d
}

func (d *document) add(line string) { d.lines = append(d.lines, line) }

// addLinks writes one row of bracketed links at row y and records their
// rectangles.
func (d *document) addLinks(y int, links []linkSpec) {
	var b strings.Builder
	b.WriteString("  Links:")
	for _, l := range links {
		b.WriteString("  ")
		label := "[" + l.name + "]"
		l.rect = geom.Rect{Left: width.VisibleWidth(b.String()), Top: y, Width: width.VisibleWidth(label), Height: 1}
		b.WriteString(label)
		d.links = append(d.links, l)
	}
	d.add(b.String())
}

// Render draws the page at the given width.
func (d *document) Render(out *tui.RenderBuffer, w int) {
	for _, line := range d.lines {
		out.WriteLine(width.Fit(line, w))
	}
}

// Invalidate is a no-op; the page is static.
func (d *document) Invalidate() {}
