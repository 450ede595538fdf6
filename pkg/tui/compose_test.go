// ABOUTME: Tests for the layer compositor
// ABOUTME: Verifies splicing, z-order, edge clipping, and background preservation

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func plain(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = ansi.Strip(l)
	}
	return out
}

func TestComposite(t *testing.T) {
	t.Parallel()

	bg := []string{"..........", "..........", ".........."}

	tests := []struct {
		name       string
		placements []Placement
		want       []string
	}{
		{
			name:       "no overlays pads frame",
			placements: nil,
			want:       []string{"..........", "..........", ".........."},
		},
		{
			name:       "splice in the middle",
			placements: []Placement{{Lines: []string{"ab", "cd"}, Left: 3, Top: 1}},
			want:       []string{"..........", "...ab.....", "...cd....."},
		},
		{
			name:       "clipped on the left",
			placements: []Placement{{Lines: []string{"abcd"}, Left: -2, Top: 0}},
			want:       []string{"cd........", "..........", ".........."},
		},
		{
			name:       "clipped on the right and bottom",
			placements: []Placement{{Lines: []string{"abcd", "efgh"}, Left: 8, Top: 2}},
			want:       []string{"..........", "..........", "........ab"},
		},
		{
			name: "higher z paints last",
			placements: []Placement{
				{Lines: []string{"TOP"}, Left: 1, Top: 0, Z: 5},
				{Lines: []string{"bottom"}, Left: 0, Top: 0, Z: 1},
			},
			want: []string{"bTOPom....", "..........", ".........."},
		},
		{
			name:       "width pads short lines",
			placements: []Placement{{Lines: []string{"x"}, Left: 0, Top: 0, Width: 3}},
			want:       []string{"x  .......", "..........", ".........."},
		},
		{
			name:       "fully off screen",
			placements: []Placement{{Lines: []string{"zz"}, Left: 20, Top: -5}},
			want:       []string{"..........", "..........", ".........."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := plain(Composite(bg, tt.placements, 10, 3))
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("Composite =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestComposite_ShortBackground(t *testing.T) {
	t.Parallel()

	got := plain(Composite([]string{"hi"}, []Placement{{Lines: []string{"ov"}, Left: 4, Top: 2}}, 8, 3))
	want := []string{"hi      ", "        ", "    ov  "}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Composite = %q, want %q", got, want)
	}
}

func TestContainer_RenderOrder(t *testing.T) {
	t.Parallel()

	line := func(s string) Component {
		return ComponentFunc(func(out *RenderBuffer, _ int) { out.WriteLine(s) })
	}
	c := NewContainer(line("title"), line("body"))
	c.Add(line("footer"))

	got := RenderLines(c, 20)
	if strings.Join(got, ",") != "title,body,footer" {
		t.Errorf("RenderLines = %v", got)
	}

	c.Set(1, line("new body"))
	if got := RenderLines(c, 20); got[1] != "new body" {
		t.Errorf("after Set = %v", got)
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

func TestRenderBuffer_Clip(t *testing.T) {
	t.Parallel()

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	buf.WriteLines([]string{"a", "b", "c"})
	buf.Clip(2)
	if buf.Len() != 2 {
		t.Errorf("Len after Clip(2) = %d", buf.Len())
	}
	buf.Clip(4)
	if buf.Len() != 4 || buf.Lines[3] != "" {
		t.Errorf("Clip(4) = %q", buf.Lines)
	}
}
