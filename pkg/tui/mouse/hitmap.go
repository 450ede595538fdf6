// ABOUTME: HitMap maps screen cells to named regions for pointer hit testing
// ABOUTME: Regions added later win where they overlap earlier ones

package mouse

import "github.com/mauromedda/tui-overlay/pkg/geom"

// Region is a named rectangle with optional attached data.
type Region struct {
	ID   string
	Rect geom.Rect
	Data any
}

// HitMap is an ordered list of regions.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers r on top of every existing region.
func (h *HitMap) Add(id string, r geom.Rect, data any) {
	if r.Empty() {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: r, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Clear removes every region.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}
