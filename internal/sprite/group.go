package sprite

import (
	"fmt"

	"github.com/vovakirdan/tui-forage/internal/anim"
	"github.com/vovakirdan/tui-forage/internal/core"
)

// Slot is one drawable: where to draw and which sheet region.
// The zero Slot draws nothing.
type Slot struct {
	Transform core.AABB
	Region    anim.SheetRegion
}

// Empty reports whether the slot has nothing to draw.
func (s Slot) Empty() bool {
	return s.Region.IsZero() || s.Transform.Half == (core.Vec2{})
}

// Range is a contiguous run of slots reserved for one kind of entity.
type Range struct {
	Start int
	Len   int
}

// Index maps the i-th entity of the range to its slot index.
func (r Range) Index(i int) int {
	return r.Start + i
}

// Group is a fixed-capacity arena of slots. Entity kinds reserve named
// ranges once at setup, so every entity keeps the same slot for its lifetime.
type Group struct {
	slots  []Slot
	ranges map[string]Range
	next   int
	order  []int // draw-order scratch
}

// NewGroup creates a group with room for capacity slots.
func NewGroup(capacity int) *Group {
	return &Group{
		slots:  make([]Slot, capacity),
		ranges: make(map[string]Range),
		order:  make([]int, 0, capacity),
	}
}

// Reserve claims n consecutive slots under name.
func (g *Group) Reserve(name string, n int) (Range, error) {
	if _, exists := g.ranges[name]; exists {
		return Range{}, fmt.Errorf("sprite: range %q already reserved", name)
	}
	if n < 0 {
		return Range{}, fmt.Errorf("sprite: range %q has negative size %d", name, n)
	}
	if g.next+n > len(g.slots) {
		return Range{}, fmt.Errorf("sprite: range %q needs %d slots, %d of %d free",
			name, n, len(g.slots)-g.next, len(g.slots))
	}
	r := Range{Start: g.next, Len: n}
	g.ranges[name] = r
	g.next += n
	return r, nil
}

// Range returns a previously reserved range.
func (g *Group) Range(name string) (Range, bool) {
	r, ok := g.ranges[name]
	return r, ok
}

// Set fills slot i. Indices outside the group are ignored.
func (g *Group) Set(i int, transform core.AABB, region anim.SheetRegion) {
	if i < 0 || i >= len(g.slots) {
		return
	}
	g.slots[i] = Slot{Transform: transform, Region: region}
}

// Clear empties slot i.
func (g *Group) Clear(i int) {
	if i < 0 || i >= len(g.slots) {
		return
	}
	g.slots[i] = Slot{}
}

// Reset empties every slot and keeps the reserved ranges.
func (g *Group) Reset() {
	clear(g.slots)
}

// Slot returns slot i.
func (g *Group) Slot(i int) Slot {
	if i < 0 || i >= len(g.slots) {
		return Slot{}
	}
	return g.slots[i]
}

// Used returns how many slots have been reserved.
func (g *Group) Used() int {
	return g.next
}
