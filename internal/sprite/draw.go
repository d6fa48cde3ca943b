package sprite

import (
	"cmp"
	"math"
	"slices"

	"github.com/vovakirdan/tui-forage/internal/core"
)

// Camera is the visible window onto the world, in world units.
type Camera struct {
	Pos  core.Vec2
	Size core.Vec2
}

// Follow centres the camera on target, kept inside a world of the given size.
// A world smaller than the camera pins the camera to the origin.
func (c *Camera) Follow(target, world core.Vec2) {
	c.Pos.X = core.ClampF(target.X-c.Size.X/2, 0, math.Max(0, world.X-c.Size.X))
	c.Pos.Y = core.ClampF(target.Y-c.Size.Y/2, 0, math.Max(0, world.Y-c.Size.Y))
}

// Draw renders every non-empty slot of g through cam onto dst, starting at
// screen row offsetY. Slots draw in ascending Z; equal Z keeps slot order.
// Each region is drawn at its native cell size with its top-left corner at
// the slot's top-left corner.
func Draw(dst *core.Screen, g *Group, atlas *Atlas, cam Camera, offsetY int) {
	g.order = g.order[:0]
	for i, s := range g.slots {
		if !s.Empty() {
			g.order = append(g.order, i)
		}
	}
	slices.SortStableFunc(g.order, func(a, b int) int {
		return cmp.Compare(g.slots[a].Region.Z, g.slots[b].Region.Z)
	})

	viewW, viewH := int(cam.Size.X), int(cam.Size.Y)
	for _, i := range g.order {
		s := g.slots[i]
		topLeft := s.Transform.Min().Sub(cam.Pos)
		ox := int(math.Round(topLeft.X))
		oy := int(math.Round(topLeft.Y))
		w := int(math.Abs(s.Region.W))
		h := int(s.Region.H)

		for j := range h {
			sy := oy + j
			if sy < 0 || sy >= viewH {
				continue
			}
			for k := range w {
				sx := ox + k
				if sx < 0 || sx >= viewW {
					continue
				}
				r, c := atlas.Cell(s.Region, k, j)
				if r == Transparent {
					continue
				}
				dst.SetColor(sx, sy+offsetY, r, c)
			}
		}
	}
}
