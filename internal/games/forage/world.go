package forage

import (
	"github.com/vovakirdan/tui-forage/internal/config"
	"github.com/vovakirdan/tui-forage/internal/core"
)

// placementTries bounds the rejection sampling for each placed entity.
const placementTries = 32

// placeWorld scatters obstacles, items and hazards using the round's rng.
// Obstacles keep clear of the spawn point and depot; items and hazards
// avoid obstacles.
func (g *Game) placeWorld() {
	cfg := g.cfg
	spawn := cfg.Actor.Spawn
	clearance := cfg.Obstacles.Clearance

	nearLandmark := func(p core.Vec2, dist float64) bool {
		if p.Distance(spawn) < dist {
			return true
		}
		return cfg.Depot.Enabled() && p.Distance(cfg.Depot.Pos) < dist
	}

	g.obstacles = g.obstacles[:0]
	for range cfg.Obstacles.Count {
		p := g.randomPos(cfg.Obstacles.Half, func(p core.Vec2) bool {
			return nearLandmark(p, clearance)
		})
		g.obstacles = append(g.obstacles, core.Box(p, cfg.Obstacles.Half))
	}

	g.items = g.items[:0]
	for kind, pc := range cfg.Pickups {
		for range pc.Count {
			p := g.randomPos(pc.Size, func(p core.Vec2) bool {
				return g.blocked(core.Box(p, pc.Size))
			})
			g.items = append(g.items, item{kind: kind, pos: p})
		}
	}

	g.hazards = g.hazards[:0]
	for i := range cfg.Hazards.Count {
		p := g.randomPos(cfg.Hazards.Size, func(p core.Vec2) bool {
			return p.Distance(spawn) < 2*clearance+cfg.Hazards.CatchDistance ||
				g.blocked(core.Box(p, cfg.Hazards.Size))
		})
		h := hazard{pos: p}
		if cfg.Hazards.Clock == config.ClockInstance {
			h.anim = g.hazardAnim.Clone()
			// Each hazard starts one frame further along the strip.
			for range i * (h.anim.Rate + 1) {
				h.anim.Tick()
			}
		}
		g.hazards = append(g.hazards, h)
	}
}

// randomPos picks a point whose box of half-extent half lies inside the
// world, retrying while reject reports true. The last candidate is kept when
// every try is rejected.
func (g *Game) randomPos(half core.Vec2, reject func(core.Vec2) bool) core.Vec2 {
	w := g.cfg.World
	var p core.Vec2
	for range placementTries {
		p = core.V(
			randRange(g.rng.Float64(), half.X+w.Margin, w.Width-half.X-w.Margin),
			randRange(g.rng.Float64(), half.Y+w.Margin, w.Height-half.Y-w.Margin),
		)
		if !reject(p) {
			break
		}
	}
	return p
}

// blocked reports whether box overlaps any obstacle.
func (g *Game) blocked(box core.AABB) bool {
	for _, ob := range g.obstacles {
		if ob.Overlaps(box) {
			return true
		}
	}
	return false
}

// randRange maps f in [0, 1) onto [lo, hi), collapsing to lo when the range
// is empty.
func randRange(f, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + f*(hi-lo)
}
