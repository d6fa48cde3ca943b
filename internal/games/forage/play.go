package forage

import (
	"github.com/vovakirdan/tui-forage/internal/config"
	"github.com/vovakirdan/tui-forage/internal/core"
)

// play runs one unpaused tick of the round.
func (g *Game) play(in core.InputFrame) {
	g.tickCount++

	g.moveActor(in)
	g.moveCarried()
	g.moveHazards()
	g.wanderItems()
	g.collect(in)

	if g.score >= g.cfg.Rules.Goal {
		g.win()
	} else if g.caught() {
		g.lose("caught by a " + g.hazardLabel())
	} else if g.outOfTime() {
		g.lose("out of time")
	}

	g.tickAnimations()
	g.camera.Follow(g.actorPos, g.cfg.World.Size())
}

// moveActor pushes the actor out of obstacles, applies the input move with
// the world clamp on top, then picks the facing and drives its walk cycle.
func (g *Game) moveActor(in core.InputFrame) {
	a := g.cfg.Actor
	w := g.cfg.World

	g.actorPos = g.resolver.Resolve(g.actorPos, g.obstacles)

	dx := in.Axis(core.ActionLeft, core.ActionRight)
	dy := in.Axis(core.ActionUp, core.ActionDown)
	g.actorPos.X = core.ClampAxis(g.actorPos.X, dx*a.Speed, w.Margin, w.Width-w.Margin, w.Nudge)
	g.actorPos.Y = core.ClampAxis(g.actorPos.Y, dy*a.Speed, w.Margin, w.Height-w.Margin, w.Nudge)

	// Vertical moves win over sideways ones.
	switch {
	case dy > 0:
		g.face(facingFront)
	case dy < 0:
		g.face(facingBack)
	case dx != 0:
		g.face(facingSide)
	}
	switch side := g.actorViews[facingSide]; {
	case dx < 0:
		side.FaceLeft()
	case dx > 0:
		side.FaceRight()
	}
	if dx != 0 || dy != 0 {
		g.actorAnim.Tick()
	} else {
		g.actorAnim.Stop()
	}
}

// moveCarried keeps the held item at its carry offset.
func (g *Game) moveCarried() {
	if g.carrying < 0 {
		return
	}
	it := &g.items[g.carrying]
	it.pos = g.actorPos.Add(g.cfg.Pickups[it.kind].CarryOffset)
}

// moveHazards steps every hazard one random diagonal on its cadence.
func (g *Game) moveHazards() {
	h := g.cfg.Hazards
	if len(g.hazards) == 0 {
		return
	}
	every := g.difficulty.Interval(h.MoveEvery, g.score, g.tickCount)
	if g.tickCount%every != 0 {
		return
	}
	step := g.difficulty.Speed(h.Step, g.score, g.tickCount)
	for i := range g.hazards {
		p := &g.hazards[i]
		p.pos.X = g.inWorldX(p.pos.X + g.randomSign()*step)
		p.pos.Y = g.inWorldY(p.pos.Y + g.randomSign()*step)
	}
}

// wanderItems drifts loose items that have a wander amplitude.
func (g *Game) wanderItems() {
	for i := range g.items {
		it := &g.items[i]
		amp := g.cfg.Pickups[it.kind].Wander
		if amp <= 0 || it.collected {
			continue
		}
		it.pos.X = g.inWorldX(it.pos.X + (g.rng.Float64()*2-1)*amp)
		it.pos.Y = g.inWorldY(it.pos.Y + (g.rng.Float64()*2-1)*amp)
	}
}

// collect picks up at most one item of each kind in reach, then delivers a
// carried item when the actor stands at the depot.
func (g *Game) collect(in core.InputFrame) {
	interact := in.Has(core.ActionInteract)

	for kind, pc := range g.cfg.Pickups {
		if pc.RequireInteract && !interact {
			continue
		}
		if pc.Mode == config.PickupCarry && g.carrying >= 0 {
			continue
		}
		idx := g.itemInReach(kind, pc.CatchDistance)
		if idx < 0 {
			continue
		}

		g.items[idx].collected = true
		switch pc.Mode {
		case config.PickupCarry:
			g.carrying = idx
			logger.Debug("pickup", "game", g.cfg.ID, "kind", pc.Kind, "carrying", true)
		default:
			g.count(pc)
			logger.Debug("pickup", "game", g.cfg.ID, "kind", pc.Kind, "score", g.score, "extras", g.extras)
		}
	}

	depot := g.cfg.Depot
	if g.carrying >= 0 && depot.Enabled() && depot.Pos.Distance(g.actorPos) <= depot.Radius {
		pc := g.cfg.Pickups[g.items[g.carrying].kind]
		g.carrying = -1
		g.count(pc)
		logger.Debug("delivery", "game", g.cfg.ID, "kind", pc.Kind, "score", g.score)
	}
}

// itemInReach returns the first loose item of kind within dist of the actor,
// or -1.
func (g *Game) itemInReach(kind int, dist float64) int {
	for i, it := range g.items {
		if it.kind == kind && !it.collected && it.pos.Distance(g.actorPos) <= dist {
			return i
		}
	}
	return -1
}

func (g *Game) count(pc config.PickupConfig) {
	if pc.Goal {
		g.score++
	} else {
		g.extras++
	}
}

func (g *Game) caught() bool {
	for _, h := range g.hazards {
		if h.pos.Distance(g.actorPos) <= g.cfg.Hazards.CatchDistance {
			return true
		}
	}
	return false
}

// limitTicks returns the round length in ticks, 0 when unlimited.
func (g *Game) limitTicks() int {
	return g.cfg.Rules.TimeLimitSecs * g.runtime.TickRate
}

func (g *Game) outOfTime() bool {
	limit := g.limitTicks()
	return limit > 0 && g.tickCount >= limit
}

// win ends the round and lights the depot if there is one.
func (g *Game) win() {
	if g.cfg.Depot.Enabled() && !g.ignited {
		g.ignited = true
		g.depotAnim = g.cfg.Depot.Ignite.Build()
		logger.Debug("ignite", "game", g.cfg.ID, "depot", g.cfg.Depot.Label)
	}
	g.setPhase(core.PhaseWon)
}

func (g *Game) lose(reason string) {
	g.lostReason = reason
	logger.Debug("lost", "game", g.cfg.ID, "reason", reason, "score", g.score, "tick", g.tickCount)
	g.setPhase(core.PhaseLost)
}

// tickAnimations advances every world animation exactly once.
// The actor's walk cycle is driven by movement in moveActor.
func (g *Game) tickAnimations() {
	if len(g.hazards) > 0 {
		if g.cfg.Hazards.Clock == config.ClockInstance {
			for _, h := range g.hazards {
				h.anim.Tick()
			}
		} else {
			g.hazardAnim.Tick()
		}
	}
	g.tickDepot()
}

// tickDepot plays the ignite strip once, then switches to the lit loop.
func (g *Game) tickDepot() {
	if g.depotAnim == nil {
		return
	}
	g.depotAnim.Tick()
	if g.depotAnim.Done && !g.depotAnim.Looping {
		g.depotAnim = g.cfg.Depot.Lit.Build()
	}
}

func (g *Game) hazardLabel() string {
	if g.cfg.Hazards.Label == "" {
		return "hazard"
	}
	return g.cfg.Hazards.Label
}

func (g *Game) randomSign() float64 {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func (g *Game) inWorldX(x float64) float64 {
	return core.ClampF(x, 1, g.cfg.World.Width-1)
}

func (g *Game) inWorldY(y float64) float64 {
	return core.ClampF(y, 1, g.cfg.World.Height-1)
}
