package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-forage/internal/anim"
	"github.com/vovakirdan/tui-forage/internal/core"
	"github.com/vovakirdan/tui-forage/internal/sprite"
)

// Validate checks that the config describes a playable world whose sprite
// regions all lie inside the atlas.
func (c ForageConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		fail("world size %gx%g must be positive", w.Width, w.Height)
	}
	if w.Margin < 0 || w.Nudge < 0 || 2*(w.Margin+w.Nudge) >= min(w.Width, w.Height) {
		fail("world margin %g and nudge %g leave no room to move", w.Margin, w.Nudge)
	}
	if w.Ground != "" && utf8.RuneCountInString(w.Ground) != 1 {
		fail("world ground %q must be a single glyph", w.Ground)
	}

	a := c.Actor
	if a.Speed <= 0 {
		fail("actor speed %g must be positive", a.Speed)
	}
	if a.Probe.X < a.Precise.X || a.Probe.Y < a.Precise.Y {
		fail("actor probe %+v must be at least as large as precise %+v", a.Probe, a.Precise)
	}
	checkSize(fail, "actor probe", a.Probe)
	checkSize(fail, "actor precise", a.Precise)
	checkSize(fail, "actor size", a.Size)
	if a.Spawn.X < 0 || a.Spawn.Y < 0 || a.Spawn.X > w.Width || a.Spawn.Y > w.Height {
		fail("actor spawn %+v is outside the world", a.Spawn)
	}
	if len(a.Animation.Frames) == 0 {
		fail("actor animation has no frames")
	}

	if c.Collision.Steps < 1 {
		fail("collision steps %d must be at least 1", c.Collision.Steps)
	}
	if c.Collision.Epsilon < 0 {
		fail("collision epsilon %g must not be negative", c.Collision.Epsilon)
	}

	if c.Obstacles.Count < 0 {
		fail("obstacle count %d must not be negative", c.Obstacles.Count)
	}
	checkSize(fail, "obstacle half", c.Obstacles.Half)
	checkSize(fail, "obstacle size", c.Obstacles.Size)

	goalItems := 0
	for i, p := range c.Pickups {
		name := p.Kind
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if p.Count < 0 {
			fail("pickup %s count %d must not be negative", name, p.Count)
		}
		checkSize(fail, "pickup "+name+" size", p.Size)
		if p.CatchDistance <= 0 {
			fail("pickup %s catch distance %g must be positive", name, p.CatchDistance)
		}
		switch p.Mode {
		case PickupInstant:
		case PickupCarry:
			if !c.Depot.Enabled() {
				fail("pickup %s is carried but the variant has no depot", name)
			}
		default:
			fail("pickup %s mode %q must be carry or instant", name, p.Mode)
		}
		if p.Wander < 0 {
			fail("pickup %s wander %g must not be negative", name, p.Wander)
		}
		if p.Goal {
			goalItems += p.Count
		}
	}

	if c.Depot.Enabled() {
		checkSize(fail, "depot size", c.Depot.Size)
		if len(c.Depot.Ignite.Frames) == 0 {
			fail("depot ignite animation has no frames")
		}
		if len(c.Depot.Lit.Frames) == 0 {
			fail("depot lit animation has no frames")
		}
	}

	h := c.Hazards
	if h.Count < 0 {
		fail("hazard count %d must not be negative", h.Count)
	}
	if h.Count > 0 {
		checkSize(fail, "hazard size", h.Size)
		if h.MoveEvery < 1 {
			fail("hazard move_every %d must be at least 1", h.MoveEvery)
		}
		if len(h.Animation.Frames) == 0 {
			fail("hazard animation has no frames")
		}
	}
	switch h.Clock {
	case "", ClockShared, ClockInstance:
	default:
		fail("hazard clock %q must be shared or instance", h.Clock)
	}

	if c.Rules.Goal < 1 {
		fail("rules goal %d must be at least 1", c.Rules.Goal)
	} else if goalItems < c.Rules.Goal {
		fail("rules goal %d is more than the %d goal items placed", c.Rules.Goal, goalItems)
	}
	if c.Rules.TimeLimitSecs < 0 {
		fail("rules time limit %d must not be negative", c.Rules.TimeLimitSecs)
	}

	atlas, err := c.BuildAtlas()
	if err != nil {
		errs = append(errs, err)
	} else {
		for name, r := range c.regions() {
			if err := atlas.Check(r); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
	}

	return errors.Join(errs...)
}

// BuildAtlas converts the atlas pages into drawable sprite pages.
func (c ForageConfig) BuildAtlas() (*sprite.Atlas, error) {
	atlas := &sprite.Atlas{}
	for i, pc := range c.Atlas {
		palette := make(map[rune]core.Color, len(pc.Palette))
		for key, name := range pc.Palette {
			r, size := utf8.DecodeRuneInString(key)
			if size == 0 || size != len(key) {
				return nil, fmt.Errorf("atlas page %d: palette key %q must be a single rune", i, key)
			}
			color, err := core.ParseColor(name)
			if err != nil {
				return nil, fmt.Errorf("atlas page %d: %w", i, err)
			}
			palette[r] = color
		}
		atlas.Pages = append(atlas.Pages, sprite.NewPage(pc.Glyphs, pc.Tints, palette))
	}
	return atlas, nil
}

// regions lists every sprite region the variant draws, keyed for error messages.
func (c ForageConfig) regions() map[string]anim.SheetRegion {
	out := make(map[string]anim.SheetRegion)
	addStrip := func(name string, a AnimationConfig) {
		for i, r := range a.Frames {
			out[fmt.Sprintf("%s frame %d", name, i)] = r
		}
	}

	addStrip("actor animation", c.Actor.Animation)
	addStrip("actor front", c.Actor.Front)
	addStrip("actor back", c.Actor.Back)
	if c.Obstacles.Count > 0 {
		out["obstacle region"] = c.Obstacles.Region
	}
	for i, p := range c.Pickups {
		out[fmt.Sprintf("pickup %d (%s) region", i, p.Kind)] = p.Region
	}
	if c.Depot.Enabled() {
		out["depot region"] = c.Depot.Region
		addStrip("depot ignite", c.Depot.Ignite)
		addStrip("depot lit", c.Depot.Lit)
	}
	if c.Hazards.Count > 0 {
		addStrip("hazard animation", c.Hazards.Animation)
	}
	return out
}

func checkSize(fail func(string, ...any), name string, v core.Vec2) {
	if v.X < 0 || v.Y < 0 || !v.IsFinite() {
		fail("%s %+v must be finite and not negative", name, v)
	}
}
