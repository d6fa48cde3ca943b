// Package collision keeps a single moving actor out of a set of static
// obstacles by iteratively pushing it along the axis of least penetration.
package collision

import (
	"cmp"
	"math"
	"slices"

	"github.com/vovakirdan/tui-forage/internal/core"
)

// DefaultEpsilon is the overlap below which a contact counts as resolved.
const DefaultEpsilon = 1.1920929e-07 // float32 machine epsilon

// Contact pairs an obstacle index with its displacement from the actor.
type Contact struct {
	Index int
	Disp  core.Vec2
}

// Resolver computes corrected actor positions against static obstacles.
//
// Probe is the half-extent used to find candidate contacts. Precise is the
// smaller half-extent used to compute the actual pushes. Casting the wider
// probe first catches obstacles the actor is about to enter.
type Resolver struct {
	Probe   core.Vec2
	Precise core.Vec2
	Steps   int
	Epsilon float64

	contacts []Contact
}

// New creates a resolver with the given probe and precise half-extents.
func New(probe, precise core.Vec2, steps int) *Resolver {
	return &Resolver{
		Probe:   probe,
		Precise: precise,
		Steps:   steps,
		Epsilon: DefaultEpsilon,
	}
}

// Contacts returns every obstacle overlapping the probe box at pos, largest
// overlap first. Equal magnitudes keep obstacle order. The returned slice is
// reused by the next call.
func (r *Resolver) Contacts(pos core.Vec2, obstacles []core.AABB) []Contact {
	probe := core.Box(pos, r.Probe)
	r.contacts = r.contacts[:0]
	for i, ob := range obstacles {
		d, ok := core.Displacement(ob, probe)
		if !ok {
			continue
		}
		r.contacts = append(r.contacts, Contact{Index: i, Disp: d})
	}
	// Displacement already drops non-finite boxes; cmp.Compare keeps the
	// order total regardless.
	slices.SortStableFunc(r.contacts, func(a, b Contact) int {
		return cmp.Compare(b.Disp.LengthSquared(), a.Disp.LengthSquared())
	})
	return r.contacts
}

// Resolve returns pos pushed out of the obstacles. It runs up to Steps
// passes and stops early once a pass finds no contacts.
func (r *Resolver) Resolve(pos core.Vec2, obstacles []core.AABB) core.Vec2 {
	steps := r.Steps
	if steps < 1 {
		steps = 1
	}
	eps := r.Epsilon
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	for range steps {
		contacts := r.Contacts(pos, obstacles)
		if len(contacts) == 0 {
			break
		}
		for _, c := range contacts {
			ob := obstacles[c.Index]
			// Earlier pushes in this pass may have moved the actor, so
			// the displacement is recomputed with the precise box.
			d, _ := core.Displacement(ob, core.Box(pos, r.Precise))
			if math.Abs(d.X) < eps || math.Abs(d.Y) < eps {
				break
			}
			if pos.X < ob.Center.X {
				d.X = -d.X
			}
			if pos.Y < ob.Center.Y {
				d.Y = -d.Y
			}
			if math.Abs(d.X) <= math.Abs(d.Y) {
				pos.X += d.X
			} else {
				pos.Y += d.Y
			}
		}
	}
	return pos
}
