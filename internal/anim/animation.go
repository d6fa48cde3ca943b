// Package anim plays sprite-sheet animations: it steps a frame index over
// fixed ticks, loops or plays once, and mirrors frames for left/right facing.
package anim

// SheetRegion locates one cell of a sprite sheet.
//
// Layer selects the sheet page, X and Y give the cell origin, Z orders
// drawing, W and H give the extent. A negative W reads the region mirrored,
// right to left starting just before X.
type SheetRegion struct {
	Layer float64 `yaml:"layer"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
}

// IsZero reports whether the region is empty.
func (r SheetRegion) IsZero() bool {
	return r == SheetRegion{}
}

// Mirrored reports whether the region is read right to left.
func (r SheetRegion) Mirrored() bool {
	return r.W < 0
}

// Animation steps through a list of sheet regions.
type Animation struct {
	States       []SheetRegion // sprite sheet positions
	FrameCounter int           // ticks spent on the current state
	Rate         int           // ticks needed before moving to the next state
	StateNumber  int           // index into States
	FacingLeft   bool
	SpriteWidth  float64 // shift applied to X when a frame is mirrored
	Looping      bool
	Done         bool
}

// New creates an animation. A one-shot animation with at most one state is
// done from the start.
func New(states []SheetRegion, rate int, looping bool, spriteWidth float64) *Animation {
	return &Animation{
		States:      states,
		Rate:        rate,
		SpriteWidth: spriteWidth,
		Looping:     looping,
		Done:        !looping && len(states) <= 1,
	}
}

// Clone returns a deep copy. CurrentState mutates stored frames, so clones
// never share the States backing array.
func (a *Animation) Clone() *Animation {
	c := *a
	c.States = append([]SheetRegion(nil), a.States...)
	return &c
}

// last is the final valid index into States, -1 when there are none.
func (a *Animation) last() int {
	return len(a.States) - 1
}

// Tick advances the frame counter and moves to the next state once more
// than Rate ticks have passed.
//
// A looping animation wraps to 0 on reaching the last index, so the final
// frame of a looping strip is never shown.
func (a *Animation) Tick() {
	a.FrameCounter++
	if a.FrameCounter <= a.Rate {
		return
	}

	a.StateNumber++
	if a.Looping {
		if a.StateNumber >= a.last() {
			a.StateNumber = 0
		}
	} else {
		a.Done = a.StateNumber >= a.last()
	}
	a.FrameCounter = 0
}

// Stop plays a looping animation forward until it is back on its first
// state. One-shot animations never return to 0 and are left as they are.
func (a *Animation) Stop() {
	if !a.Looping {
		return
	}
	for a.StateNumber != 0 {
		a.Tick()
	}
}

// CurrentState returns the frame for the current state, mirrored to match
// the facing direction.
//
// The mirror is stored back into States: reading twice without a facing
// change returns the same region, never a double flip.
func (a *Animation) CurrentState() SheetRegion {
	if len(a.States) == 0 {
		return SheetRegion{}
	}
	if !a.Looping && a.StateNumber > a.last() {
		a.StateNumber = a.last()
	}

	s := &a.States[a.StateNumber]
	if a.FacingLeft {
		if s.W > 0 {
			s.W = -s.W
			s.X += a.SpriteWidth
		}
	} else if s.W < 0 {
		s.W = -s.W
		s.X -= a.SpriteWidth
	}
	return *s
}

// FaceLeft mirrors subsequent frames.
func (a *Animation) FaceLeft() {
	a.FacingLeft = true
}

// FaceRight shows subsequent frames unmirrored.
func (a *Animation) FaceRight() {
	a.FacingLeft = false
}

// Restart rewinds to the first state.
func (a *Animation) Restart() {
	a.FrameCounter = 0
	a.StateNumber = 0
}
