// Package core provides fundamental types and utilities for the forage platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a point or vector in world units.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// AABB is an axis-aligned box described by its center and half-extents.
// Boxes are rebuilt every tick from an entity's position, never mutated.
type AABB struct {
	Center Vec2
	Half   Vec2
}

// Box creates an AABB centered at c with half-extents half.
func Box(c, half Vec2) AABB {
	return AABB{Center: c, Half: half}
}

// Min returns the top-left corner.
func (a AABB) Min() Vec2 {
	return a.Center.Sub(a.Half)
}

// Max returns the bottom-right corner.
func (a AABB) Max() Vec2 {
	return a.Center.Add(a.Half)
}

// Size returns the full extents of the box.
func (a AABB) Size() Vec2 {
	return a.Half.Scale(2)
}

// IsFinite reports whether the box contains no NaN or infinite values.
func (a AABB) IsFinite() bool {
	return a.Center.IsFinite() && a.Half.IsFinite()
}

// Overlaps returns true if a and b overlap with positive area.
func (a AABB) Overlaps(b AABB) bool {
	_, ok := Displacement(a, b)
	return ok
}

// Displacement returns the overlap extent of a and b along each axis, i.e.
// the minimum push on that axis that separates them. The result is always
// non-negative. ok is false when the boxes do not overlap on both axes or
// when either box contains NaN or infinite values.
func Displacement(a, b AABB) (d Vec2, ok bool) {
	if !a.IsFinite() || !b.IsFinite() {
		return Vec2{}, false
	}
	d.X = (a.Half.X + b.Half.X) - math.Abs(a.Center.X-b.Center.X)
	d.Y = (a.Half.Y + b.Half.Y) - math.Abs(a.Center.Y-b.Center.Y)
	if d.X <= 0 || d.Y <= 0 {
		return Vec2{}, false
	}
	return d, true
}

// ClampAxis keeps a coordinate inside [lo, hi] the way actors are held in
// the world: a coordinate at or past an edge is pulled back inside by nudge
// and the move is dropped for that tick, otherwise the move is applied.
func ClampAxis(pos, move, lo, hi, nudge float64) float64 {
	switch {
	case pos >= hi:
		return hi - nudge
	case pos <= lo:
		return lo + nudge
	default:
		return pos + move
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
