// Package physics provides the vector and overlap math used by the simulation.
package physics

import "math"

// Vec2 is a 2D vector value. Components combine and compare componentwise.
type Vec2 struct {
	X, Y float64
}

// Add returns the componentwise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	Min, Max Vec2
}

// RectAround returns the rectangle centered at c with the given half extents.
func RectAround(c Vec2, halfW, halfH float64) Rect {
	return Rect{
		Min: Vec2{X: c.X - halfW, Y: c.Y - halfH},
		Max: Vec2{X: c.X + halfW, Y: c.Y + halfH},
	}
}

// Overlaps reports whether a and b overlap. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// OverlapArea returns the area of the intersection of a and b, or 0 when
// they do not overlap.
func OverlapArea(a, b Rect) float64 {
	w := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	if w <= 0 {
		return 0
	}
	h := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	if h <= 0 {
		return 0
	}
	return w * h
}
