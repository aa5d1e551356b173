// Package geom implements the 2D vector arithmetic the BSP builder and
// renderer share: side-of-line classification, line/segment intersection,
// rotation, and signed angle between vectors.
package geom

import "math"

// Epsilon is the tolerance used by every side test and intersection
// routine in this module.
const Epsilon = 1e-6

// Vec2 is a 2D point or vector in world, view, or screen space depending
// on context.
type Vec2 struct {
	X, Y float32
}

// Add returns v+other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v-other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D cross product (the z component of the 3D cross
// product of the two vectors extended into the xy plane).
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Rotate returns v rotated by radians (positive = counter-clockwise).
func (v Vec2) Rotate(radians float32) Vec2 {
	s, c := math.Sincos(float64(radians))
	sf, cf := float32(s), float32(c)
	return Vec2{
		X: v.X*cf - v.Y*sf,
		Y: v.X*sf + v.Y*cf,
	}
}

// SignedAngle returns the signed angle from a to b in (-pi, pi].
func SignedAngle(a, b Vec2) float32 {
	return float32(math.Atan2(float64(a.Cross(b)), float64(a.Dot(b))))
}

// Side classifies point p against the directed line through a->b.
// Returns -1 if p is in front (left of the direction a->b), +1 if behind
// (right of it), 0 if p lies on the line within Epsilon.
func Side(a, b, p Vec2) int {
	c := b.Sub(a).Cross(p.Sub(a))
	switch {
	case c > Epsilon:
		return -1
	case c < -Epsilon:
		return 1
	default:
		return 0
	}
}

// LineIntersect computes the intersection of the infinite lines through
// a1->a2 and b1->b2. ok is false if the lines are parallel or coincident
// (|det| < Epsilon).
func LineIntersect(a1, a2, b1, b2 Vec2) (point Vec2, ok bool) {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	denom := r.Cross(s)
	if denom > -Epsilon && denom < Epsilon {
		return Vec2{}, false
	}
	diff := b1.Sub(a1)
	t := diff.Cross(s) / denom
	return a1.Add(r.Scale(t)), true
}

// SegmentIntersect computes the intersection of segments a1->a2 and
// b1->b2, additionally requiring both parametric coordinates to lie in
// [0,1]. ok is false if the segments are parallel or do not overlap.
func SegmentIntersect(a1, a2, b1, b2 Vec2) (point Vec2, ok bool) {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	denom := r.Cross(s)
	if denom > -Epsilon && denom < Epsilon {
		return Vec2{}, false
	}
	diff := b1.Sub(a1)
	t := diff.Cross(s) / denom
	u := diff.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec2{}, false
	}
	return a1.Add(r.Scale(t)), true
}
