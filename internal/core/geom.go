// Package core provides fundamental types and utilities for the arena.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns a vector of the given length pointing along angle (radians from +x).
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle returns the direction of v in radians from +x.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// AngleTo returns the direction from a towards b.
func AngleTo(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// CirclesOverlap reports whether two circles are strictly closer than the sum of their radii.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return Dist(a, b) < ra+rb
}

// SegmentDist returns the distance from p to the segment a-b.
// A degenerate segment is treated as the point a.
func SegmentDist(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom == 0 {
		return Dist(p, a)
	}
	t := ClampF(p.Sub(a).Dot(ab)/denom, 0, 1)
	return Dist(p, a.Add(ab.Scale(t)))
}

// Bounds is an axis-aligned world rectangle anchored at the origin.
type Bounds struct {
	W, H float64
}

// Contains reports whether p lies strictly inside the bounds.
func (b Bounds) Contains(p Vec2) bool {
	return p.X > 0 && p.X < b.W && p.Y > 0 && p.Y < b.H
}

// ClampInset restricts p to the bounds shrunk by margin on every side.
func (b Bounds) ClampInset(p Vec2, margin float64) Vec2 {
	return Vec2{
		X: ClampF(p.X, margin, math.Max(margin, b.W-margin)),
		Y: ClampF(p.Y, margin, math.Max(margin, b.H-margin)),
	}
}

// Center returns the middle of the bounds.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.W / 2, Y: b.H / 2}
}

// Rect represents an axis-aligned box in screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
