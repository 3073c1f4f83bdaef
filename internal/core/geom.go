// Package core provides fundamental types and utilities for the simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep
// scene logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in world coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Circle is a disc in world coordinates.
type Circle struct {
	Center Vec2
	Radius float64
}

// Overlaps returns true if the two circles strictly overlap.
// Circles that only touch (distance == sum of radii) do not overlap.
func (c Circle) Overlaps(other Circle) bool {
	return c.Center.Dist(other.Center) < c.Radius+other.Radius
}

// Bounds is the immutable world rectangle [0, W] x [0, H].
type Bounds struct {
	W, H float64
}

// Center returns the exact center point of the bounds.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.W / 2, Y: b.H / 2}
}

// Rect represents an axis-aligned rectangle in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
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

// ClampAxis keeps a circle of radius r inside [0, bound] on one axis.
// The low edge wins when the circle is wider than the bound.
func ClampAxis(pos, r, bound float64) float64 {
	if pos-r < 0 {
		return r
	}
	if pos+r > bound {
		return bound - r
	}
	return pos
}

// Crosses reports whether a circle of radius r at pos extends past either
// edge of [0, bound].
func Crosses(pos, r, bound float64) bool {
	return pos-r < 0 || pos+r > bound
}
