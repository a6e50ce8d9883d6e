// Package geometry provides the 2D vector and segment-intersection
// primitives shared by terrain and collision checking.
package geometry

import "math"

// Vec2 is an immutable 2D vector or point. Values are always finite.
type Vec2 struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Cross returns the 2D cross product (scalar z-component) v x w.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Dot returns the dot product v.w = v.X*w.X + v.Y*w.Y.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Dist returns the Euclidean distance between v and w.
func (v Vec2) Dist(w Vec2) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}
