// Package terrain models the polyline surface the lander must avoid or land
// on, and its extension into a closed map polygon for collision checking.
package terrain

import (
	"errors"

	"github.com/Nizerlak/mars-lander-exercise/geometry"
)

// Default map bounds used whenever a scenario doesn't specify its own.
const (
	DefaultMaxX = 7000.0
	DefaultMaxY = 3000.0
)

// Terrain is the polyline surface of a scenario, plus the map's bounding
// box. It is immutable once constructed and safe to share by reference.
type Terrain struct {
	MaxX, MaxY float64
	Xs, Ys     []float64
}

// ErrTooFewPoints is returned when a terrain has fewer than two points.
var ErrTooFewPoints = errors.New("terrain must have at least two points")

// ErrLengthMismatch is returned when Xs and Ys differ in length.
var ErrLengthMismatch = errors.New("terrain xs and ys must have equal length")

// New builds a Terrain with the given map bounds.
func New(maxX, maxY float64, xs, ys []float64) (Terrain, error) {
	if len(xs) != len(ys) {
		return Terrain{}, ErrLengthMismatch
	}
	if len(xs) < 2 {
		return Terrain{}, ErrTooFewPoints
	}
	return Terrain{MaxX: maxX, MaxY: maxY, Xs: xs, Ys: ys}, nil
}

// WithDefaultLimits builds a Terrain using the default 7000x3000 map.
func WithDefaultLimits(xs, ys []float64) (Terrain, error) {
	return New(DefaultMaxX, DefaultMaxY, xs, ys)
}

// NumPoints returns the number of polyline vertices.
func (t Terrain) NumPoints() int {
	return len(t.Xs)
}

// Point returns the i-th polyline vertex.
func (t Terrain) Point(i int) geometry.Vec2 {
	return geometry.Vec2{X: t.Xs[i], Y: t.Ys[i]}
}

// PolygonSegment describes one edge of the closed map polygon, annotated
// with the cumulative distance along the polygon to its start, and whether
// it is the flat landing pad.
type PolygonSegment struct {
	geometry.Segment
	// CumulativeBefore is the along-polygon distance from the polygon's
	// start to this segment's start point.
	CumulativeBefore float64
	// Flat is true iff both endpoints share the same y (a candidate landing
	// pad segment).
	Flat bool
}

// ClosedPolygon returns the segments of the closed map boundary, walked
// counter-clockwise starting at (0, MaxY): the left wall down to the first
// ground point, the ground polyline, the right wall, and the ceiling back
// to (0, MaxY).
func (t Terrain) ClosedPolygon() []PolygonSegment {
	points := make([]geometry.Vec2, 0, t.NumPoints()+3)
	points = append(points, geometry.Vec2{X: 0, Y: t.MaxY})
	for i := 0; i < t.NumPoints(); i++ {
		points = append(points, t.Point(i))
	}
	points = append(points, geometry.Vec2{X: t.MaxX, Y: t.MaxY})
	points = append(points, geometry.Vec2{X: 0, Y: t.MaxY})

	segs := make([]PolygonSegment, 0, len(points)-1)
	cumulative := 0.0
	for i := 0; i+1 < len(points); i++ {
		seg := geometry.NewSegment(points[i], points[i+1])
		segs = append(segs, PolygonSegment{
			Segment:          seg,
			CumulativeBefore: cumulative,
			Flat:             points[i].Y == points[i+1].Y,
		})
		cumulative += points[i].Dist(points[i+1])
	}
	return segs
}

// FlatPad locates the unique consecutive pair of polyline points with equal
// y — the landing pad — and returns the along-polygon cumulative distance
// to its start and end. ok is false if no flat segment exists.
//
// The closed polygon's first edge is (0,MaxY)->Point(0), so the ground
// polyline edge Point(i-1)->Point(i) sits at polygon index i.
func (t Terrain) FlatPad() (start, end float64, ok bool) {
	segs := t.ClosedPolygon()
	for i := 1; i < t.NumPoints(); i++ {
		if t.Ys[i-1] != t.Ys[i] {
			continue
		}
		seg := segs[i]
		return seg.CumulativeBefore, seg.CumulativeBefore + t.Point(i-1).Dist(t.Point(i)), true
	}
	return 0, 0, false
}
