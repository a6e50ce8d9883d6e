// Package collision implements the per-tick terrain hit test that
// classifies a lander's movement into a terminal Landing outcome or
// "still flying".
package collision

import (
	"errors"

	"github.com/Nizerlak/mars-lander-exercise/geometry"
	"github.com/Nizerlak/mars-lander-exercise/physics"
	"github.com/Nizerlak/mars-lander-exercise/terrain"
)

// Kind enumerates the tagged variants of a terminal landing outcome.
type Kind int

const (
	// Correct is a landing on the flat pad within all limits.
	Correct Kind = iota
	// WrongTerrain is a hit on non-flat terrain or the map boundary.
	WrongTerrain
	// NotVertical is a pad hit with a non-zero angle.
	NotVertical
	// TooFastVertical is a pad hit exceeding the vertical speed limit.
	TooFastVertical
	// TooFastHorizontal is a pad hit exceeding the horizontal speed limit.
	TooFastHorizontal
)

func (k Kind) String() string {
	switch k {
	case Correct:
		return "Correct"
	case WrongTerrain:
		return "WrongTerrain"
	case NotVertical:
		return "NotVertical"
	case TooFastVertical:
		return "TooFastVertical"
	case TooFastHorizontal:
		return "TooFastHorizontal"
	default:
		return "Unknown"
	}
}

// Landing is the terminal outcome of a lander's flight. Only the field
// relevant to Kind is populated: Dist for WrongTerrain, ErrorAbs for the
// other non-Correct kinds.
type Landing struct {
	Kind     Kind
	Dist     float64 // along-polygon distance, for WrongTerrain
	ErrorAbs float64 // |angle| or |speed|-limit, for the three pad-miss kinds
}

// Checker tests lander movement against an immutable Terrain.
type Checker struct {
	terrain  terrain.Terrain
	polygon  []terrain.PolygonSegment
	padStart float64
	padEnd   float64
}

// ErrNoFlatPad is returned when a terrain has no consecutive pair of equal-y
// points to serve as a landing pad.
var ErrNoFlatPad = errors.New("collision: terrain has no flat landing pad")

// New builds a Checker bound to t. Fails if t has no flat pad: terrain
// lacking a flat segment is a configuration error surfaced at
// construction.
func New(t terrain.Terrain) (*Checker, error) {
	start, end, ok := t.FlatPad()
	if !ok {
		return nil, ErrNoFlatPad
	}
	return &Checker{
		terrain:  t,
		polygon:  t.ClosedPolygon(),
		padStart: start,
		padEnd:   end,
	}, nil
}

// PadRange returns the along-polygon distance to the start and end of the
// flat landing pad this Checker was built from.
func (c *Checker) PadRange() (start, end float64) {
	return c.padStart, c.padEnd
}

// Check tests the lander's movement from previous to current tick against
// the closed map polygon, in segment order, returning the first collision
// point and its classification. ok is false if the lander is still flying.
func (c *Checker) Check(previous, current physics.LanderState) (point geometry.Vec2, landing Landing, ok bool) {
	path := geometry.NewSegment(
		geometry.Vec2{X: previous.X, Y: previous.Y},
		geometry.Vec2{X: current.X, Y: current.Y},
	)

	for _, seg := range c.polygon {
		hit, hitOK := geometry.Intersect(path, seg.Segment)
		if !hitOK {
			continue
		}

		collisionDist := seg.CumulativeBefore + seg.P.Dist(hit)
		landing = c.classify(seg, collisionDist, current)
		return hit, landing, true
	}

	return geometry.Vec2{}, Landing{}, false
}

func (c *Checker) classify(seg terrain.PolygonSegment, dist float64, current physics.LanderState) Landing {
	if !seg.Flat || seg.P.Y >= c.terrain.MaxY {
		return Landing{Kind: WrongTerrain, Dist: dist}
	}

	switch {
	case abs(current.VX) > physics.MaxHorizontalSpeed:
		return Landing{Kind: TooFastHorizontal, ErrorAbs: abs(current.VX) - physics.MaxHorizontalSpeed}
	case abs(current.VY) > physics.MaxVerticalSpeed:
		return Landing{Kind: TooFastVertical, ErrorAbs: abs(current.VY) - physics.MaxVerticalSpeed}
	case current.Angle != 0:
		return Landing{Kind: NotVertical, ErrorAbs: abs(current.Angle)}
	default:
		return Landing{Kind: Correct}
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
