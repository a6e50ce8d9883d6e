// Package solver implements the genetic search over lander command
// sequences: delta-encoded chromosomes, elitist selection, arithmetic
// crossover, uniform mutation, and delta-to-absolute accumulation.
package solver

import "github.com/Nizerlak/mars-lander-exercise/physics"

// Gene step ranges, derived from the physics rate limits: a
// chromosome's delta genes can move the commanded angle/power by at most
// one tick's worth of control-rate change.
var (
	AngleDeltaMin = -int(physics.AngleStep)
	AngleDeltaMax = int(physics.AngleStep)
	ThrustDeltaMin = -physics.PowerStep
	ThrustDeltaMax = physics.PowerStep

	AngleAbsMin = -int(physics.AngleLimit)
	AngleAbsMax = int(physics.AngleLimit)
	ThrustAbsMin = 0
	ThrustAbsMax = physics.PowerMax
)

// Chromosome is a fixed-length sequence of (angle-delta, thrust-delta)
// gene pairs. The same type is reused for the accumulated (absolute)
// representation, where Angles/Thrusts hold absolute command values
// instead of deltas.
type Chromosome struct {
	Angles  []int
	Thrusts []int
}

// Len returns the chromosome's gene count.
func (c Chromosome) Len() int {
	return len(c.Angles)
}

// Clone returns a deep copy.
func (c Chromosome) Clone() Chromosome {
	angles := make([]int, len(c.Angles))
	copy(angles, c.Angles)
	thrusts := make([]int, len(c.Thrusts))
	copy(thrusts, c.Thrusts)
	return Chromosome{Angles: angles, Thrusts: thrusts}
}

// Accumulate derives the absolute command stream from a delta-encoded
// chromosome and an initial (angle, power), clamping the running sum at
// each step so saturation is sticky.
func (c Chromosome) Accumulate(initialAngle, initialThrust int) Chromosome {
	return Chromosome{
		Angles:  clampedRunningSum(initialAngle, c.Angles, AngleAbsMin, AngleAbsMax),
		Thrusts: clampedRunningSum(initialThrust, c.Thrusts, ThrustAbsMin, ThrustAbsMax),
	}
}

// clampedRunningSum computes a running sum of deltas starting at initial,
// clamping to [lo, hi] after every step so saturation is sticky rather
// than only applied to the final total.
func clampedRunningSum(initial int, deltas []int, lo, hi int) []int {
	sum := make([]int, len(deltas))
	running := initial
	for i, d := range deltas {
		running = clampInt(running+d, lo, hi)
		sum[i] = running
	}
	return sum
}

// ThrustAt converts the accumulated command at index i (clamped to the
// chromosome's end when i is out of range) into a physics.Thrust.
func (c Chromosome) ThrustAt(i int) physics.Thrust {
	if i >= c.Len() {
		i = c.Len() - 1
	}
	return physics.Thrust{Angle: float64(c.Angles[i]), Power: c.Thrusts[i]}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
