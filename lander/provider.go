package lander

import "github.com/Nizerlak/mars-lander-exercise/physics"

// ConstantCommandProvider answers the same thrust for every lander and
// tick, used for exercising Runner in isolation from a solver.
type ConstantCommandProvider struct {
	Thrust physics.Thrust
}

// Command implements CommandSource.
func (p ConstantCommandProvider) Command(_, _ int) physics.Thrust {
	return p.Thrust
}

// CorrectAngle implements MutableCommandSource as a no-op: a constant
// provider has no gene to correct.
func (p ConstantCommandProvider) CorrectAngle(_, _ int) {}
