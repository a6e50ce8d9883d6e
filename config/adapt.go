package config

import (
	"github.com/Nizerlak/mars-lander-exercise/physics"
	"github.com/Nizerlak/mars-lander-exercise/solver"
)

// ToLanderState converts the loaded lander config into the initial
// physics.LanderState.
func (l LanderConfig) ToLanderState() physics.LanderState {
	return physics.LanderState{
		X:     l.X,
		Y:     l.Y,
		VX:    l.HSpeed,
		VY:    l.VSpeed,
		Fuel:  l.Fuel,
		Angle: l.Angle,
		Power: l.Power,
	}
}

// ToSolverSettings converts the loaded settings document into
// solver.Settings.
func (s Settings) ToSolverSettings() solver.Settings {
	return solver.Settings{
		PopulationSize: s.PopulationSize,
		ChromosomeSize: s.ChromosomeSize,
		Elitism:        s.Elitism,
		MutationProb:   s.MutationProb,
	}
}
