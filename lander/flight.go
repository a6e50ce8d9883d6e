// Package lander drives N lander simulations in lockstep under a chromosome
// population, consulting physics for integration and collision for terminal
// classification.
package lander

import (
	"fmt"

	"github.com/Nizerlak/mars-lander-exercise/collision"
	"github.com/Nizerlak/mars-lander-exercise/physics"
)

// FlightState is Flying until a lander reaches its one terminal Landing.
type FlightState struct {
	Flying  bool
	Landing collision.Landing // valid iff !Flying
}

// Flying returns the in-progress flight state.
func Flying() FlightState {
	return FlightState{Flying: true}
}

// Landed returns the terminal flight state for the given outcome.
func Landed(l collision.Landing) FlightState {
	return FlightState{Flying: false, Landing: l}
}

// FlightHistory is the append-only sequence of positions a lander has
// occupied since the start of the current generation.
type FlightHistory struct {
	states []physics.LanderState
}

// NewFlightHistory starts a history at the given initial state.
func NewFlightHistory(initial physics.LanderState) *FlightHistory {
	return &FlightHistory{states: []physics.LanderState{initial}}
}

// Append records a new state.
func (h *FlightHistory) Append(s physics.LanderState) {
	h.states = append(h.states, s)
}

// Reset truncates the history back to a single initial state.
func (h *FlightHistory) Reset(initial physics.LanderState) {
	h.states = h.states[:0]
	h.states = append(h.states, initial)
}

// States returns the recorded history, oldest first.
func (h *FlightHistory) States() []physics.LanderState {
	return h.states
}

// String renders a compact human-readable summary, for CLI diagnostics.
func (h *FlightHistory) String() string {
	s := fmt.Sprintf("flight history (%d states):\n", len(h.states))
	for i, st := range h.states {
		s += fmt.Sprintf("  [%3d] x=%.1f y=%.1f vx=%.1f vy=%.1f angle=%.1f power=%d fuel=%d\n",
			i, st.X, st.Y, st.VX, st.VY, st.Angle, st.Power, st.Fuel)
	}
	return s
}
