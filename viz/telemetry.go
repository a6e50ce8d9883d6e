// Package viz serves a realtime view of a running evolutionary search over
// HTTP and websocket.
package viz

import (
	"github.com/Nizerlak/mars-lander-exercise/applander"
	"github.com/Nizerlak/mars-lander-exercise/physics"
	"github.com/Nizerlak/mars-lander-exercise/solver"
)

// LanderSnapshot is one lander's publishable state: enough to draw its
// flight path and current command without exposing internal types.
type LanderSnapshot struct {
	Flying     bool              `json:"flying"`
	LandingKind string           `json:"landing_kind,omitempty"`
	Path       []physics.LanderState `json:"path"`
	Command    solver.Chromosome `json:"command"`
}

// GenerationSnapshot is the full observable surface for one generation:
// per-lander history/flight-state/command-stream, plus the best fitness
// seen so far.
type GenerationSnapshot struct {
	Generation  int              `json:"generation"`
	BestFitness float64          `json:"best_fitness"`
	Landers     []LanderSnapshot `json:"landers"`
}

// Snapshot captures an App's current observable state for publication. It
// takes a read-only pass over App's accessor methods; the caller is
// responsible for serializing this against concurrent App mutation.
func Snapshot(app *applander.App) GenerationSnapshot {
	flights := app.GetCurrentStates()
	histories := app.Histories()
	accumulated := app.AccumulatedPopulation()

	landers := make([]LanderSnapshot, len(flights))
	for i, f := range flights {
		snap := LanderSnapshot{Flying: f.Flying}
		if !f.Flying {
			snap.LandingKind = f.Landing.Kind.String()
		}
		if i < len(histories) {
			snap.Path = histories[i].States()
		}
		if i < len(accumulated) {
			snap.Command = accumulated[i]
		}
		landers[i] = snap
	}

	return GenerationSnapshot{
		Generation:  app.Generation(),
		BestFitness: app.BestFitness().Read(),
		Landers:     landers,
	}
}
