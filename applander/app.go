// Package applander provides the single-threaded façade gluing Physics,
// CollisionChecker, LanderRunner, Solver, and FitnessCalculator into the
// construct → (run → next_population)* loop a driver follows.
package applander

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Nizerlak/mars-lander-exercise/collision"
	"github.com/Nizerlak/mars-lander-exercise/fitness"
	"github.com/Nizerlak/mars-lander-exercise/lander"
	"github.com/Nizerlak/mars-lander-exercise/metrics"
	"github.com/Nizerlak/mars-lander-exercise/physics"
	"github.com/Nizerlak/mars-lander-exercise/solver"
	"github.com/Nizerlak/mars-lander-exercise/terrain"
)

// ErrConfiguration covers settings out of range or terrain without a flat
// landing segment. A scenario missing required fields is reported earlier,
// by the config loader's ErrMissingField.
var ErrConfiguration = errors.New("applander: configuration error")

// ErrInvariant covers internal consistency failures that indicate a bug
// rather than a user error: chromosome/lander count mismatches,
// or landers observed still Flying at NextPopulation.
var ErrInvariant = errors.New("applander: invariant violation")

// App owns every piece of core state exclusively: one thread drives it.
// An HTTP collaborator (out of scope here) is expected to serialize
// access with its own mutex around an App instance.
type App struct {
	checker    *collision.Checker
	runner     *lander.Runner
	solver     *solver.Solver
	calculator fitness.Calculator
	initial    physics.LanderState
	generation int

	// bestFitness is updated at every NextPopulation and is safe to poll
	// from a visualization goroutine without taking whatever mutex an
	// HTTP collaborator wraps around the rest of App's state.
	bestFitness *metrics.Gauge
}

// TryNew validates settings and terrain, builds a freshly seeded
// population sized to settings.PopulationSize, and returns a ready App.
// rng is the caller-owned seedable RNG handle driving every random draw
// inside the Solver.
func TryNew(initial physics.LanderState, t terrain.Terrain, settings solver.Settings, rng *rand.Rand) (*App, error) {
	checker, err := collision.New(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfiguration, err)
	}

	sv, err := solver.New(settings, rng, int(initial.Angle), initial.Power)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfiguration, err)
	}

	runner := lander.New(initial, settings.PopulationSize, checker)

	return &App{
		checker:     checker,
		runner:      runner,
		solver:      sv,
		calculator:  fitness.NewCalculator(),
		initial:     initial,
		bestFitness: metrics.NewGauge(0),
	}, nil
}

// Run steps the current population's runner to completion.
func (a *App) Run() error {
	for {
		status, err := a.runner.Iterate(a.solver.Population())
		if err != nil {
			if errors.Is(err, lander.ErrChromosomeLengthMismatch) {
				return fmt.Errorf("%w: %w", ErrInvariant, err)
			}
			return fmt.Errorf("applander: %w", err)
		}
		if status == lander.Finished {
			return nil
		}
	}
}

// NextPopulation computes fitness from the current terminal states and
// advances the genetic search by one generation. Run must have
// completed first; calling this while any lander is still Flying is an
// invariant violation rather than a recoverable error, since it indicates
// a physics/collision bug, not a user mistake.
func (a *App) NextPopulation() error {
	flights := a.runner.CurrentFlightStates()
	landings := make([]collision.Landing, len(flights))
	for i, f := range flights {
		if f.Flying {
			return fmt.Errorf("%w: lander %d still flying at next_population", ErrInvariant, i)
		}
		landings[i] = f.Landing
	}

	fit := a.calculator.Score(landings)
	for _, f := range fit {
		a.bestFitness.RaiseTo(f)
	}

	if err := a.solver.NewGeneration(fit); err != nil {
		return fmt.Errorf("%w: %s", ErrInvariant, err)
	}

	a.runner.Reinitialize(a.initial, a.solver.Population().Size())
	a.generation++
	return nil
}

// Reset reinitializes the runner against the same population and initial
// state without evolving a new generation or re-parsing scenario JSON, for
// a driver that wants to replay the current generation, e.g. after an
// aborted Run.
func (a *App) Reset() {
	a.runner.Reinitialize(a.initial, a.solver.Population().Size())
	a.generation = 0
}

// GetCurrentStates returns the per-lander terminal/in-progress flight
// state view.
func (a *App) GetCurrentStates() []lander.FlightState {
	return a.runner.CurrentFlightStates()
}

// CurrentLanderStates returns the per-lander kinematic state view.
func (a *App) CurrentLanderStates() []physics.LanderState {
	return a.runner.CurrentLanderStates()
}

// Histories returns the per-lander position history since the start of
// the current generation.
func (a *App) Histories() []*lander.FlightHistory {
	return a.runner.Histories()
}

// AccumulatedPopulation returns the current absolute command stream per
// lander.
func (a *App) AccumulatedPopulation() []solver.Chromosome {
	return a.solver.Population().Accumulated()
}

// Generation returns the 0-indexed generation counter.
func (a *App) Generation() int {
	return a.generation
}

// BestFitness returns a lock-free handle to the best fitness value seen
// across every NextPopulation call so far. Safe to poll concurrently with
// Run/NextPopulation from a visualization goroutine.
func (a *App) BestFitness() *metrics.Gauge {
	return a.bestFitness
}

// HasLandedCorrect reports whether any lander in the current terminal
// states landed Correct, the condition a driver checks after Run to
// decide whether to stop early rather than call NextPopulation.
func (a *App) HasLandedCorrect() bool {
	for _, f := range a.runner.CurrentFlightStates() {
		if !f.Flying && f.Landing.Kind == collision.Correct {
			return true
		}
	}
	return false
}
