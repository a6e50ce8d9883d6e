package solver

import (
	"errors"
	"fmt"
	"math/rand"
)

// Settings bounds the genetic search, loaded from
// scenario configuration and validated once at construction.
type Settings struct {
	PopulationSize int
	ChromosomeSize int
	Elitism        float64
	MutationProb   float64
}

// ErrInvalidSettings wraps a specific field's out-of-range value.
var ErrInvalidSettings = errors.New("solver: invalid settings")

// Validate checks Settings' field ranges, returning a wrapped
// ErrInvalidSettings naming the offending field.
func (s Settings) Validate() error {
	switch {
	case s.PopulationSize <= 0:
		return fmt.Errorf("%w: population_size must be positive, got %d", ErrInvalidSettings, s.PopulationSize)
	case s.ChromosomeSize <= 0:
		return fmt.Errorf("%w: chromosome_size must be positive, got %d", ErrInvalidSettings, s.ChromosomeSize)
	case s.Elitism < 0 || s.Elitism > 1:
		return fmt.Errorf("%w: elitism must be in [0,1], got %v", ErrInvalidSettings, s.Elitism)
	case s.MutationProb < 0 || s.MutationProb > 1:
		return fmt.Errorf("%w: mutation_prob must be in [0,1], got %v", ErrInvalidSettings, s.MutationProb)
	}
	return nil
}

// Solver owns the RNG and Settings driving a Population through
// successive generations. The RNG is an explicit, seedable handle: every random draw in this package
// flows through the *rand.Rand passed in at construction.
type Solver struct {
	settings Settings
	rng      *rand.Rand
	pop      *Population
}

// New validates settings and builds a fresh, randomly-initialized
// population around the scenario's initial (angle, power).
func New(settings Settings, rng *rand.Rand, initialAngle, initialThrust int) (*Solver, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	pop, err := NewPopulation(rng, settings.PopulationSize, settings.ChromosomeSize, initialAngle, initialThrust)
	if err != nil {
		return nil, err
	}
	return &Solver{settings: settings, rng: rng, pop: pop}, nil
}

// Population exposes the current generation's command source, used to
// drive a lander.Runner and to read the "current command stream"
// observable.
func (s *Solver) Population() *Population {
	return s.pop
}

// Settings returns the validated settings this Solver was built with.
func (s *Solver) Settings() Settings {
	return s.settings
}

// NewGeneration advances to the next generation given each member's
// fitness, in population order.
func (s *Solver) NewGeneration(fitness []float64) error {
	return s.pop.NewGeneration(s.rng, fitness, s.settings.Elitism, s.settings.MutationProb)
}
