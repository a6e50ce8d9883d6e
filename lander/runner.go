package lander

import (
	"errors"
	"fmt"

	"github.com/Nizerlak/mars-lander-exercise/collision"
	"github.com/Nizerlak/mars-lander-exercise/geometry"
	"github.com/Nizerlak/mars-lander-exercise/physics"
)

// CommandSource answers the absolute (angle, power) command for a given
// lander at a given tick. Population is the current design's source, but
// any provider satisfying this capability can drive the runner. Implementations are responsible for
// clamp-to-end behavior when tick exceeds the chromosome's length.
type CommandSource interface {
	Command(landerID, tick int) physics.Thrust
}

// MutableCommandSource additionally allows the runner to rewrite a single
// gene in place, used for the angle-correction rescue in Iterate. Kept as
// an explicit, separate capability rather than hidden interior
// mutability on CommandSource.
type MutableCommandSource interface {
	CommandSource
	// CorrectAngle overwrites the angle of landerID's gene at tick with 0.
	CorrectAngle(landerID, tick int)
}

// Status is the result of advancing the runner by one tick.
type Status int

const (
	InProgress Status = iota
	Finished
)

// ErrChromosomeLengthMismatch is an invariant violation: the
// command source's chromosome count must match the lander count.
var ErrChromosomeLengthMismatch = errors.New("lander: chromosome length does not match lander count")

// Runner owns N per-lander simulation states and advances all N in
// lockstep under a CommandSource, consulting Physics and a collision
// Checker each tick.
type Runner struct {
	checker      *collision.Checker
	initial      physics.LanderState
	states       []physics.LanderState
	flightStates []FlightState
	histories    []*FlightHistory
	tick         int
}

// New builds a Runner for n landers sharing the same initial state and
// collision checker.
func New(initial physics.LanderState, n int, checker *collision.Checker) *Runner {
	r := &Runner{checker: checker}
	r.Reinitialize(initial, n)
	return r
}

// Reinitialize resets all landers to initial and zeroes the tick counter,
// resizing to n landers.
func (r *Runner) Reinitialize(initial physics.LanderState, n int) {
	r.initial = initial
	r.tick = 0
	r.states = make([]physics.LanderState, n)
	r.flightStates = make([]FlightState, n)
	r.histories = make([]*FlightHistory, n)
	for i := range r.states {
		r.states[i] = initial
		r.flightStates[i] = Flying()
		r.histories[i] = NewFlightHistory(initial)
	}
}

// sizedCommandSource is an optional capability: a command source that knows
// its own lander count can be checked against the runner's up front, giving
// a named invariant error instead of an out-of-range panic deep in
// Command/CorrectAngle. solver.Population satisfies this structurally.
type sizedCommandSource interface {
	Size() int
}

// Iterate advances every still-flying lander by one tick under cmds.
// Ordering across landers is unspecified and must not affect results:
// each lander's update reads only its own state and the shared,
// already-resolved cmds/checker.
func (r *Runner) Iterate(cmds MutableCommandSource) (Status, error) {
	if len(r.states) == 0 {
		return Finished, nil
	}
	if sized, ok := cmds.(sizedCommandSource); ok && sized.Size() != len(r.states) {
		return Finished, fmt.Errorf("%w: %d landers, %d chromosomes", ErrChromosomeLengthMismatch, len(r.states), sized.Size())
	}

	anyFlying := false
	for i := range r.states {
		if !r.flightStates[i].Flying {
			continue
		}
		anyFlying = true

		if err := r.stepOne(i, cmds); err != nil {
			return Finished, err
		}
	}

	r.tick++
	if anyFlying {
		return InProgress, nil
	}
	return Finished, nil
}

func (r *Runner) stepOne(i int, cmds MutableCommandSource) error {
	previous := r.states[i]

	next, point, landing, hit, err := r.stepAt(i, previous, cmds)
	if err != nil {
		return err
	}

	// Angle-correction rescue: a near-miss NotVertical within a single
	// AngleStep of vertical can always be driven to 0 in one tick, so
	// force the gene to 0 and recompute rather than accept a near-miss.
	// The mutation persists into the population.
	if hit && landing.Kind == collision.NotVertical && landing.ErrorAbs <= physics.AngleStep {
		cmds.CorrectAngle(i, r.tick)
		next, point, landing, hit, err = r.stepAt(i, previous, cmds)
		if err != nil {
			return err
		}
	}

	if hit {
		next.X, next.Y = point.X, point.Y
		r.flightStates[i] = Landed(landing)
	}

	r.states[i] = next
	r.histories[i].Append(next)
	return nil
}

func (r *Runner) stepAt(
	i int,
	previous physics.LanderState,
	cmds MutableCommandSource,
) (next physics.LanderState, point geometry.Vec2, landing collision.Landing, hit bool, err error) {
	commanded := cmds.Command(i, r.tick)
	next, err = physics.Iterate(previous, commanded)
	if err != nil {
		return
	}
	point, landing, hit = r.checker.Check(previous, next)
	return
}

// Initial returns the initial lander state this Runner was (re)initialized
// with.
func (r *Runner) Initial() physics.LanderState {
	return r.initial
}

// CurrentFlightStates returns a read-only view of every lander's terminal
// state.
func (r *Runner) CurrentFlightStates() []FlightState {
	return r.flightStates
}

// CurrentLanderStates returns a read-only view of every lander's current
// kinematic state.
func (r *Runner) CurrentLanderStates() []physics.LanderState {
	return r.states
}

// Histories returns the per-lander flight history since the last
// Reinitialize.
func (r *Runner) Histories() []*FlightHistory {
	return r.histories
}
