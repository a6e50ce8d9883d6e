package lander

import (
	"errors"
	"testing"

	"github.com/Nizerlak/mars-lander-exercise/collision"
	"github.com/Nizerlak/mars-lander-exercise/physics"
	"github.com/Nizerlak/mars-lander-exercise/terrain"
)

func flatMapChecker(t *testing.T) *collision.Checker {
	t.Helper()
	tr, err := terrain.WithDefaultLimits([]float64{0, 1000}, []float64{0, 0})
	if err != nil {
		t.Fatalf("bad terrain: %v", err)
	}
	c, err := collision.New(tr)
	if err != nil {
		t.Fatalf("bad checker: %v", err)
	}
	return c
}

func TestRunnerRunsToCompletion(t *testing.T) {
	checker := flatMapChecker(t)
	initial := physics.LanderState{X: 500, Y: 1000, Fuel: 1000}
	runner := New(initial, 1, checker)

	provider := ConstantCommandProvider{Thrust: physics.Thrust{Angle: 0, Power: 0}}

	status := InProgress
	var err error
	for i := 0; i < 1000 && status == InProgress; i++ {
		status, err = runner.Iterate(provider)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if status != Finished {
		t.Fatal("expected runner to finish")
	}

	flights := runner.CurrentFlightStates()
	if len(flights) != 1 {
		t.Fatalf("expected 1 lander, got %d", len(flights))
	}
	if flights[0].Flying {
		t.Fatal("expected lander to have landed")
	}
}

func TestRunnerAngleCorrectionRescue(t *testing.T) {
	checker := flatMapChecker(t)
	// Positioned to hit the pad almost exactly vertical, with a slight
	// residual angle that the rescue should zero out.
	initial := physics.LanderState{X: 500, Y: 2, VY: -2, Fuel: 1000, Angle: 10}
	runner := New(initial, 1, checker)

	provider := &correctingProvider{thrust: physics.Thrust{Angle: 10, Power: 0}}
	status, err := runner.Iterate(provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != InProgress {
		t.Fatal("expected InProgress for the tick in which the lander was still flying")
	}
	flight := runner.CurrentFlightStates()[0]
	if flight.Flying {
		t.Fatal("expected landed")
	}
	if flight.Landing.Kind != collision.Correct {
		t.Fatalf("expected angle correction to rescue a Correct landing, got %v (angle err %v)",
			flight.Landing.Kind, flight.Landing.ErrorAbs)
	}
	if !provider.corrected {
		t.Fatal("expected CorrectAngle to have been invoked")
	}
}

// correctingProvider is a MutableCommandSource test double that tracks
// whether its gene was corrected and applies the correction by zeroing
// angle on the next Command call.
type correctingProvider struct {
	thrust    physics.Thrust
	corrected bool
}

func (p *correctingProvider) Command(_, _ int) physics.Thrust {
	return p.thrust
}

func (p *correctingProvider) CorrectAngle(_, _ int) {
	p.corrected = true
	p.thrust.Angle = 0
}

func TestRunnerReinitializeResetsHistories(t *testing.T) {
	checker := flatMapChecker(t)
	initial := physics.LanderState{X: 500, Y: 1000, Fuel: 1000}
	runner := New(initial, 2, checker)
	provider := ConstantCommandProvider{Thrust: physics.Thrust{Angle: 0, Power: 0}}

	_, _ = runner.Iterate(provider)
	for _, h := range runner.Histories() {
		if len(h.States()) != 2 {
			t.Fatalf("expected 2 states after one tick, got %d", len(h.States()))
		}
	}

	runner.Reinitialize(initial, 2)
	for _, h := range runner.Histories() {
		if len(h.States()) != 1 {
			t.Fatalf("expected history reset to 1 state, got %d", len(h.States()))
		}
	}
}

// sizedProvider is a MutableCommandSource test double that also reports a
// lander count, exercising Iterate's optional sizedCommandSource check.
type sizedProvider struct {
	ConstantCommandProvider
	size int
}

func (p sizedProvider) Size() int { return p.size }

func TestRunnerIterateRejectsChromosomeCountMismatch(t *testing.T) {
	checker := flatMapChecker(t)
	initial := physics.LanderState{X: 500, Y: 1000, Fuel: 1000}
	runner := New(initial, 3, checker)

	provider := sizedProvider{
		ConstantCommandProvider: ConstantCommandProvider{Thrust: physics.Thrust{Angle: 0, Power: 0}},
		size:                    2,
	}

	_, err := runner.Iterate(provider)
	if !errors.Is(err, ErrChromosomeLengthMismatch) {
		t.Fatalf("expected ErrChromosomeLengthMismatch, got %v", err)
	}
}
