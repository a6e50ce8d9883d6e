package solver

import (
	"errors"
	"math/rand"

	"github.com/Nizerlak/mars-lander-exercise/physics"
)

// ErrEmptyPopulation is a configuration error: a population must hold at
// least one chromosome.
var ErrEmptyPopulation = errors.New("solver: population must not be empty")

// ErrFitnessLengthMismatch is an invariant violation: the fitness slice
// passed to NewGeneration must have one entry per population member.
var ErrFitnessLengthMismatch = errors.New("solver: fitness length does not match population size")

// Population owns a fixed-size set of delta-encoded chromosomes and the
// absolute command stream accumulated from them, and implements
// lander.CommandSource / lander.MutableCommandSource directly over that
// accumulated cache so a Runner can drive it without any adapter type.
type Population struct {
	members       []Chromosome
	accumulated   []Chromosome
	initialAngle  int
	initialThrust int
}

// NewPopulation builds a population of n chromosomes, each chromosomeSize
// genes long, with every delta gene drawn uniformly from its step range.
func NewPopulation(rng *rand.Rand, n, chromosomeSize, initialAngle, initialThrust int) (*Population, error) {
	if n <= 0 {
		return nil, ErrEmptyPopulation
	}
	members := make([]Chromosome, n)
	for i := range members {
		members[i] = randomChromosome(rng, chromosomeSize)
	}
	p := &Population{
		members:       members,
		initialAngle:  initialAngle,
		initialThrust: initialThrust,
	}
	p.rebuildCache()
	return p, nil
}

func randomChromosome(rng *rand.Rand, size int) Chromosome {
	c := Chromosome{Angles: make([]int, size), Thrusts: make([]int, size)}
	for i := 0; i < size; i++ {
		c.Angles[i] = randIntRange(rng, AngleDeltaMin, AngleDeltaMax)
		c.Thrusts[i] = randIntRange(rng, ThrustDeltaMin, ThrustDeltaMax)
	}
	return c
}

func randIntRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func (p *Population) rebuildCache() {
	p.accumulated = make([]Chromosome, len(p.members))
	for i, m := range p.members {
		p.accumulated[i] = m.Accumulate(p.initialAngle, p.initialThrust)
	}
}

// Size returns the population's member count.
func (p *Population) Size() int {
	return len(p.members)
}

// Members returns the delta-encoded chromosomes (read-only view).
func (p *Population) Members() []Chromosome {
	return p.members
}

// Accumulated returns the absolute command streams (read-only view).
func (p *Population) Accumulated() []Chromosome {
	return p.accumulated
}

// Command implements lander.CommandSource over the accumulated cache.
func (p *Population) Command(landerID, tick int) physics.Thrust {
	return p.accumulated[landerID].ThrustAt(tick)
}

// CorrectAngle implements lander.MutableCommandSource. It zeroes the
// accumulated angle at (landerID, tick) for immediate reuse by the
// in-progress iteration, and sets the underlying delta gene to minus the
// preceding accumulated angle (the initial angle at index 0), so the next
// generation's re-accumulation reproduces the zero even where the running
// sum had saturated. The runner triggers the rescue on the lander's
// post-step angle, and the commanded angle can be further from vertical,
// so the adjusted delta gene can fall outside the [-AngleStep, AngleStep]
// span a freshly generated gene is drawn from.
func (p *Population) CorrectAngle(landerID, tick int) {
	acc := p.accumulated[landerID]
	idx := tick
	if idx >= acc.Len() {
		idx = acc.Len() - 1
	}
	prev := p.initialAngle
	if idx > 0 {
		prev = acc.Angles[idx-1]
	}
	p.members[landerID].Angles[idx] = -prev
	acc.Angles[idx] = 0
}

// NewGeneration replaces every member with the result of elitist
// selection, arithmetic crossover, and uniform mutation driven by
// fitness, then invalidates and rebuilds the accumulated cache. len(fitness) must equal p.Size().
func (p *Population) NewGeneration(rng *rand.Rand, fitness []float64, elitism, mutationProb float64) error {
	if len(fitness) != len(p.members) {
		return ErrFitnessLengthMismatch
	}

	ranked := rankByFitness(p.members, fitness)

	n := len(p.members)
	nElite := int(elitism * float64(n))
	if nElite > n {
		nElite = n
	}

	next := make([]Chromosome, 0, n)
	for i := 0; i < nElite; i++ {
		next = append(next, ranked[i].Clone())
	}

	// Odd children counts are rounded up and then trimmed: crossover
	// always produces pairs, so a population that needs an odd number of
	// children gets one extra child generated and discarded rather than
	// leaving a short chromosome slot unfilled.
	for len(next) < n {
		a, b := distinctPair(rng, len(ranked))
		childA, childB := crossover(rng, ranked[a], ranked[b])
		mutate(rng, &childA, mutationProb)
		mutate(rng, &childB, mutationProb)
		next = append(next, childA, childB)
	}
	next = next[:n]

	p.members = next
	p.rebuildCache()
	return nil
}

// rankByFitness returns members sorted by descending fitness, stable so
// ties preserve their original relative order.
func rankByFitness(members []Chromosome, fitness []float64) []Chromosome {
	idx := make([]int, len(members))
	for i := range idx {
		idx[i] = i
	}
	stableSortDesc(idx, func(a, b int) bool { return fitness[a] > fitness[b] })

	ranked := make([]Chromosome, len(members))
	for i, j := range idx {
		ranked[i] = members[j]
	}
	return ranked
}

// stableSortDesc is a small insertion sort: population sizes in this
// domain (hundreds) don't warrant pulling in sort.Slice's reflection
// overhead for what is otherwise a handful of comparisons per element.
func stableSortDesc(idx []int, less func(a, b int) bool) {
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && less(idx[j], idx[j-1]); j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
}

// distinctPair draws two distinct indices uniformly at random from
// [0, n), resampling b on collision with a. Mating picks parents
// uniformly from all original chromosomes rather than biasing toward
// fitter ones beyond what elitism already does. A population of one
// chromosome has no second parent to draw, so both indices collapse to 0.
func distinctPair(rng *rand.Rand, n int) (a, b int) {
	if n < 2 {
		return 0, 0
	}
	a = rng.Intn(n)
	b = rng.Intn(n)
	for b == a {
		b = rng.Intn(n)
	}
	return a, b
}

// crossover performs arithmetic blending at a single random coefficient
// shared across every gene pair: child = round(i*a + (1-i)*b).
func crossover(rng *rand.Rand, a, b Chromosome) (Chromosome, Chromosome) {
	i := rng.Float64()
	childA := blend(a, b, i)
	childB := blend(a, b, 1-i)
	return childA, childB
}

func blend(a, b Chromosome, i float64) Chromosome {
	n := a.Len()
	c := Chromosome{Angles: make([]int, n), Thrusts: make([]int, n)}
	for k := 0; k < n; k++ {
		c.Angles[k] = clampInt(round(i*float64(a.Angles[k])+(1-i)*float64(b.Angles[k])), AngleDeltaMin, AngleDeltaMax)
		c.Thrusts[k] = clampInt(round(i*float64(a.Thrusts[k])+(1-i)*float64(b.Thrusts[k])), ThrustDeltaMin, ThrustDeltaMax)
	}
	return c
}

func round(f float64) int {
	if f >= 0 {
		return int(f + 0.5)
	}
	return int(f - 0.5)
}

// mutate replaces each gene pair with a freshly drawn random pair with
// independent probability mutationProb.
func mutate(rng *rand.Rand, c *Chromosome, mutationProb float64) {
	for i := range c.Angles {
		if rng.Float64() < mutationProb {
			c.Angles[i] = randIntRange(rng, AngleDeltaMin, AngleDeltaMax)
			c.Thrusts[i] = randIntRange(rng, ThrustDeltaMin, ThrustDeltaMax)
		}
	}
}
