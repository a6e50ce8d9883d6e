package solver

import "testing"

func TestBlendAtHalfCoefficientAverages(t *testing.T) {
	// Arithmetic crossover at i=0.5 of [1,2,3,4] and [5,6,7,8] yields
	// [3,4,5,6] for both children. These angle values all fall within the
	// delta step range, so no clamping is exercised here.
	a := Chromosome{Angles: []int{1, 2, 3, 4}, Thrusts: []int{0, 0, 0, 0}}
	b := Chromosome{Angles: []int{5, 6, 7, 8}, Thrusts: []int{0, 0, 0, 0}}

	child1 := blend(a, b, 0.5)
	child2 := blend(b, a, 0.5)

	want := []int{3, 4, 5, 6}
	for i, w := range want {
		if child1.Angles[i] != w || child2.Angles[i] != w {
			t.Fatalf("index %d: got child1=%d child2=%d, want %d", i, child1.Angles[i], child2.Angles[i], w)
		}
	}
}
