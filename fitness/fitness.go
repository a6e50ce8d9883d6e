// Package fitness scores terminal lander outcomes for the genetic search,
// combining a per-outcome-kind base score with a population-relative
// normalization of each kind's distance/angle error.
package fitness

import "github.com/Nizerlak/mars-lander-exercise/collision"

// baseScore is the per-Kind weight a landing's normalized error is scaled
// by; Correct always yields 1.0 regardless of error.
var baseScore = map[collision.Kind]float64{
	collision.Correct:           1.0,
	collision.NotVertical:       0.9,
	collision.TooFastVertical:   0.7,
	collision.TooFastHorizontal: 0.5,
	collision.WrongTerrain:      0.3,
}

// errorValue extracts the error magnitude a Landing is scored on:
// WrongTerrain scores on Dist, the along-polygon distance of its collision
// point; the other non-Correct kinds score on ErrorAbs.
func errorValue(l collision.Landing) float64 {
	if l.Kind == collision.WrongTerrain {
		return l.Dist
	}
	return l.ErrorAbs
}

// Calculator normalizes each outcome Kind's error independently across a
// whole population before combining it with that Kind's base score, so a
// large-Dist WrongTerrain landing isn't penalized on the same scale as a
// small-ErrorAbs NotVertical one.
type Calculator struct{}

// NewCalculator returns a ready-to-use Calculator; it carries no state of
// its own beyond the fixed base-score table.
func NewCalculator() Calculator {
	return Calculator{}
}

// Score computes one fitness value per landing, in the same order as
// landings. Landers still Flying are not landings and must
// be excluded by the caller before calling Score.
func (Calculator) Score(landings []collision.Landing) []float64 {
	minByKind := map[collision.Kind]float64{}
	maxByKind := map[collision.Kind]float64{}
	seen := map[collision.Kind]bool{}

	for _, l := range landings {
		e := errorValue(l)
		if !seen[l.Kind] {
			minByKind[l.Kind], maxByKind[l.Kind] = e, e
			seen[l.Kind] = true
			continue
		}
		if e < minByKind[l.Kind] {
			minByKind[l.Kind] = e
		}
		if e > maxByKind[l.Kind] {
			maxByKind[l.Kind] = e
		}
	}

	scores := make([]float64, len(landings))
	for i, l := range landings {
		if l.Kind == collision.Correct {
			scores[i] = 1.0
			continue
		}
		lo, hi := minByKind[l.Kind], maxByKind[l.Kind]
		normalized := 0.0
		if hi > lo {
			normalized = (errorValue(l) - lo) / (hi - lo)
		}
		scores[i] = (1 - normalized) * baseScore[l.Kind]
	}
	return scores
}
