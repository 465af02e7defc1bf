package conservation

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/virus-evolution/goconserve/pkg/alphabet"
)

// Pseudocount is added to the weighted count of every symbol before the
// counts are turned into frequencies
const Pseudocount = 1e-7

// GapFraction returns the fraction of gap symbols in col. An empty column is
// all gap.
func GapFraction(col []byte) float64 {
	if len(col) == 0 {
		return 1
	}
	gaps := 0
	for _, c := range col {
		if c == alphabet.Gap {
			gaps++
		}
	}
	return float64(gaps) / float64(len(col))
}

// WeightedGapPenalty returns the multiplier 1 - (weight of gapped sequences /
// total weight) for col. Sequences are weighted uniformly if weights does not
// pair up with col. A column whose total weight is zero gets a multiplier of 0.
func WeightedGapPenalty(col []byte, weights []float64) float64 {
	weights = columnWeights(col, weights)
	total := floats.Sum(weights)
	if total == 0 {
		return 0
	}
	gapSum := 0.0
	for i, c := range col {
		if c == alphabet.Gap {
			gapSum += weights[i]
		}
	}
	return 1 - gapSum/total
}

// WeightedFrequencies returns the weighted frequency of every alphabet symbol
// in col, after adding pc to each symbol's count. Symbols outside the
// alphabet count towards the total weight but towards no symbol.
func WeightedFrequencies(col []byte, weights []float64, pc float64) [alphabet.Size]float64 {
	weights = columnWeights(col, weights)

	var freqs [alphabet.Size]float64
	for k := range freqs {
		freqs[k] = pc
	}
	for i, c := range col {
		if k := alphabet.Index(c); k >= 0 {
			freqs[k] += weights[i]
		}
	}

	denom := floats.Sum(weights) + alphabet.Size*pc
	for k := range freqs {
		freqs[k] /= denom
	}
	return freqs
}

// ShannonInformation returns 1 - h, where h is the Shannon entropy of the
// weighted symbol distribution of col divided by ln(min(alphabet size,
// column size)). If gapPenalty is set the score is multiplied by
// WeightedGapPenalty. Columns of fewer than two sequences, and columns whose
// total weight is zero, score 0.
func ShannonInformation(col []byte, weights []float64, gapPenalty bool) float64 {
	weights = columnWeights(col, weights)

	n := min(alphabet.Size, len(col))
	if n < 2 || floats.Sum(weights) == 0 {
		return 0
	}

	fc := WeightedFrequencies(col, weights, Pseudocount)

	h := 0.0
	for _, p := range fc {
		if p != 0 {
			h += p * math.Log(p)
		}
	}
	h /= math.Log(float64(n))

	// h is the negated, normalised entropy here
	score := 1 + h

	if gapPenalty {
		score *= WeightedGapPenalty(col, weights)
	}
	return score
}
