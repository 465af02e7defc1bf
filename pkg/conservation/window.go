package conservation

import "golang.org/x/exp/slices"

// WindowScore smooths scores so that each position becomes a blend of its own
// score and the mean of its neighbours up to window positions either side:
//
//	(1-lambda)*mean(neighbours) + lambda*score
//
// Negative scores are neither changed nor used as neighbours. The first and
// last window positions are copied through unchanged, as is any position
// without a usable neighbour. A window of 0 returns an unchanged copy.
func WindowScore(scores []float64, window int, lambda float64) []float64 {
	smoothed := slices.Clone(scores)
	if window <= 0 {
		return smoothed
	}

	for i := window; i < len(scores)-window; i++ {
		if scores[i] < 0 {
			continue
		}
		sum := 0.0
		terms := 0
		for j := i - window; j <= i+window; j++ {
			if j != i && scores[j] >= 0 {
				terms++
				sum += scores[j]
			}
		}
		if terms > 0 {
			smoothed[i] = (1-lambda)*(sum/float64(terms)) + lambda*scores[i]
		}
	}

	return smoothed
}
