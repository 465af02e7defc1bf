package conservation

import (
	"github.com/virus-evolution/goconserve/pkg/alphabet"
	"github.com/virus-evolution/goconserve/pkg/msa"
)

// HenikoffWeights calculates position-based sequence weights (Henikoff &
// Henikoff 1994) for the alignment. At every column each sequence carrying a
// non-gap residue of the alphabet receives 1/(n*r), where n is the number of
// sequences sharing its residue and r the number of distinct residues in the
// column. The totals are divided by the number of columns.
func HenikoffWeights(A *msa.Alignment) []float64 {
	nseq := A.NSeq()
	width := A.Width()
	weights := make([]float64, nseq)

	var counts [alphabet.Size]int
	col := make([]byte, nseq)

	for j := 0; j < width; j++ {
		col = A.Column(j, col)

		counts = [alphabet.Size]int{}
		for _, c := range col {
			if c == alphabet.Gap {
				continue
			}
			if k := alphabet.Index(c); k >= 0 {
				counts[k]++
			}
		}

		types := 0
		for _, n := range counts {
			if n > 0 {
				types++
			}
		}

		for i, c := range col {
			k := alphabet.Index(c)
			if k < 0 {
				continue
			}
			// gaps are never counted, so d is zero for them
			if d := counts[k] * types; d > 0 {
				weights[i] += 1.0 / float64(d)
			}
		}
	}

	for i := range weights {
		weights[i] /= float64(width)
	}

	return weights
}

// columnWeights returns weights if they pair up with col, and a uniform
// weight of 1.0 per sequence otherwise
func columnWeights(col []byte, weights []float64) []float64 {
	if len(weights) == len(col) {
		return weights
	}
	uniform := make([]float64, len(col))
	for i := range uniform {
		uniform[i] = 1.0
	}
	return uniform
}
