// Package encoding maps raw alignment bytes onto the canonical protein
// alphabet that the conservation scorer works with
package encoding

import "github.com/virus-evolution/goconserve/pkg/alphabet"

// MakeNormalisationArray returns an array mapping every byte to its canonical
// residue. Lower-case letters are upper-cased, anything outside the extended
// IUPAC alphabet becomes a gap, and the ambiguity codes are resolved as
// B -> D, Z -> Q and X -> gap
func MakeNormalisationArray() [256]byte {
	var NA [256]byte
	for i := range NA {
		c := byte(i)
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if !alphabet.IsIUPAC(c) {
			NA[i] = alphabet.Gap
			continue
		}
		switch c {
		case 'B':
			c = 'D'
		case 'Z':
			c = 'Q'
		case 'X':
			c = alphabet.Gap
		}
		NA[i] = c
	}
	return NA
}

var normalisation = MakeNormalisationArray()

// Normalise returns a normalised copy of seq
func Normalise(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, c := range seq {
		out[i] = normalisation[c]
	}
	return out
}

// NormaliseString is as Normalise for a string
func NormaliseString(seq string) []byte {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = normalisation[seq[i]]
	}
	return out
}
