// Package alphabet provides the amino acid alphabet used to index
// frequency vectors, and the extended IUPAC set used when normalising
// input sequences
package alphabet

// Gap is the gap symbol
const Gap byte = '-'

// Size is the number of symbols in the scoring alphabet: the 20 canonical
// amino acids plus the gap
const Size = 21

// AminoAcids is the scoring alphabet, in the order used by frequency vectors
const AminoAcids = "ARNDCQEGHILKMFPSTWYV-"

// IUPAC is the extended protein alphabet (ambiguity codes, stop and gap)
// that survives input normalisation
const IUPAC = "ABCDEFGHIKLMNPQRSTUVWYZX*-"

var (
	index = MakeIndexArray()
	iupac = MakeIUPACArray()
)

// MakeIndexArray returns an array mapping a byte to its position in AminoAcids,
// or -1 if the byte is not part of the scoring alphabet
func MakeIndexArray() [256]int8 {
	var IA [256]int8
	for i := range IA {
		IA[i] = -1
	}
	for i := 0; i < len(AminoAcids); i++ {
		IA[AminoAcids[i]] = int8(i)
	}
	return IA
}

// MakeIUPACArray returns an array which is true for every byte in IUPAC
func MakeIUPACArray() [256]bool {
	var IA [256]bool
	for i := 0; i < len(IUPAC); i++ {
		IA[IUPAC[i]] = true
	}
	return IA
}

// Index returns the position of c in AminoAcids, or -1
func Index(c byte) int {
	return int(index[c])
}

// InAlphabet reports whether c is one of the 21 scoring symbols
func InAlphabet(c byte) bool {
	return index[c] >= 0
}

// IsIUPAC reports whether c is an upper-case symbol of the extended alphabet
func IsIUPAC(c byte) bool {
	return iupac[c]
}

// Symbol returns the symbol at position i of AminoAcids
func Symbol(i int) byte {
	return AminoAcids[i]
}
