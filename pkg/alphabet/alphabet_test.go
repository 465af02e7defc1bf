package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	for i := 0; i < len(AminoAcids); i++ {
		assert.Equal(t, i, Index(AminoAcids[i]))
		assert.Equal(t, AminoAcids[i], Symbol(i))
	}
	assert.Equal(t, Size, len(AminoAcids))
	assert.Equal(t, 20, Index(Gap))

	for _, c := range []byte("BZXU*.a?") {
		assert.Equal(t, -1, Index(c), "symbol %c", c)
		assert.False(t, InAlphabet(c))
	}
}

func TestIsIUPAC(t *testing.T) {
	assert.Len(t, IUPAC, 26)
	for i := 0; i < len(IUPAC); i++ {
		assert.True(t, IsIUPAC(IUPAC[i]))
	}
	for _, c := range []byte("JOa.?x \r") {
		assert.False(t, IsIUPAC(c), "symbol %q", c)
	}
}
