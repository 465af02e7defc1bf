/*
Package msa holds a normalised multiple sequence alignment and gives
column-wise access to it
*/
package msa

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/virus-evolution/goconserve/pkg/alphabet"
	"github.com/virus-evolution/goconserve/pkg/fasta"
)

var (
	ErrEmptyAlignment = errors.New("alignment has no sequences or no columns")
	ErrDiffLenSeqs    = errors.New("different length sequences in input file: is this an alignment?")
)

// Alignment is an immutable set of equal-length sequences over the extended
// IUPAC alphabet
type Alignment struct {
	ids   []string
	descs []string
	rows  [][]byte
	width int
}

// New normalises the records and checks that they form an alignment
func New(records []fasta.Record) (*Alignment, error) {
	if len(records) == 0 {
		return nil, ErrEmptyAlignment
	}

	A := &Alignment{
		ids:   make([]string, len(records)),
		descs: make([]string, len(records)),
		rows:  make([][]byte, len(records)),
		width: len(records[0].Seq),
	}
	if A.width == 0 {
		return nil, ErrEmptyAlignment
	}

	for i, FR := range records {
		if len(FR.Seq) != A.width {
			return nil, errors.Wrapf(ErrDiffLenSeqs, "%s has length %d, %s has length %d",
				records[0].ID, A.width, FR.ID, len(FR.Seq))
		}
		A.ids[i] = FR.ID
		A.descs[i] = FR.Description
		A.rows[i] = FR.Normalised()
	}

	return A, nil
}

// Load reads an alignment from f
func Load(f io.Reader, format fasta.Format) (*Alignment, error) {
	records, err := fasta.LoadAlignment(f, format)
	if err != nil {
		return nil, errors.Wrap(err, "reading alignment")
	}
	return New(records)
}

// NSeq returns the number of sequences
func (A *Alignment) NSeq() int { return len(A.rows) }

// Width returns the number of columns
func (A *Alignment) Width() int { return A.width }

// IDs returns the sequence identifiers, in input order
func (A *Alignment) IDs() []string {
	return slices.Clone(A.ids)
}

// Description returns the full header of sequence i
func (A *Alignment) Description(i int) string { return A.descs[i] }

// Row returns the normalised sequence i. The caller must not modify it.
func (A *Alignment) Row(i int) []byte { return A.rows[i] }

// Column fills buf with the symbols at position j, one per sequence, and
// returns it. buf is reallocated if it is too short.
func (A *Alignment) Column(j int, buf []byte) []byte {
	if cap(buf) < len(A.rows) {
		buf = make([]byte, len(A.rows))
	}
	buf = buf[:len(A.rows)]
	for i, row := range A.rows {
		buf[i] = row[j]
	}
	return buf
}

// Find returns the index of the sequence called id, or -1
func (A *Alignment) Find(id string) int {
	for i, ID := range A.ids {
		if ID == id {
			return i
		}
	}
	return -1
}

// GapCount returns the number of gap symbols in column j
func (A *Alignment) GapCount(j int) int {
	n := 0
	for _, row := range A.rows {
		if row[j] == alphabet.Gap {
			n++
		}
	}
	return n
}
