// Package fasta reads multiple sequence alignments in fasta (or a3m) format
package fasta

import (
	"fmt"
	"strings"

	"github.com/virus-evolution/goconserve/pkg/encoding"
)

// A struct for one Fasta record
type Record struct {
	ID          string
	Description string
	Seq         string
	Idx         int
}

// Format says how sequence lines are to be interpreted
type Format int

const (
	// FASTA alignments have one aligned symbol per character
	FASTA Format = iota
	// A3M alignments additionally carry insert states as lower-case
	// letters and '.', which are not part of the alignment columns
	A3M
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case A3M:
		return "a3m"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the Format for a name such as "fasta" or "a3m"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fasta", "fa", "aln":
		return FASTA, nil
	case "a3m":
		return A3M, nil
	}
	return FASTA, fmt.Errorf("unknown alignment format %q", s)
}

// Normalised returns the record's sequence mapped onto the canonical
// protein alphabet
func (FR Record) Normalised() []byte {
	return encoding.NormaliseString(FR.Seq)
}
