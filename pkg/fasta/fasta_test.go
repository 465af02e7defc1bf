package fasta

import (
	"testing"
)

func TestNormalised(t *testing.T) {
	FR := Record{ID: "s1", Seq: "arNDbzx.J*U"}
	if got := string(FR.Normalised()); got != "ARNDDQ---*U" {
		t.Errorf("problem in TestNormalised(): %s", got)
	}
	if FR.Seq != "arNDbzx.J*U" {
		t.Errorf("Normalised() modified the record")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"", FASTA, false},
		{"fasta", FASTA, false},
		{"FASTA", FASTA, false},
		{" aln ", FASTA, false},
		{"a3m", A3M, false},
		{"stockholm", FASTA, true},
	}
	for _, test := range tests {
		got, err := ParseFormat(test.in)
		if (err != nil) != test.err {
			t.Errorf("ParseFormat(%q) error = %v", test.in, err)
		}
		if got != test.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", test.in, got, test.want)
		}
	}
	if A3M.String() != "a3m" || FASTA.String() != "fasta" {
		t.Errorf("problem with Format.String()")
	}
}
