package msa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virus-evolution/goconserve/pkg/fasta"
)

func TestLoad(t *testing.T) {
	alignmentData := `>seq1 query
ACDb
>seq2
aCzX
>seq3
A-D.
`
	A, err := Load(strings.NewReader(alignmentData), fasta.FASTA)
	require.NoError(t, err)

	assert.Equal(t, 3, A.NSeq())
	assert.Equal(t, 4, A.Width())
	assert.Equal(t, []string{"seq1", "seq2", "seq3"}, A.IDs())
	assert.Equal(t, "seq1 query", A.Description(0))

	assert.Equal(t, "ACDD", string(A.Row(0)))
	assert.Equal(t, "ACQ-", string(A.Row(1)))
	assert.Equal(t, "A-D-", string(A.Row(2)))

	assert.Equal(t, "AAA", string(A.Column(0, nil)))
	assert.Equal(t, "CC-", string(A.Column(1, nil)))
	assert.Equal(t, "D--", string(A.Column(3, nil)))

	assert.Equal(t, 0, A.GapCount(0))
	assert.Equal(t, 2, A.GapCount(3))

	assert.Equal(t, 1, A.Find("seq2"))
	assert.Equal(t, -1, A.Find("seq4"))
}

func TestColumnReusesBuffer(t *testing.T) {
	A, err := New([]fasta.Record{{ID: "a", Seq: "AR"}, {ID: "b", Seq: "AN"}})
	require.NoError(t, err)

	buf := make([]byte, 0, 8)
	col := A.Column(1, buf)
	assert.Equal(t, "RN", string(col))
	assert.Equal(t, &buf[:1][0], &col[0], "a large enough buffer should be reused")
}

func TestIDsIsACopy(t *testing.T) {
	A, err := New([]fasta.Record{{ID: "a", Seq: "AR"}})
	require.NoError(t, err)

	ids := A.IDs()
	ids[0] = "changed"
	assert.Equal(t, "a", A.IDs()[0])
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name    string
		records []fasta.Record
		want    error
	}{
		{"no records", nil, ErrEmptyAlignment},
		{"no columns", []fasta.Record{{ID: "a"}, {ID: "b"}}, ErrEmptyAlignment},
		{"different lengths", []fasta.Record{{ID: "a", Seq: "ARN"}, {ID: "b", Seq: "AR"}}, ErrDiffLenSeqs},
		{"empty second record", []fasta.Record{{ID: "a", Seq: "ARN"}, {ID: "b"}}, ErrDiffLenSeqs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader(""), fasta.FASTA)
	assert.True(t, errors.Is(err, fasta.ErrEmptyFasta), "got %v", err)

	_, err = Load(strings.NewReader("ARN\n>a\nARN\n"), fasta.FASTA)
	assert.True(t, errors.Is(err, fasta.ErrBadlyFormedFasta), "got %v", err)

	_, err = Load(strings.NewReader(">a\nARN\n>b\nAR\n"), fasta.FASTA)
	assert.True(t, errors.Is(err, ErrDiffLenSeqs), "got %v", err)
	assert.Contains(t, err.Error(), "b has length 2")
}
