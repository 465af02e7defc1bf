/*
Package conservation scores how conserved each column of a protein multiple
sequence alignment is, using Henikoff-weighted Shannon entropy with a weighted
gap penalty and optional window smoothing
*/
package conservation

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/virus-evolution/goconserve/pkg/fasta"
	"github.com/virus-evolution/goconserve/pkg/msa"
)

var ErrInvalidOptions = errors.New("invalid scoring options")

// Options controls how columns are scored
type Options struct {
	// GapCutoff is the largest gap fraction a column may have and still be
	// scored. Columns above it score 0.
	GapCutoff float64
	// Window is the number of neighbours either side used for smoothing.
	// 0 disables smoothing.
	Window int
	// GapPenalty multiplies each score by the weighted non-gap fraction
	GapPenalty bool
	// Lambda is the weight of a position's own score when smoothing
	Lambda float64
}

// DefaultOptions returns the options used by the residue exposure pipeline
func DefaultOptions() Options {
	return Options{
		GapCutoff:  0.7,
		Window:     3,
		GapPenalty: true,
		Lambda:     0.5,
	}
}

// Validate checks that every option is in range
func (o Options) Validate() error {
	switch {
	case o.GapCutoff < 0 || o.GapCutoff > 1:
		return errors.Wrapf(ErrInvalidOptions, "gap cutoff %v is not between 0 and 1", o.GapCutoff)
	case o.Window < 0:
		return errors.Wrapf(ErrInvalidOptions, "window %d is negative", o.Window)
	case o.Lambda < 0 || o.Lambda > 1:
		return errors.Wrapf(ErrInvalidOptions, "lambda %v is not between 0 and 1", o.Lambda)
	}
	return nil
}

// Scorer scores alignments with a fixed set of options. It holds no state
// between calls and may be shared between goroutines.
type Scorer struct {
	opts Options
	log  *slog.Logger
}

// NewScorer returns a Scorer for opts. A nil logger means slog.Default().
func NewScorer(opts Options, logger *slog.Logger) (*Scorer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{opts: opts, log: logger}, nil
}

// Options returns the scorer's options
func (s *Scorer) Options() Options { return s.opts }

// Score returns one conservation score per column of A
func (s *Scorer) Score(A *msa.Alignment) []float64 {
	scores := make([]float64, A.Width())

	// a single row carries no information about conservation
	if A.NSeq() < 2 {
		s.log.Debug("single sequence alignment, all scores are zero", "columns", A.Width())
		return scores
	}

	weights := HenikoffWeights(A)

	suppressed := 0
	col := make([]byte, A.NSeq())
	for j := range scores {
		col = A.Column(j, col)
		frac := GapFraction(col)
		if frac > s.opts.GapCutoff || frac == 1 {
			suppressed++
			continue
		}
		scores[j] = ShannonInformation(col, weights, s.opts.GapPenalty)
	}

	if s.opts.Window > 0 {
		scores = WindowScore(scores, s.opts.Window, s.opts.Lambda)
	}

	s.log.Debug("scored alignment",
		"sequences", A.NSeq(),
		"columns", A.Width(),
		"gap_suppressed", suppressed)

	return scores
}

// ScoreReader loads an alignment from r and scores it
func (s *Scorer) ScoreReader(r io.Reader, format fasta.Format) ([]float64, error) {
	A, err := msa.Load(r, format)
	if err != nil {
		return nil, err
	}
	return s.Score(A), nil
}

// Score scores A with opts
func Score(A *msa.Alignment, opts Options) ([]float64, error) {
	s, err := NewScorer(opts, nil)
	if err != nil {
		return nil, err
	}
	return s.Score(A), nil
}

// ScoreReader loads an alignment from r and scores it with opts
func ScoreReader(r io.Reader, format fasta.Format, opts Options) ([]float64, error) {
	s, err := NewScorer(opts, nil)
	if err != nil {
		return nil, err
	}
	return s.ScoreReader(r, format)
}
