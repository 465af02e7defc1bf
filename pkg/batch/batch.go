/*
Package batch scores many alignments concurrently, returning their profiles
in input order
*/
package batch

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/virus-evolution/goconserve/pkg/conservation"
	"github.com/virus-evolution/goconserve/pkg/fasta"
	"github.com/virus-evolution/goconserve/pkg/gfio"
	"github.com/virus-evolution/goconserve/pkg/msa"
	"github.com/virus-evolution/goconserve/pkg/report"
)

// Options controls a batch run
type Options struct {
	// Threads is the largest number of alignments scored at once
	Threads int
	// KeepGoing records a failed alignment in its profile and carries on,
	// instead of stopping the whole batch
	KeepGoing bool
	// Format of every input alignment
	Format fasta.Format
}

// ScoreFile loads the alignment at path and scores it. Residues are labelled
// with the first sequence of the alignment.
func ScoreFile(path string, format fasta.Format, scorer *conservation.Scorer) (report.Profile, error) {
	f, err := gfio.Open(path)
	if err != nil {
		return report.Profile{}, err
	}
	defer f.Close()

	A, err := msa.Load(f, format)
	if err != nil {
		return report.Profile{}, err
	}
	return report.NewProfile(path, A, 0, scorer.Score(A)), nil
}

// Run scores every alignment in paths. Without KeepGoing the first failure
// cancels the remaining work and is returned.
func Run(ctx context.Context, paths []string, scorer *conservation.Scorer, opts Options, logger *slog.Logger) ([]report.Profile, error) {
	if logger == nil {
		logger = slog.Default()
	}
	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}

	profiles := make([]report.Profile, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := ScoreFile(path, opts.Format, scorer)
			if err != nil {
				if !opts.KeepGoing {
					return errors.Wrapf(err, "scoring %s", path)
				}
				logger.Warn("skipping alignment", "file", path, "error", err)
				p = report.Profile{Name: path, Error: err.Error()}
			} else {
				logger.Debug("scored", "file", path, "columns", len(p.Scores))
			}
			profiles[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, p := range profiles {
		if p.Failed() {
			failed++
		}
	}
	logger.Info("batch finished", "alignments", len(paths), "failed", failed)

	return profiles, nil
}
