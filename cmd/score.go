package cmd

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/virus-evolution/goconserve/pkg/conservation"
	"github.com/virus-evolution/goconserve/pkg/gfio"
	"github.com/virus-evolution/goconserve/pkg/msa"
	"github.com/virus-evolution/goconserve/pkg/report"
)

var scoreMSA string
var scoreOutfile string
var scoreReference string
var scoreOffset int
var scoreFlags scoringFlags

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVarP(&scoreMSA, "msa", "", "stdin", "Multiple sequence alignment in fasta format")
	scoreCmd.Flags().StringVarP(&scoreOutfile, "outfile", "o", "stdout", "Name of the file of scores to write")
	scoreCmd.Flags().StringVarP(&scoreReference, "reference", "r", "", "ID of the sequence whose residues label the output (default: the first sequence)")
	scoreCmd.Flags().IntVarP(&scoreOffset, "offset", "", 0, "Add this to every output column number")
	scoreFlags.register(scoreCmd)

	scoreCmd.Flags().SortFlags = false
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the conservation of every column of an alignment",
	Long: `Score the conservation of every column of an alignment

Example usage:
	goconserve score --msa alignment.fasta -o scores.csv

The output has one row per alignment column with its 1-based position, the
residue of the reference sequence there, and the conservation score. Columns
with more gaps than --gap-cutoff score 0.

If input and output files are not specified, the behaviour is to read the alignment
from stdin and write the scores to stdout, e.g. you could do this:
	cat alignment.fasta | goconserve score --window 0 > scores.csv

Alignments ending in .gz or .bgz are decompressed (bgzip or plain gzip).`,

	RunE: func(cmd *cobra.Command, args []string) (err error) {

		in, err := gfio.OpenIn(*cmd.Flag("msa"))
		if err != nil {
			return err
		}
		defer in.Close()

		A, err := msa.Load(in, scoreFlags.inputFormat())
		if err != nil {
			return errors.Wrapf(err, "--msa %s", scoreMSA)
		}

		ref := 0
		if scoreReference != "" {
			if ref = A.Find(scoreReference); ref == -1 {
				return errors.Errorf("--reference %s is not in the alignment", scoreReference)
			}
		}

		scorer, err := conservation.NewScorer(scoreFlags.options(cmd), slog.Default())
		if err != nil {
			return err
		}

		wr, err := scoreFlags.writer(cmd, scoreOffset)
		if err != nil {
			return err
		}

		out, err := gfio.OpenOut(*cmd.Flag("outfile"))
		if err != nil {
			return err
		}
		defer closeOut(out, &err)

		profile := report.NewProfile(scoreMSA, A, ref, scorer.Score(A))

		return wr.Write(out, profile)
	},
}
