package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/virus-evolution/goconserve/pkg/conservation"
	"github.com/virus-evolution/goconserve/pkg/fasta"
	"github.com/virus-evolution/goconserve/pkg/gfio"
	"github.com/virus-evolution/goconserve/pkg/msa"
	"github.com/virus-evolution/goconserve/pkg/report"
)

var weightsMSA string
var weightsOutfile string
var weightsA3M bool
var weightsPrecision int

func init() {
	rootCmd.AddCommand(weightsCmd)

	weightsCmd.Flags().StringVarP(&weightsMSA, "msa", "", "stdin", "Multiple sequence alignment in fasta format")
	weightsCmd.Flags().StringVarP(&weightsOutfile, "outfile", "o", "stdout", "Name of the csv file of weights to write")
	weightsCmd.Flags().BoolVarP(&weightsA3M, "a3m", "", false, "Input is in a3m format (lower-case inserts are dropped)")
	weightsCmd.Flags().IntVarP(&weightsPrecision, "precision", "", 6, "Decimal places in the output (-1 for full precision)")

	weightsCmd.Flags().SortFlags = false
}

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Write the Henikoff weight of every sequence in an alignment",
	Long: `Write the Henikoff weight of every sequence in an alignment

Example usage:
	goconserve weights --msa alignment.fasta -o weights.csv

Weights are position-based (Henikoff & Henikoff 1994): each sequence gets
1/(r*s) for every column, where r is the number of distinct residues in the
column and s is how often its own residue appears there, averaged over the
alignment width. Gaps contribute nothing.`,

	RunE: func(cmd *cobra.Command, args []string) (err error) {

		in, err := gfio.OpenIn(*cmd.Flag("msa"))
		if err != nil {
			return err
		}
		defer in.Close()

		format := fasta.FASTA
		if weightsA3M {
			format = fasta.A3M
		}

		A, err := msa.Load(in, format)
		if err != nil {
			return errors.Wrapf(err, "--msa %s", weightsMSA)
		}

		out, err := gfio.OpenOut(*cmd.Flag("outfile"))
		if err != nil {
			return err
		}
		defer closeOut(out, &err)

		return report.WriteWeights(out, A.IDs(), conservation.HenikoffWeights(A), weightsPrecision)
	},
}
