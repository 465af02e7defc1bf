package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/virus-evolution/goconserve/pkg/batch"
	"github.com/virus-evolution/goconserve/pkg/conservation"
	"github.com/virus-evolution/goconserve/pkg/gfio"
)

var batchOutfile string
var batchThreads int
var batchKeepGoing bool
var batchFlags scoringFlags

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchOutfile, "outfile", "o", "stdout", "Name of the file of scores to write")
	batchCmd.Flags().IntVarP(&batchThreads, "threads", "t", 1, "Number of alignments to score at once")
	batchCmd.Flags().BoolVarP(&batchKeepGoing, "keep-going", "k", false, "Log and skip alignments that cannot be scored")
	batchFlags.register(batchCmd)

	batchCmd.Flags().SortFlags = false
}

var batchCmd = &cobra.Command{
	Use:   "batch <alignment>...",
	Short: "Score many alignments, writing all their scores to one file",
	Long: `Score many alignments, writing all their scores to one file

Example usage:
	goconserve batch -t 4 -o scores.csv family1.fasta family2.fasta.gz

Tabular output gains a leading "alignment" column naming the file each row
comes from, in the order the files were given. Every file's residues are
labelled with its first sequence.

With --keep-going an alignment that cannot be read is logged and left out of
tabular output (json and yaml output record its error instead).`,
	Args: cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) (err error) {

		scorer, err := conservation.NewScorer(batchFlags.options(cmd), slog.Default())
		if err != nil {
			return err
		}

		wr, err := batchFlags.writer(cmd, 0)
		if err != nil {
			return err
		}

		threads := cfg.Threads
		if cmd.Flags().Changed("threads") {
			threads = batchThreads
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		opts := batch.Options{
			Threads:   threads,
			KeepGoing: batchKeepGoing,
			Format:    batchFlags.inputFormat(),
		}
		profiles, err := batch.Run(ctx, args, scorer, opts, slog.Default())
		if err != nil {
			return err
		}

		out, err := gfio.OpenOut(*cmd.Flag("outfile"))
		if err != nil {
			return err
		}
		defer closeOut(out, &err)

		return wr.Write(out, profiles...)
	},
}
