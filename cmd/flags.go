package cmd

import (
	"github.com/spf13/cobra"

	"github.com/virus-evolution/goconserve/pkg/conservation"
	"github.com/virus-evolution/goconserve/pkg/fasta"
	"github.com/virus-evolution/goconserve/pkg/report"
)

// scoringFlags are shared by every command that scores alignments
type scoringFlags struct {
	gapCutoff  float64
	window     int
	gapPenalty bool
	lambda     float64
	a3m        bool
	format     string
	precision  int
}

func (sf *scoringFlags) register(cmd *cobra.Command) {
	defaults := conservation.DefaultOptions()

	cmd.Flags().Float64VarP(&sf.gapCutoff, "gap-cutoff", "g", defaults.GapCutoff, "Columns with a larger fraction of gaps than this score 0")
	cmd.Flags().IntVarP(&sf.window, "window", "w", defaults.Window, "Number of columns either side to smooth over (0 to disable)")
	cmd.Flags().BoolVarP(&sf.gapPenalty, "gap-penalty", "", defaults.GapPenalty, "Multiply scores by the weighted fraction of non-gaps")
	cmd.Flags().Float64VarP(&sf.lambda, "lambda", "", defaults.Lambda, "Weight of a column's own score when smoothing")
	cmd.Flags().BoolVarP(&sf.a3m, "a3m", "", false, "Input is in a3m format (lower-case inserts are dropped)")
	cmd.Flags().StringVarP(&sf.format, "format", "f", "csv", "Output format: csv, tsv, json or yaml")
	cmd.Flags().IntVarP(&sf.precision, "precision", "", 6, "Decimal places in csv/tsv output (-1 for full precision)")
}

// options returns the scoring options, taking values from the config file
// unless the flag was given on the command line
func (sf *scoringFlags) options(cmd *cobra.Command) conservation.Options {
	opts := cfg.Options()
	if cmd.Flags().Changed("gap-cutoff") {
		opts.GapCutoff = sf.gapCutoff
	}
	if cmd.Flags().Changed("window") {
		opts.Window = sf.window
	}
	if cmd.Flags().Changed("gap-penalty") {
		opts.GapPenalty = sf.gapPenalty
	}
	if cmd.Flags().Changed("lambda") {
		opts.Lambda = sf.lambda
	}
	return opts
}

func (sf *scoringFlags) inputFormat() fasta.Format {
	if sf.a3m {
		return fasta.A3M
	}
	return fasta.FASTA
}

func (sf *scoringFlags) writer(cmd *cobra.Command, offset int) (report.Writer, error) {
	name := cfg.Format
	if cmd.Flags().Changed("format") {
		name = sf.format
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return report.Writer{}, err
	}
	return report.Writer{Format: format, Offset: offset, Precision: sf.precision}, nil
}
