package cmd

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/virus-evolution/goconserve/pkg/config"
	"github.com/virus-evolution/goconserve/pkg/logging"
)

var rootConfigFile string
var rootLogLevel string

// settings from --config, or the defaults
var cfg = config.Default()

var (
	rootCmd = &cobra.Command{
		Use:   "goconserve",
		Short: "per-column conservation scores for protein multiple sequence alignments",
		Long: `per-column conservation scores for protein multiple sequence alignments

Scores are Henikoff-weighted Shannon information, optionally multiplied by a
weighted gap penalty and smoothed over a window of neighbouring columns.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(rootConfigFile)
			if err != nil {
				return err
			}
			level := c.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = rootLogLevel
			}
			logging.SetDefaultCLILogger(level)
			cfg = c
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfigFile, "config", "", "", "YAML file of default settings")
	rootCmd.PersistentFlags().StringVarP(&rootLogLevel, "log-level", "", "info", "Logging level: debug, info, warn or error")
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("goconserve failed", "error", err)
		os.Exit(1)
	}
}

// closeOut closes an output file, keeping its error in *err unless an
// earlier error is already there
func closeOut(f *os.File, err *error) {
	if cerr := f.Close(); *err == nil && cerr != nil {
		*err = errors.Wrapf(cerr, "closing %s", f.Name())
	}
}
