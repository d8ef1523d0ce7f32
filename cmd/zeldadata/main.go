package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alecKarfonta/zelda-sub001/internal/color"
)

var (
	cfgPath string
	verbose bool
	noColor bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zeldadata",
	Short: "Dataset salvage and hex include transcoding",
	Long: `zeldadata prepares the decompilation training corpus.

It recovers structured records from malformed line-delimited JSON (salvage),
and rewrites generated hex-literal include files into canonical fixed-width
byte array declarations (transcode). Both runs are offline batch jobs: bad
units degrade or are skipped with a warning, and only an unreadable input
aborts a run.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.Disable()
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "zeldadata.yaml", "run configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
