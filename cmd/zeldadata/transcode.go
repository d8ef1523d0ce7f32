package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alecKarfonta/zelda-sub001/internal/color"
	"github.com/alecKarfonta/zelda-sub001/internal/config"
	"github.com/alecKarfonta/zelda-sub001/internal/hexinc"
	"github.com/alecKarfonta/zelda-sub001/internal/pipeline"
)

var (
	transcodeNaming  string
	transcodePrefix  string
	transcodeWrap    int
	transcodeWorkers int
)

var transcodeCmd = &cobra.Command{
	Use:   "transcode [files...]",
	Short: "Rewrite hex include files as byte array declarations",
	Long: `Converts each file's 64-bit hex literals into a u8 array declaration
and overwrites the file in place (atomically, via temp file and rename).
Files with no literals, or filenames the naming mode cannot parse, are
skipped with a warning.

Naming modes:
  suffix       strip format/encoding suffixes: map_grand.u64.inc.c -> map_grand
  coordinate   compose from row/col: slice_2_5.i8.inc.c -> gMap_slice_2_5

Example:
  zeldadata transcode assets/map_grand.u64.inc.c
  zeldadata transcode --naming coordinate assets/slices/*.i8.inc.c`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("naming") {
			cfg.Transcode.Naming = transcodeNaming
		}
		if cmd.Flags().Changed("coord-prefix") {
			cfg.Transcode.CoordPrefix = transcodePrefix
		}
		if cmd.Flags().Changed("bytes-per-line") {
			cfg.Transcode.BytesPerLine = transcodeWrap
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = transcodeWorkers
		}

		mode, err := hexinc.ParseNamingMode(cfg.Transcode.Naming)
		if err != nil {
			return err
		}
		tr := hexinc.New(mode)
		tr.CoordPrefix = cfg.Transcode.CoordPrefix
		tr.BytesPerLine = cfg.Transcode.BytesPerLine

		r := &pipeline.TranscodeRunner{Transcoder: tr, Workers: cfg.Workers, Log: logger}
		stats, err := r.Run(cmd.Context(), args)
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, color.Header("transcode summary"))
		fmt.Fprintln(os.Stderr, color.Count("processed", stats.Processed, false))
		fmt.Fprintln(os.Stderr, color.Count("skipped (no literals)", stats.SkippedEmpty, true))
		fmt.Fprintln(os.Stderr, color.Count("skipped (bad filename)", stats.SkippedBadName, true))
		return nil
	},
}

func init() {
	transcodeCmd.Flags().StringVarP(&transcodeNaming, "naming", "n", "suffix", "identifier naming mode (suffix|coordinate)")
	transcodeCmd.Flags().StringVar(&transcodePrefix, "coord-prefix", hexinc.DefaultCoordPrefix, "coordinate identifier prefix")
	transcodeCmd.Flags().IntVar(&transcodeWrap, "bytes-per-line", hexinc.DefaultBytesPerLine, "byte literals per output line")
	transcodeCmd.Flags().IntVarP(&transcodeWorkers, "workers", "w", 0, "file worker count (overrides config)")
	rootCmd.AddCommand(transcodeCmd)
}
