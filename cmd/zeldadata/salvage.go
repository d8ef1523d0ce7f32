package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alecKarfonta/zelda-sub001/internal/color"
	"github.com/alecKarfonta/zelda-sub001/internal/config"
	"github.com/alecKarfonta/zelda-sub001/internal/pipeline"
)

var (
	salvageInput   string
	salvageOutput  string
	salvageWorkers int
)

var salvageCmd = &cobra.Command{
	Use:   "salvage",
	Short: "Recover records from a malformed JSONL dataset",
	Long: `Reads a newline-delimited record file and writes one normalized record
per line. Lines that fail strict JSON parsing fall back to field-by-field
extraction; fields that cannot be recovered become empty strings. Every input
line yields an output record.

Example:
  zeldadata salvage --input dataset_raw.jsonl --output dataset_clean.jsonl
  zeldadata salvage --input dataset_raw.jsonl > dataset_clean.jsonl`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("input") {
			cfg.Salvage.Input = salvageInput
		}
		if cmd.Flags().Changed("output") {
			cfg.Salvage.Output = salvageOutput
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = salvageWorkers
		}
		if cfg.Salvage.Input == "" {
			return fmt.Errorf("--input is required")
		}

		var out io.Writer = os.Stdout
		if cfg.Salvage.Output != "-" && cfg.Salvage.Output != "" {
			f, err := os.Create(cfg.Salvage.Output)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer f.Close()
			out = f
		}

		r := &pipeline.SalvageRunner{Workers: cfg.Workers, Log: logger}
		stats, err := r.Run(cmd.Context(), cfg.Salvage.Input, out)
		if err != nil {
			return err
		}

		printSalvageSummary(stats)
		return nil
	},
}

func printSalvageSummary(stats *pipeline.SalvageStats) {
	fmt.Fprintln(os.Stderr, color.Header("salvage summary"))
	fmt.Fprintln(os.Stderr, color.Count("records", stats.Total, false))
	fmt.Fprintln(os.Stderr, color.Count("strict", stats.Strict, false))
	fmt.Fprintln(os.Stderr, color.Count("salvaged", stats.Salvaged, true))
	fmt.Fprintln(os.Stderr, color.Count("with advisory notes", stats.WithNotes, false))

	fields := make([]string, 0, len(stats.MissingFields))
	for f := range stats.MissingFields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintln(os.Stderr, color.Count("missing "+f, stats.MissingFields[f], true))
	}
}

func init() {
	salvageCmd.Flags().StringVarP(&salvageInput, "input", "i", "", "newline-delimited record file")
	salvageCmd.Flags().StringVarP(&salvageOutput, "output", "o", "-", "normalized JSONL destination (- for stdout)")
	salvageCmd.Flags().IntVarP(&salvageWorkers, "workers", "w", 0, "parse worker count (overrides config)")
	rootCmd.AddCommand(salvageCmd)
}
