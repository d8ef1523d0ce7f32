package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alecKarfonta/zelda-sub001/internal/color"
	"github.com/alecKarfonta/zelda-sub001/internal/config"
	"github.com/alecKarfonta/zelda-sub001/internal/hexinc"
	"github.com/alecKarfonta/zelda-sub001/internal/snippet"
)

var inspectLines int

var inspectCmd = &cobra.Command{
	Use:   "inspect [files...]",
	Short: "Preview transcode units before a destructive run",
	Long: `Shows the head of each input file together with its literal count and
the identifier each naming mode would derive. Useful before "transcode",
which overwrites its inputs.

Example:
  zeldadata inspect assets/slices/*.i8.inc.c`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("lines") {
			cfg.Snippet.Lines = inspectLines
		}

		cache := snippet.NewCache(cfg.Snippet.Lines)
		for _, path := range args {
			if err := inspectUnit(cache, path); err != nil {
				return err
			}
		}
		return nil
	},
}

func inspectUnit(cache *snippet.Cache, path string) error {
	head, err := cache.Get(path)
	if err != nil {
		return err
	}

	fmt.Println(color.Header(path))
	fmt.Print(head)

	// The snippet is only the file head; count literals over the whole unit.
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	values, err := hexinc.ExtractLiterals(string(data))
	if err != nil && !errors.Is(err, hexinc.ErrEmptyInput) {
		return err
	}
	if errors.Is(err, hexinc.ErrEmptyInput) {
		fmt.Println(color.Warn("no hex literals: unit would be skipped"))
	} else {
		fmt.Println(color.Okf("%d literals (%d bytes once expanded)", len(values), len(values)*8))
	}

	for _, mode := range []hexinc.NamingMode{hexinc.NamingSuffixStrip, hexinc.NamingCoordinate} {
		ident, err := hexinc.DeriveIdentifier(path, mode)
		if err != nil {
			fmt.Println(color.Warnf("%s naming: %v", mode, err))
			continue
		}
		fmt.Printf("  %s naming: %s\n", mode, color.Bold(ident))
	}
	fmt.Println()
	return nil
}

func init() {
	inspectCmd.Flags().IntVar(&inspectLines, "lines", snippet.DefaultLines, "snippet lines shown per file")
	rootCmd.AddCommand(inspectCmd)
}
