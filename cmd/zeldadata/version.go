package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alecKarfonta/zelda-sub001/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zeldadata %s (%s)\n", version.Version, version.Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
