package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sectorcast",
	Short: "sectorcast - BSP-based 2D-to-first-person software renderer",
	Long: `sectorcast builds a binary space partition tree from a 2D map of
directed wall segments and renders it from a first-person camera: textured
walls with perspective-correct projection, and floor/ceiling planes sampled
by inverse projection.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
