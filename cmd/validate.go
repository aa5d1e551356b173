package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/sectorcast/scene"
	"github.com/bloodmagesoftware/sectorcast/world"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scene-file>",
	Short: "Build a scene's BSP tree and report statistics, without opening a window",
	Long: `Loads a scene file, runs it through the same BSP builder the render
command uses, and reports the resulting node/sector/vertex counts, or the
builder's error if the segments don't form a valid map.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}

		sc, err := scene.Load(args[0])
		if err != nil {
			return fmt.Errorf("loading scene %s: %w", args[0], err)
		}

		w, err := world.BuildWorld(sc.GeomVertices(), sc.BspSegments(), sc.FloorHeight, sc.CeilingHeight)
		if err != nil {
			return fmt.Errorf("validating %s: %w", args[0], err)
		}

		fmt.Printf("%s: ok\n", args[0])
		fmt.Printf("  vertices: %d\n", len(w.Tree.Vertices))
		fmt.Printf("  nodes:    %d\n", len(w.Tree.Nodes))
		fmt.Printf("  sectors:  %d\n", len(w.Tree.Sectors))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
