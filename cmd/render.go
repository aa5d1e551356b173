package cmd

import (
	"fmt"
	"log"
	"math"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/sectorcast/geom"
	"github.com/bloodmagesoftware/sectorcast/present"
	"github.com/bloodmagesoftware/sectorcast/project"
	"github.com/bloodmagesoftware/sectorcast/render"
	"github.com/bloodmagesoftware/sectorcast/scene"
	"github.com/bloodmagesoftware/sectorcast/texture"
	"github.com/bloodmagesoftware/sectorcast/world"
)

var renderScenePath string

var renderCmd = &cobra.Command{
	Use:   "render [scene-file]",
	Short: "Open a live window rendering the given scene",
	Long: `Builds the BSP tree for a scene and opens a window that renders it from a
first-person camera, starting at the scene's spawn pose. W/S or Up/Down move
forward and back, A/D strafe, Left/Right turn, E rises and Q descends.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenePath, assetsDir, err := resolveScenePath(args)
		if err != nil {
			return err
		}

		sc, err := loadSceneOrDemo(scenePath)
		if err != nil {
			return err
		}

		w, err := world.BuildWorld(sc.GeomVertices(), sc.BspSegments(), sc.FloorHeight, sc.CeilingHeight)
		if err != nil {
			return fmt.Errorf("building world from %s: %w", scenePath, err)
		}

		wallTex := loadSceneTexture(assetsDir, sc.WallTexture)
		planeTex := loadSceneTexture(assetsDir, sc.PlaneTexture)

		cam := world.Camera{
			Pos:       geom.Vec2{X: sc.Spawn.Position.X, Y: sc.Spawn.Position.Y},
			Height:    sc.Spawn.Height,
			ViewAngle: float32(float64(sc.Spawn.ViewAngle) * math.Pi / 180),
		}

		return present.Run(w, cam, wallTex, planeTex)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderScenePath, "scene", "s", "", "Path to a scene YAML file (defaults to the project's default_scene)")
}

// resolveScenePath figures out which scene file to render: a positional
// argument, the --scene flag, or the project's configured default_scene.
// If none of those resolve (e.g. outside any project directory), it falls
// back to the built-in demo scene with no assets directory.
func resolveScenePath(args []string) (scenePath, assetsDir string, err error) {
	if len(args) == 1 {
		scenePath = args[0]
	} else if renderScenePath != "" {
		scenePath = renderScenePath
	}

	if scenePath != "" {
		return scenePath, filepath.Join(filepath.Dir(scenePath), "..", "assets"), nil
	}

	projectRoot, rootErr := getProjectRoot()
	if rootErr != nil {
		log.Printf("render: no project found (%v), using the built-in demo scene", rootErr)
		return "", "", nil
	}

	config, cfgErr := project.LoadConfig(projectRoot)
	if cfgErr != nil {
		return "", "", cfgErr
	}

	return filepath.Join(projectRoot, config.DefaultScene), filepath.Join(projectRoot, "assets"), nil
}

func loadSceneOrDemo(scenePath string) (*scene.Scene, error) {
	if scenePath == "" {
		return scene.Example(), nil
	}
	sc, err := scene.Load(scenePath)
	if err != nil {
		return nil, fmt.Errorf("loading scene %s: %w", scenePath, err)
	}
	return sc, nil
}

// loadSceneTexture loads name from assetsDir, falling back to a flat grey
// placeholder if the asset is missing or can't be decoded.
func loadSceneTexture(assetsDir, name string) render.Texture {
	if assetsDir != "" && name != "" {
		path := filepath.Join(assetsDir, name)
		if tex, err := texture.LoadQOIFile(path); err == nil {
			return tex
		} else {
			log.Printf("render: loading texture %s: %v, using placeholder", path, err)
		}
	}

	placeholder := texture.New(64, 64)
	for i := 0; i < len(placeholder.Pix); i += 4 {
		placeholder.Pix[i] = 128
		placeholder.Pix[i+1] = 128
		placeholder.Pix[i+2] = 128
		placeholder.Pix[i+3] = 255
	}
	return placeholder
}
