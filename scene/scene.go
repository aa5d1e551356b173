// Package scene defines the YAML world-file format: vertices, directed
// wall segments, global floor/ceiling heights, texture references, and a
// spawn camera pose. Load/Save use the same indented yaml.Encoder/Decoder
// convention as this codebase's other on-disk formats.
package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bloodmagesoftware/sectorcast/bsp"
	"github.com/bloodmagesoftware/sectorcast/geom"
)

// Scene is the on-disk world definition a sectorcast command loads to
// build a world.World and a spawn camera.
type Scene struct {
	Vertices      []Vec2    `yaml:"vertices"`
	Segments      []Segment `yaml:"segments"`
	FloorHeight   float32   `yaml:"floor_height"`
	CeilingHeight float32   `yaml:"ceiling_height"`
	WallTexture   string    `yaml:"wall_texture"`
	PlaneTexture  string    `yaml:"plane_texture"`
	Spawn         Spawn     `yaml:"spawn"`
}

// Vec2 is the YAML-serializable counterpart of geom.Vec2.
type Vec2 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Segment references two Scene.Vertices indices by position.
type Segment struct {
	V1 int `yaml:"v1"`
	V2 int `yaml:"v2"`
}

// Spawn is the camera pose a scene starts the player at.
type Spawn struct {
	Position  Vec2    `yaml:"position"`
	Height    float32 `yaml:"height"`
	ViewAngle float32 `yaml:"view_angle_degrees"`
}

// New returns an empty Scene ready to have vertices/segments appended.
func New() *Scene {
	return &Scene{}
}

// Save writes s as YAML to path, creating parent directories as needed.
func (s *Scene) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating scene directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating scene file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	encoder.SetIndent(4)

	return encoder.Encode(s)
}

// Load reads a Scene from path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene file: %w", err)
	}
	defer f.Close()

	var s Scene
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}
	return &s, nil
}

// GeomVertices converts Vertices to geom.Vec2 for bsp.NewBuilder.
func (s *Scene) GeomVertices() []geom.Vec2 {
	out := make([]geom.Vec2, len(s.Vertices))
	for i, v := range s.Vertices {
		out[i] = geom.Vec2{X: v.X, Y: v.Y}
	}
	return out
}

// BspSegments converts Segments to bsp.LineSegment.
func (s *Scene) BspSegments() []bsp.LineSegment {
	out := make([]bsp.LineSegment, len(s.Segments))
	for i, seg := range s.Segments {
		out[i] = bsp.LineSegment{V1: bsp.VertexIndex(seg.V1), V2: bsp.VertexIndex(seg.V2)}
	}
	return out
}
