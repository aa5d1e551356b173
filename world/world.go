// Package world assembles a built BSP tree and global floor/ceiling
// heights into the immutable World a frame is rendered against, plus the
// per-frame mutable Camera and the view<->world transforms the
// rasterizers share. Wall and plane textures are not part of World; they
// are passed to render.RenderFrame with each frame.
package world

import (
	"fmt"
	"math"

	"github.com/bloodmagesoftware/sectorcast/bsp"
	"github.com/bloodmagesoftware/sectorcast/geom"
)

// Camera is the per-frame mutable viewpoint. ViewAngle is in radians; a
// ViewAngle of pi/2 means the camera looks along +Y in world space.
type Camera struct {
	Pos       geom.Vec2
	Height    float32
	ViewAngle float32
}

// World is the immutable result of BuildWorld: vertices and the BSP tree
// are built once at startup and never mutated again.
type World struct {
	Tree          *bsp.Tree
	FloorHeight   float32
	CeilingHeight float32
}

// BuildWorld consumes the initial geometry and fixed floor/ceiling
// heights and returns an immutable World. It wraps bsp.Builder's errors
// unchanged (ErrDegenerateSplitter, ErrEmptyInput) so callers can
// errors.Is against the bsp package's sentinels directly.
func BuildWorld(vertices []geom.Vec2, segments []bsp.LineSegment, floorHeight, ceilingHeight float32) (*World, error) {
	tree, err := bsp.NewBuilder(vertices).Build(segments)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	return &World{
		Tree:          tree,
		FloorHeight:   floorHeight,
		CeilingHeight: ceilingHeight,
	}, nil
}

// WorldToView converts a world-space point into the camera's view space:
// translate by -cam.Pos, then rotate by -(ViewAngle - pi/2). In view
// space the camera looks along +Y, +X is right, -Y is behind.
func WorldToView(cam Camera, p geom.Vec2) geom.Vec2 {
	translated := p.Sub(cam.Pos)
	return translated.Rotate(-(cam.ViewAngle - math.Pi/2))
}

// ViewToWorld is the inverse of WorldToView, used by the plane rasterizer
// to map an inverse-projected view-space sample point back to world
// space for texture tiling.
func ViewToWorld(cam Camera, p geom.Vec2) geom.Vec2 {
	rotated := p.Rotate(cam.ViewAngle - math.Pi/2)
	return rotated.Add(cam.Pos)
}
