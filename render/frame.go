package render

import (
	"github.com/bloodmagesoftware/sectorcast/bsp"
	"github.com/bloodmagesoftware/sectorcast/geom"
	"github.com/bloodmagesoftware/sectorcast/world"
)

// RenderFrame writes exactly SW x SH pixels into fb for the given world
// and camera: clears, traverses the BSP back-to-front, and dispatches
// each segment of each sector to the wall rasterizer (which internally
// invokes the plane rasterizer per column). The caller need not clear fb
// beforehand; RenderFrame always overwrites every pixel.
func RenderFrame(w *world.World, cam world.Camera, wallTex, planeTex Texture, fb *Framebuffer) {
	fb.Clear(0, 0, 0, 255)

	leaves := traverse(w.Tree, cam.Pos)

	// leaves is front-to-back; draw back-to-front (painter's algorithm).
	for i := len(leaves) - 1; i >= 0; i-- {
		sector := w.Tree.Sectors[leaves[i]]
		for _, seg := range sector.Segments {
			drawWall(fb, cam, wallSegment{
				V1:            w.Tree.Vertices[seg.V1],
				V2:            w.Tree.Vertices[seg.V2],
				FloorHeight:   w.FloorHeight,
				CeilingHeight: w.CeilingHeight,
				Tex:           wallTex,
			}, planeTex)
		}
	}
}

// traverse walks the BSP from the root, visiting the camera's side first
// at every internal node, and returns leaf sector indices in
// front-to-back order.
func traverse(tree *bsp.Tree, camPos geom.Vec2) []int {
	var leaves []int
	var walk func(ref bsp.ChildRef)
	walk = func(ref bsp.ChildRef) {
		if ref.Kind == bsp.RefSector {
			leaves = append(leaves, ref.Index)
			return
		}
		node := tree.Nodes[ref.Index]
		v1 := tree.Vertices[node.Splitter.V1]
		v2 := tree.Vertices[node.Splitter.V2]
		side := geom.Side(v1, v2, camPos)
		if side == 1 {
			walk(node.Right)
			walk(node.Left)
		} else {
			walk(node.Left)
			walk(node.Right)
		}
	}
	walk(tree.Root)
	return leaves
}
