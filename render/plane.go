package render

import (
	"github.com/bloodmagesoftware/sectorcast/geom"
	"github.com/bloodmagesoftware/sectorcast/world"
)

// drawPlaneColumn fills screen column x, rows [startRow,endRow], by
// inverse-projecting each pixel to a world-space floor/ceiling point and
// sampling planeTex, tiled every TileSize world units. It implements the
// core specification's 6-step plane rasterizer.
func drawPlaneColumn(fb *Framebuffer, planeTex Texture, cam world.Camera, x, startRow, endRow int, viewPlaneHeight, normalizedX float32) {
	if startRow > endRow {
		return
	}
	startRow = clampInt(startRow, 0, SH-1)
	endRow = clampInt(endRow, 0, SH-1)

	sh2 := float32(SH) / 2
	texW, texH := planeTex.Dimensions()

	for y := startRow; y <= endRow; y++ {
		ny := (sh2 - float32(y) + 0.5) / (sh2 * YScale)

		var floorView geom.Vec2
		floorView.Y = viewPlaneHeight * F / ny
		floorView.X = normalizedX / F * floorView.Y

		floorWorld := world.ViewToWorld(cam, floorView)

		tileU := floorWorld.X / TileSize
		tileV := floorWorld.Y / TileSize

		texX := clampInt(int(fract(tileU)*float32(texW)), 0, texW-1)
		texY := clampInt(int(fract(tileV)*float32(texH)), 0, texH-1)

		if texX == 0 || texX == texW-1 || texY == 0 || texY == texH-1 {
			// Deliberate grid-line cue at tile boundaries, not an artifact.
			fb.Set(x, y, 0, 0, 0, 255)
			continue
		}

		r, g, b, a := planeTex.At(texX, texY)
		fb.Set(x, y, r, g, b, a)
	}
}
