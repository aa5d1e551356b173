package render

import (
	"math"

	"github.com/bloodmagesoftware/sectorcast/geom"
	"github.com/bloodmagesoftware/sectorcast/world"
)

// wallSegment is the wall rasterizer's input: two world-space endpoints
// plus the floor/ceiling heights and texture that apply to this segment.
type wallSegment struct {
	V1, V2        geom.Vec2
	FloorHeight   float32
	CeilingHeight float32
	Tex           Texture
}

// drawWall projects one wall to screen space, iterates screen columns,
// and for each column draws a textured vertical strip plus invokes the
// plane rasterizer for the floor/ceiling rows above and below it. It
// implements the core specification's 11-step wall rasterizer.
func drawWall(fb *Framebuffer, cam world.Camera, seg wallSegment, planeTex Texture) {
	v1 := world.WorldToView(cam, seg.V1)
	v2 := world.WorldToView(cam, seg.V2)

	viewFloor := seg.FloorHeight - cam.Height
	viewCeiling := seg.CeilingHeight - cam.Height

	if v1.Y <= 0 && v2.Y <= 0 {
		return
	}

	// Backface cull: the camera (view-space origin) must be on the back
	// side of the directed segment.
	if geom.Side(v1, v2, geom.Vec2{}) != 1 {
		return
	}

	// Frustum clip against rays through +-FOV/2, long enough to reach
	// beyond any wall.
	clipLeft := geom.Vec2{X: 0, Y: 10000}.Rotate(FOV / 2)
	clipRight := geom.Vec2{X: 0, Y: 10000}.Rotate(-FOV / 2)

	length := v2.Sub(v1).Len()
	texW, texH := seg.Tex.Dimensions()
	uStart := float32(0)
	uEnd := length / float32(texW)
	vStart := float32(0)
	vEnd := (viewCeiling - viewFloor) / float32(texH)

	if p, ok := geom.SegmentIntersect(geom.Vec2{}, clipLeft, v1, v2); ok {
		clipLen := p.Sub(v1).Len()
		uStart = clipLen / float32(texW)
		v1 = p
	}
	if p, ok := geom.SegmentIntersect(geom.Vec2{}, clipRight, v1, v2); ok {
		clipLen := p.Sub(v2).Len()
		uEnd -= clipLen / float32(texW)
		v2 = p
	}

	// Angular cull against the clipped extent.
	up := geom.Vec2{X: 0, Y: 1}
	angle1 := geom.SignedAngle(up, v1)
	angle2 := geom.SignedAngle(up, v2)
	if angle1 < -FOV/2 || angle2 > FOV/2 {
		return
	}

	nx1 := v1.X / v1.Y * F
	nyTop1 := viewCeiling / v1.Y * F
	nyBot1 := viewFloor / v1.Y * F

	nx2 := v2.X / v2.Y * F
	nyTop2 := viewCeiling / v2.Y * F
	nyBot2 := viewFloor / v2.Y * F

	sw2 := float32(SW) / 2
	sh2 := float32(SH) / 2

	screenX1 := sw2 + nx1*sw2
	screenX2 := sw2 + nx2*sw2
	screenYTop1 := sh2 - nyTop1*sh2*YScale
	screenYBot1 := sh2 - nyBot1*sh2*YScale
	screenYTop2 := sh2 - nyTop2*sh2*YScale
	screenYBot2 := sh2 - nyBot2*sh2*YScale

	deltaX := screenX2 - screenX1
	if deltaX > -Epsilon && deltaX < Epsilon {
		return
	}

	slopeTop := (screenYTop2 - screenYTop1) / deltaX
	slopeBot := (screenYBot2 - screenYBot1) / deltaX

	startCol := int(screenX1 + 0.5)
	endCol := int(screenX2 - 0.5)
	width := endCol - startCol + 1
	if width <= 0 {
		return
	}

	interpTop := screenYTop1
	interpBot := screenYBot1

	for x := startCol; x <= endCol; x++ {
		y1 := int(math.Round(float64(interpTop)))
		y2 := int(math.Round(float64(interpBot))) - 1

		if y1 >= SH || y2 < 0 || y2 < y1 {
			interpTop += slopeTop
			interpBot += slopeBot
			continue
		}

		cy1 := clampInt(y1, 0, SH-1)
		cy2 := clampInt(y2, 0, SH-1)

		tx := (float32(x) + 0.5 - screenX1) / float32(width)
		u := ((1-tx)*uStart/v1.Y + tx*uEnd/v2.Y) / ((1-tx)/v1.Y + tx/v2.Y)
		texX := int(fract(u) * float32(texW))

		drawColumn(fb, seg.Tex, x, cy1, cy2, interpTop, interpBot, vStart, vEnd, texX)

		normalizedX := (float32(x) + 0.5 - sw2) / sw2

		if viewFloor < 0 {
			floorY1 := int(math.Round(float64(interpBot)))
			drawPlaneColumn(fb, planeTex, cam, x, floorY1, SH-1, viewFloor, normalizedX)
		}
		if viewCeiling > 0 {
			ceilingY2 := int(math.Round(float64(interpTop))) - 1
			drawPlaneColumn(fb, planeTex, cam, x, 0, ceilingY2, viewCeiling, normalizedX)
		}

		interpTop += slopeTop
		interpBot += slopeBot
	}
}

// drawColumn writes one textured vertical strip, affinely interpolating V
// between the unclipped screen top/bottom (sy1,sy2), matching step 9 of
// the wall rasterizer.
func drawColumn(fb *Framebuffer, tex Texture, x, y1, y2 int, sy1, sy2, vStart, vEnd float32, texX int) {
	_, texH := tex.Dimensions()
	deltaY := vEnd - vStart
	deltaX := sy2 - sy1
	if deltaX > -Epsilon && deltaX < Epsilon {
		deltaX = Epsilon
	}
	slope := deltaY / deltaX

	v := slope*(float32(y1)+0.5-sy1) + vStart

	for y := y1; y <= y2; y++ {
		if v < 0 {
			v = 0
		}
		texY := int(fract(v) * float32(texH))
		r, g, b, a := tex.At(texX, texY)
		fb.Set(x, y, r, g, b, a)
		v += slope
	}
}

func fract(v float32) float32 {
	return v - float32(math.Floor(float64(v)))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
