package render

import (
	"testing"

	"github.com/bloodmagesoftware/sectorcast/bsp"
	"github.com/bloodmagesoftware/sectorcast/geom"
	"github.com/bloodmagesoftware/sectorcast/world"
)

type solidTexture struct {
	w, h       int
	r, g, b, a byte
}

func (s solidTexture) Dimensions() (int, int) { return s.w, s.h }
func (s solidTexture) At(x, y int) (r, g, b, a byte) {
	return s.r, s.g, s.b, s.a
}

func squareWorld(t *testing.T) *world.World {
	t.Helper()
	verts := []geom.Vec2{
		{X: -100, Y: -100}, {X: 100, Y: -100}, {X: 100, Y: 100}, {X: -100, Y: 100},
	}
	segs := []bsp.LineSegment{{V1: 0, V2: 1}, {V1: 1, V2: 2}, {V1: 2, V2: 3}, {V1: 3, V2: 0}}
	w, err := world.BuildWorld(verts, segs, 0, 64)
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}
	return w
}

// TestRenderFrame_Bounds checks that rendering never resizes the
// framebuffer's backing slice, since Framebuffer.Set and Clear only ever
// address [0,SW)x[0,SH).
func TestRenderFrame_Bounds(t *testing.T) {
	w := squareWorld(t)
	cam := world.Camera{Pos: geom.Vec2{}, ViewAngle: 3.14159 / 2, Height: 32}
	wallTex := solidTexture{w: 4, h: 4, r: 200, g: 100, b: 50, a: 255}
	planeTex := solidTexture{w: 4, h: 4, r: 10, g: 20, b: 30, a: 255}
	fb := NewFramebuffer()

	RenderFrame(w, cam, wallTex, planeTex, fb)

	if len(fb.Pix) != SW*SH*4 {
		t.Fatalf("framebuffer size changed: got %d, want %d", len(fb.Pix), SW*SH*4)
	}
}

// TestRenderFrame_Deterministic checks that identical inputs produce
// byte-identical output.
func TestRenderFrame_Deterministic(t *testing.T) {
	w := squareWorld(t)
	cam := world.Camera{Pos: geom.Vec2{}, ViewAngle: 3.14159 / 2, Height: 32}
	wallTex := solidTexture{w: 4, h: 4, r: 200, g: 100, b: 50, a: 255}
	planeTex := solidTexture{w: 4, h: 4, r: 10, g: 20, b: 30, a: 255}

	fb1 := NewFramebuffer()
	fb2 := NewFramebuffer()
	RenderFrame(w, cam, wallTex, planeTex, fb1)
	RenderFrame(w, cam, wallTex, planeTex, fb2)

	if len(fb1.Pix) != len(fb2.Pix) {
		t.Fatalf("length mismatch")
	}
	for i := range fb1.Pix {
		if fb1.Pix[i] != fb2.Pix[i] {
			t.Fatalf("frame not deterministic at byte %d: %d != %d", i, fb1.Pix[i], fb2.Pix[i])
		}
	}
}

// TestDrawWall_BackfaceCulled checks that a wall whose front-normal
// points away from the camera writes no wall-colored pixels.
func TestDrawWall_BackfaceCulled(t *testing.T) {
	fb := NewFramebuffer()
	wallTex := solidTexture{w: 4, h: 4, r: 255, g: 255, b: 255, a: 255}
	planeTex := solidTexture{w: 4, h: 4, r: 1, g: 1, b: 1, a: 255}

	// Single wall (0,0)->(100,0). Camera at (50,50) looking -Y
	// (view_angle = -pi/2): the wall's front faces away from the camera.
	cam := world.Camera{Pos: geom.Vec2{X: 50, Y: 50}, ViewAngle: -3.14159265 / 2, Height: 32}
	seg := wallSegment{
		V1: geom.Vec2{X: 0, Y: 0}, V2: geom.Vec2{X: 100, Y: 0},
		FloorHeight: 0, CeilingHeight: 64, Tex: wallTex,
	}

	before := make([]byte, len(fb.Pix))
	copy(before, fb.Pix)

	drawWall(fb, cam, seg, planeTex)

	wallPixelWritten := false
	for i := 0; i < len(fb.Pix); i += 4 {
		if fb.Pix[i] == 255 && fb.Pix[i+1] == 255 && fb.Pix[i+2] == 255 {
			wallPixelWritten = true
			break
		}
	}
	if wallPixelWritten {
		t.Fatalf("expected backface-culled wall to write zero wall pixels")
	}
}

// TestDrawWall_FrontFacingRenders checks that the same wall seen from
// the front produces at least one wall-colored pixel.
func TestDrawWall_FrontFacingRenders(t *testing.T) {
	fb := NewFramebuffer()
	wallTex := solidTexture{w: 4, h: 4, r: 255, g: 255, b: 255, a: 255}
	planeTex := solidTexture{w: 4, h: 4, r: 1, g: 1, b: 1, a: 255}

	cam := world.Camera{Pos: geom.Vec2{X: 50, Y: -50}, ViewAngle: 3.14159265 / 2, Height: 32}
	seg := wallSegment{
		V1: geom.Vec2{X: 0, Y: 0}, V2: geom.Vec2{X: 100, Y: 0},
		FloorHeight: 0, CeilingHeight: 64, Tex: wallTex,
	}

	drawWall(fb, cam, seg, planeTex)

	wallPixelWritten := false
	for i := 0; i < len(fb.Pix); i += 4 {
		if fb.Pix[i] == 255 && fb.Pix[i+1] == 255 && fb.Pix[i+2] == 255 {
			wallPixelWritten = true
			break
		}
	}
	if !wallPixelWritten {
		t.Fatalf("expected front-facing wall to write at least one wall pixel")
	}
}
