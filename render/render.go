// Package render implements the rendering pipeline: the Framebuffer and
// Texture contracts, the perspective-correct wall rasterizer, the
// inverse-projected floor/ceiling plane rasterizer, and the BSP-traversal
// frame driver that ties them together.
package render

import "math"

// Fixed numeric constants the renderer depends on. These are compile-time
// constants of the core, not runtime configuration.
const (
	SW = 640 // framebuffer width in pixels
	SH = 400 // framebuffer height in pixels

	FOVDegrees = 90.0
	TileSize   = 32 // world units per floor/ceiling texture tile

	Epsilon = 1e-6
)

// FOV is FOVDegrees in radians.
var FOV = float32(FOVDegrees * math.Pi / 180)

// YScale corrects screen-space Y for the non-square aspect ratio of a
// SW x SH framebuffer relative to a unit projection plane.
var YScale = float32(SW) / float32(SH)

// F is the focal length: the distance from the eye to a unit-half-width
// projection plane, derived from the field of view.
var F = float32(1 / math.Tan(float64(FOV)/2))

// Texture is a read-only 2D array of 32-bit RGBA pixels. texture.Texture
// satisfies this.
type Texture interface {
	Dimensions() (width, height int)
	At(x, y int) (r, g, b, a byte)
}

// Framebuffer is a write-only SW x SH array of 32-bit RGBA pixels,
// row-major, origin top-left.
type Framebuffer struct {
	Pix []byte // RGBA, stride SW*4
}

// NewFramebuffer allocates a zeroed SW x SH framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{Pix: make([]byte, SW*SH*4)}
}

// Clear overwrites every pixel with the given color.
func (fb *Framebuffer) Clear(r, g, b, a byte) {
	for i := 0; i < SW*SH; i++ {
		o := i * 4
		fb.Pix[o] = r
		fb.Pix[o+1] = g
		fb.Pix[o+2] = b
		fb.Pix[o+3] = a
	}
}

// Set writes a pixel at (x,y). Out-of-bounds writes are impossible by
// construction everywhere this is called from within this package: every
// caller clamps y to [0,SH) and only ever emits x in [0,SW).
func (fb *Framebuffer) Set(x, y int, r, g, b, a byte) {
	if x < 0 || x >= SW || y < 0 || y >= SH {
		return
	}
	o := (y*SW + x) * 4
	fb.Pix[o] = r
	fb.Pix[o+1] = g
	fb.Pix[o+2] = b
	fb.Pix[o+3] = a
}
