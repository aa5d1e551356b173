// Package texture implements the render.Texture contract backed by an
// in-memory RGBA pixel array, with QOI codec support for loading wall and
// plane art from disk and for saving framebuffer screenshots.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/xfmoulet/qoi"
)

// Texture is a read-only 2D array of 32-bit RGBA pixels, row-major,
// satisfying render.Texture.
type Texture struct {
	Width, Height int
	Pix           []byte // RGBA, 4 bytes per pixel, stride Width*4
}

// At returns the RGBA pixel at (x,y). Callers are expected to keep x,y
// within bounds; the rasterizers that call this always wrap coordinates
// via tile fraction first.
func (t *Texture) At(x, y int) (r, g, b, a byte) {
	i := (y*t.Width + x) * 4
	return t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3]
}

// Dimensions satisfies render.Texture.
func (t *Texture) Dimensions() (width, height int) {
	return t.Width, t.Height
}

// New allocates a blank, fully transparent texture of the given size,
// used by callers that need a placeholder before a real asset loads.
func New(width, height int) *Texture {
	return &Texture{Width: width, Height: height, Pix: make([]byte, width*height*4)}
}

// FromImage copies a decoded image.Image into a Texture's packed RGBA
// layout.
func FromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	t := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 4
			t.Pix[i] = byte(r >> 8)
			t.Pix[i+1] = byte(g >> 8)
			t.Pix[i+2] = byte(b >> 8)
			t.Pix[i+3] = byte(a >> 8)
		}
	}
	return t
}

// LoadQOI decodes a QOI-encoded texture from r.
func LoadQOI(r io.Reader) (*Texture, error) {
	img, err := qoi.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding qoi texture: %w", err)
	}
	return FromImage(img), nil
}

// LoadQOIFile opens and decodes a QOI texture file by path.
func LoadQOIFile(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture %s: %w", path, err)
	}
	defer f.Close()
	return LoadQOI(f)
}

// imageView adapts a Texture to image.Image so it can be handed to
// qoi.Encode directly when saving a screenshot.
type imageView struct {
	t *Texture
}

func (v *imageView) ColorModel() color.Model { return color.RGBAModel }
func (v *imageView) Bounds() image.Rectangle { return image.Rect(0, 0, v.t.Width, v.t.Height) }
func (v *imageView) At(x, y int) color.Color {
	r, g, b, a := v.t.At(x, y)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// SaveQOI encodes t as QOI to w.
func SaveQOI(w io.Writer, t *Texture) error {
	if err := qoi.Encode(w, &imageView{t: t}); err != nil {
		return fmt.Errorf("encoding qoi texture: %w", err)
	}
	return nil
}
