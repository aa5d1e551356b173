package present

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/bloodmagesoftware/sectorcast/platform"
	"github.com/bloodmagesoftware/sectorcast/render"
	"github.com/bloodmagesoftware/sectorcast/texture"
	"github.com/bloodmagesoftware/sectorcast/world"
)

// Window owns the live render loop: it advances the camera from key
// input, calls render.RenderFrame into a Framebuffer every tick, and
// blits the result as a gio image.
type Window struct {
	World      *world.World
	Camera     world.Camera
	WallTex    render.Texture
	PlaneTex   render.Texture
	Controller CameraController

	screenshotBtn widget.Clickable
	saveIcon      *widget.Icon
}

// Run opens a maximized window. The event loop runs on its own goroutine
// while app.Main runs on the goroutine that called Run, the split gio
// requires for its event loop. When the window is closed the process
// exits with status 0, so Run does not return.
func Run(w *world.World, cam world.Camera, wallTex, planeTex render.Texture) error {
	win := &Window{World: w, Camera: cam, WallTex: wallTex, PlaneTex: planeTex}

	icon, err := widget.NewIcon(icons.ContentSave)
	if err == nil {
		win.saveIcon = icon
	}

	if target, err := platform.DetectCurrent(); err == nil {
		log.Printf("present: running on %s", target)
	}

	errCh := make(chan error, 1)
	go func() {
		window := new(app.Window)
		window.Perform(system.ActionMaximize)
		errCh <- win.loop(window)
		os.Exit(0)
	}()
	app.Main()
	return <-errCh
}

func (win *Window) loop(window *app.Window) error {
	theme := material.NewTheme()
	theme.Palette = material.Palette{
		Bg:         color.NRGBA{R: 20, G: 20, B: 20, A: 255},
		Fg:         color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		ContrastBg: color.NRGBA{R: 50, G: 50, B: 50, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}

	fb := render.NewFramebuffer()
	var ops op.Ops

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			win.handleKeys(gtx)
			win.Camera = win.Controller.Advance(win.Camera, 1.0/60.0)

			render.RenderFrame(win.World, win.Camera, win.WallTex, win.PlaneTex, fb)

			layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return win.layoutFramebuffer(gtx, fb)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return win.layoutControlBar(gtx, theme)
				}),
			)

			window.Invalidate()
			e.Frame(gtx.Ops)
		}
	}
}

// hudFace is the bitmap face the pose overlay is drawn with, stamped
// straight onto the framebuffer image before it is blitted.
var hudFace = basicfont.Face7x13

// drawPose stamps the camera's position/height/heading onto img's
// bottom-left corner using a font.Drawer, the same Dst/Src/Face/Dot
// plotting shape the overlay text path in the example renderer uses.
func drawPose(img *image.NRGBA, cam world.Camera) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: hudFace,
		Dot: fixed.Point26_6{
			X: fixed.I(6),
			Y: fixed.I(render.SH - 6),
		},
	}
	d.DrawString(poseText(cam))
}

func poseText(cam world.Camera) string {
	return fmt.Sprintf("pos (%.1f, %.1f)  h %.1f  angle %.1f", cam.Pos.X, cam.Pos.Y, cam.Height, cam.ViewAngle)
}

// layoutFramebuffer blits fb as a gio image scaled to fill the available
// space, the same paint.NewImageOp + op.Affine scaling pattern the
// editor's tile renderer uses for texture previews.
func (win *Window) layoutFramebuffer(gtx layout.Context, fb *render.Framebuffer) layout.Dimensions {
	img := image.NewNRGBA(image.Rect(0, 0, render.SW, render.SH))
	copy(img.Pix, fb.Pix)
	drawPose(img, win.Camera)

	size := gtx.Constraints.Max
	scaleX := float32(size.X) / float32(render.SW)
	scaleY := float32(size.Y) / float32(render.SH)

	scaleOp := op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Point{X: scaleX, Y: scaleY})).Push(gtx.Ops)
	paint.NewImageOp(img).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	scaleOp.Pop()

	return layout.Dimensions{Size: size}
}

// layoutControlBar draws the bottom strip holding the screenshot button;
// the pose readout itself is baked into the framebuffer image by drawPose.
func (win *Window) layoutControlBar(gtx layout.Context, theme *material.Theme) layout.Dimensions {
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
			paint.ColorOp{Color: theme.Palette.ContrastBg}.Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
			return layout.Dimensions{Size: gtx.Constraints.Max}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(8).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{Size: gtx.Constraints.Min}
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if win.saveIcon == nil {
							return layout.Dimensions{}
						}
						btn := material.IconButton(theme, &win.screenshotBtn, win.saveIcon, "screenshot")
						if win.screenshotBtn.Clicked(gtx) {
							win.saveScreenshot()
						}
						return btn.Layout(gtx)
					}),
				)
			})
		},
	)
}

var trackedKeys = []string{
	"W", "A", "S", "D", "Q", "E",
	key.NameUpArrow, key.NameDownArrow, key.NameLeftArrow, key.NameRightArrow,
}

func (win *Window) handleKeys(gtx layout.Context) {
	key.FocusOp{Tag: win}.Add(gtx.Ops)

	filters := make([]event.Filter, len(trackedKeys))
	for i, name := range trackedKeys {
		filters[i] = key.Filter{Focus: win, Name: key.Name(name)}
	}

	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok {
			continue
		}
		pressed := ke.State == key.Press
		switch ke.Name {
		case "W", key.NameUpArrow:
			win.Controller.Forward = pressed
		case "S", key.NameDownArrow:
			win.Controller.Back = pressed
		case "A":
			win.Controller.StrafeL = pressed
		case "D":
			win.Controller.StrafeR = pressed
		case key.NameLeftArrow:
			win.Controller.TurnL = pressed
		case key.NameRightArrow:
			win.Controller.TurnR = pressed
		case "Q":
			win.Controller.Descend = pressed
		case "E":
			win.Controller.Ascend = pressed
		}
	}
}

func (win *Window) saveScreenshot() {
	fb := render.NewFramebuffer()
	render.RenderFrame(win.World, win.Camera, win.WallTex, win.PlaneTex, fb)

	f, err := os.Create("screenshot.qoi")
	if err != nil {
		log.Printf("present: screenshot: %v", err)
		return
	}
	defer f.Close()

	shot := texture.New(render.SW, render.SH)
	copy(shot.Pix, fb.Pix)
	if err := texture.SaveQOI(f, shot); err != nil {
		log.Printf("present: screenshot: %v", err)
	}
}
