// Package present drives a live gio window over the render pipeline: it
// blits each rendered Framebuffer, forwards keyboard input into a
// CameraController, draws a small pose HUD, and can export a screenshot.
package present

import (
	"math"

	"github.com/bloodmagesoftware/sectorcast/world"
)

// Movement/turn rates, applied per second of frame time, matched to the reference implementation's
// WASD/arrow-key camera controls.
const (
	moveSpeed = 90.0  // world units per second
	turnSpeed = 1.8   // radians per second
	riseSpeed = 60.0  // world units per second, ascend/descend
)

// CameraController integrates discrete per-frame key state into updated
// Camera state, the collaborator the core's frame driver consumes between
// frames. It is the live, interactive counterpart to a scripted replay.
type CameraController struct {
	Forward, Back   bool
	StrafeL, StrafeR bool
	TurnL, TurnR    bool
	Ascend, Descend bool
}

// Advance returns the camera state for the next frame, dt seconds after
// cam, given the controller's current key state.
func (c *CameraController) Advance(cam world.Camera, dt float32) world.Camera {
	forward := float32(0)
	if c.Forward {
		forward++
	}
	if c.Back {
		forward--
	}
	strafe := float32(0)
	if c.StrafeR {
		strafe++
	}
	if c.StrafeL {
		strafe--
	}
	turn := float32(0)
	if c.TurnL {
		turn++
	}
	if c.TurnR {
		turn--
	}
	rise := float32(0)
	if c.Ascend {
		rise++
	}
	if c.Descend {
		rise--
	}

	angle := cam.ViewAngle
	dir := float32(math.Cos(float64(angle)))
	dirY := float32(math.Sin(float64(angle)))
	// Strafe direction is forward rotated -90 degrees.
	strafeX := float32(math.Cos(float64(angle) - math.Pi/2))
	strafeY := float32(math.Sin(float64(angle) - math.Pi/2))

	cam.Pos.X += (dir*forward + strafeX*strafe) * moveSpeed * dt
	cam.Pos.Y += (dirY*forward + strafeY*strafe) * moveSpeed * dt
	cam.ViewAngle += turn * turnSpeed * dt
	cam.Height += rise * riseSpeed * dt

	return cam
}
