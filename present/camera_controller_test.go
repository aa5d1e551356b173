package present

import (
	"math"
	"testing"

	"github.com/bloodmagesoftware/sectorcast/world"
)

func TestCameraController_Advance(t *testing.T) {
	cases := []struct {
		name string
		ctrl CameraController
		cam  world.Camera
		dt   float32
		want world.Camera
	}{
		{
			name: "turn left increases angle",
			ctrl: CameraController{TurnL: true},
			cam:  world.Camera{ViewAngle: 0},
			dt:   1,
			want: world.Camera{ViewAngle: turnSpeed},
		},
		{
			name: "ascend raises height",
			ctrl: CameraController{Ascend: true},
			cam:  world.Camera{Height: 10},
			dt:   2,
			want: world.Camera{Height: 10 + riseSpeed*2},
		},
		{
			name: "opposing keys cancel",
			ctrl: CameraController{Forward: true, Back: true, TurnL: true, TurnR: true},
			cam:  world.Camera{ViewAngle: 1.5},
			dt:   1,
			want: world.Camera{ViewAngle: 1.5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.ctrl.Advance(tc.cam, tc.dt)
			if math.Abs(float64(got.ViewAngle-tc.want.ViewAngle)) > 1e-4 {
				t.Errorf("ViewAngle = %v, want %v", got.ViewAngle, tc.want.ViewAngle)
			}
			if math.Abs(float64(got.Height-tc.want.Height)) > 1e-4 {
				t.Errorf("Height = %v, want %v", got.Height, tc.want.Height)
			}
		})
	}
}

func TestCameraController_ForwardMovesAlongHeading(t *testing.T) {
	ctrl := CameraController{Forward: true}
	cam := world.Camera{ViewAngle: float32(math.Pi / 2)}
	got := ctrl.Advance(cam, 1)

	if math.Abs(float64(got.Pos.X)) > 1e-3 {
		t.Errorf("expected no X movement facing +Y, got %v", got.Pos.X)
	}
	if got.Pos.Y <= 0 {
		t.Errorf("expected positive Y movement facing +Y, got %v", got.Pos.Y)
	}
}
