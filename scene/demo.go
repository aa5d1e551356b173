package scene

// Example returns the two-room-plus-pillar demo map: a hallway loop of 14
// vertices (two adjoining rooms) plus a small square pillar of 4 vertices
// at the center, the same geometry sectorcast's reference implementation
// shipped as its hardcoded starting map.
func Example() *Scene {
	return &Scene{
		Vertices: []Vec2{
			{X: -256, Y: 256},
			{X: -128, Y: 256},
			{X: -128, Y: 128},
			{X: 0, Y: 128},
			{X: 128, Y: 128},
			{X: 128, Y: 256},
			{X: 256, Y: 256},

			{X: 256, Y: -256},
			{X: 128, Y: -256},
			{X: 128, Y: -128},
			{X: 0, Y: -128},
			{X: -128, Y: -128},
			{X: -128, Y: -256},
			{X: -256, Y: -256},

			{X: 32, Y: 32},
			{X: -32, Y: 32},
			{X: -32, Y: -32},
			{X: 32, Y: -32},
		},
		Segments: []Segment{
			{V1: 0, V2: 1},
			{V1: 1, V2: 2},
			{V1: 2, V2: 3},
			{V1: 3, V2: 4},
			{V1: 4, V2: 5},
			{V1: 5, V2: 6},
			{V1: 6, V2: 7},

			{V1: 7, V2: 8},
			{V1: 8, V2: 9},
			{V1: 9, V2: 10},
			{V1: 10, V2: 11},
			{V1: 11, V2: 12},
			{V1: 12, V2: 13},
			{V1: 13, V2: 0},

			{V1: 14, V2: 15},
			{V1: 15, V2: 16},
			{V1: 16, V2: 17},
			{V1: 17, V2: 14},
		},
		FloorHeight:   0,
		CeilingHeight: 64,
		WallTexture:   "greenman.qoi",
		PlaneTexture:  "greenman.qoi",
		Spawn: Spawn{
			Position:  Vec2{X: 0, Y: 0},
			Height:    40,
			ViewAngle: 90,
		},
	}
}
