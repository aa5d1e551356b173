package geom

import (
	"math"
	"testing"
)

func TestSide(t *testing.T) {
	cases := []struct {
		name    string
		a, b, p Vec2
		want    int
	}{
		{"front (left)", Vec2{0, 0}, Vec2{10, 0}, Vec2{5, 5}, -1},
		{"back (right)", Vec2{0, 0}, Vec2{10, 0}, Vec2{5, -5}, 1},
		{"on the line", Vec2{0, 0}, Vec2{10, 0}, Vec2{5, 0}, 0},
		{"near-parallel within epsilon", Vec2{0, 0}, Vec2{10, 0}, Vec2{5, 1e-7}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Side(tc.a, tc.b, tc.p); got != tc.want {
				t.Errorf("Side() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLineIntersect(t *testing.T) {
	p, ok := LineIntersect(Vec2{-10, 0}, Vec2{10, 0}, Vec2{0, -10}, Vec2{0, 10})
	if !ok {
		t.Fatalf("expected intersection")
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("got %+v, want (0,0)", p)
	}
}

func TestLineIntersect_Parallel(t *testing.T) {
	_, ok := LineIntersect(Vec2{0, 0}, Vec2{10, 0}, Vec2{0, 1}, Vec2{10, 1})
	if ok {
		t.Fatalf("expected no intersection for parallel lines")
	}
}

func TestSegmentIntersect_OutOfRange(t *testing.T) {
	// The first pair is parallel; the second pair's lines cross at (0,0)
	// but the segments themselves don't reach it.
	_, ok := SegmentIntersect(Vec2{1, 1}, Vec2{10, 1}, Vec2{1, -1}, Vec2{10, -1})
	if ok {
		t.Fatalf("expected no intersection: segments are parallel")
	}
	_, ok = SegmentIntersect(Vec2{5, 5}, Vec2{10, 10}, Vec2{-5, 5}, Vec2{-10, 10})
	if ok {
		t.Fatalf("expected no intersection: segments don't reach crossing point")
	}
}

func TestRotate_QuarterTurn(t *testing.T) {
	v := Vec2{1, 0}.Rotate(math.Pi / 2)
	if math.Abs(float64(v.X)) > 1e-5 || math.Abs(float64(v.Y)-1) > 1e-5 {
		t.Errorf("got %+v, want (0,1)", v)
	}
}

func TestSignedAngle(t *testing.T) {
	a := Vec2{0, 1}
	b := Vec2{1, 0}
	angle := SignedAngle(a, b)
	if math.Abs(float64(angle)+math.Pi/2) > 1e-5 {
		t.Errorf("got %v, want -pi/2", angle)
	}
}
