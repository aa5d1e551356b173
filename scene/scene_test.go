package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloodmagesoftware/sectorcast/bsp"
	"github.com/bloodmagesoftware/sectorcast/world"
)

func TestExample_BuildsWorld(t *testing.T) {
	s := Example()
	w, err := world.BuildWorld(s.GeomVertices(), s.BspSegments(), s.FloorHeight, s.CeilingHeight)
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}
	if len(w.Tree.Sectors) == 0 {
		t.Fatalf("expected at least one sector")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := Example()
	path := filepath.Join(t.TempDir(), "demo.yaml")

	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Vertices) != len(s.Vertices) {
		t.Fatalf("vertex count mismatch: got %d, want %d", len(loaded.Vertices), len(s.Vertices))
	}
	if len(loaded.Segments) != len(s.Segments) {
		t.Fatalf("segment count mismatch: got %d, want %d", len(loaded.Segments), len(s.Segments))
	}
	if loaded.WallTexture != s.WallTexture {
		t.Fatalf("wall texture mismatch: got %q, want %q", loaded.WallTexture, s.WallTexture)
	}
}

func TestBspSegments_IndicesPreserved(t *testing.T) {
	s := &Scene{
		Segments: []Segment{{V1: 2, V2: 5}},
	}
	got := s.BspSegments()
	if got[0] != (bsp.LineSegment{V1: 2, V2: 5}) {
		t.Fatalf("got %+v", got[0])
	}
}
