// Package bsp builds a Binary Space Partitioning tree from a flat list of
// directed 2D line segments: choosing a splitter, splitting segments that
// straddle it (inserting new vertices into the shared pool), and emitting
// convex leaf sectors where the remaining segment list no longer needs
// dividing.
package bsp

import (
	"errors"
	"fmt"

	"github.com/bloodmagesoftware/sectorcast/geom"
)

// VertexIndex refers into a Builder's vertex pool. The pool only grows
// during construction and never shrinks or reorders, so an index remains
// valid for the lifetime of the Tree it produced.
type VertexIndex int

// LineSegment is a directed wall: its front (visible) face is the side to
// the left of the v1->v2 direction, per geom.Side's convention.
type LineSegment struct {
	V1, V2 VertexIndex
}

// RefKind tags whether a ChildRef points at an internal Node or a leaf
// Sector, in place of a high-bit-tagged index for the front/back
// reference: a plain sum type needs no bit-reservation convention and
// can't silently alias a large node pool into the sector flag.
type RefKind int

const (
	RefNode RefKind = iota
	RefSector
)

// ChildRef is a tagged reference to either a Node or a Sector by index
// into the Tree's respective pool.
type ChildRef struct {
	Kind  RefKind
	Index int
}

// Sector is a convex leaf region: an ordered list of bounding segments, all
// front-facing inward.
type Sector struct {
	Segments []LineSegment
}

// Node is a BSP internal node: a splitting segment and its two children.
type Node struct {
	Splitter    LineSegment
	Left, Right ChildRef
}

// Tree is the immutable result of a successful Build: a shared vertex
// pool plus node and sector pools, addressed by index from Root down.
type Tree struct {
	Vertices []geom.Vec2
	Nodes    []Node
	Sectors  []Sector
	Root     ChildRef
}

// ErrEmptyInput is returned when Build is called with zero segments.
var ErrEmptyInput = errors.New("bsp: empty segment input")

// ErrDegenerateSplitter is returned when the root splitter cannot
// classify any other segment in the input (every other segment lies on
// its line within geom.Epsilon), so the build produces no split at all.
var ErrDegenerateSplitter = errors.New("bsp: degenerate root splitter")

// Builder accumulates a vertex pool while recursively partitioning an
// input segment list into a Tree. A Builder is single-use: its node and
// sector pools belong to exactly one Tree.
type Builder struct {
	vertices []geom.Vec2
	nodes    []Node
	sectors  []Sector
}

// NewBuilder creates a Builder seeded with the given vertex pool. The
// slice is copied; Build appends to its own copy as straddling segments
// are split.
func NewBuilder(vertices []geom.Vec2) *Builder {
	b := &Builder{vertices: make([]geom.Vec2, len(vertices))}
	copy(b.vertices, vertices)
	return b
}

// Build partitions segments into a Tree.
func (b *Builder) Build(segments []LineSegment) (*Tree, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyInput
	}

	if isDegenerateSplitter(b.vertices, segments) {
		return nil, fmt.Errorf("%w: splitter classifies no other segment", ErrDegenerateSplitter)
	}

	root := b.partition(segments)

	return &Tree{
		Vertices: b.vertices,
		Nodes:    b.nodes,
		Sectors:  b.sectors,
		Root:     root,
	}, nil
}

// isDegenerateSplitter reports whether segments[0], used as a splitter,
// classifies every other segment as collinear (on its own line within
// epsilon). This only needs checking once, at the root: a deeper
// recursion that hits the same condition terminates via the convexity
// test instead (the whole sub-list becomes a single sector).
func isDegenerateSplitter(vertices []geom.Vec2, segments []LineSegment) bool {
	if len(segments) < 2 {
		return false
	}
	splitter := segments[0]
	a := vertices[splitter.V1]
	c := vertices[splitter.V2]
	for _, seg := range segments[1:] {
		p := vertices[seg.V1]
		q := vertices[seg.V2]
		if geom.Side(a, c, p) != 0 || geom.Side(a, c, q) != 0 {
			return false
		}
	}
	return true
}

// partition implements the recursive builder algorithm: pick segments[0]
// as splitter, classify and split the rest against its infinite line,
// place the splitter itself, then recurse or leaf each side depending on
// convexity.
func (b *Builder) partition(segments []LineSegment) ChildRef {
	splitter := segments[0]
	a := b.vertices[splitter.V1]
	c := b.vertices[splitter.V2]

	var left, right []LineSegment

	for _, seg := range segments[1:] {
		p := b.vertices[seg.V1]
		q := b.vertices[seg.V2]
		sideP := geom.Side(a, c, p)
		sideQ := geom.Side(a, c, q)

		switch {
		case sideP*sideQ == -1:
			// True straddle: split at the infinite-line intersection,
			// inserting a new vertex, and route each fragment to its side.
			x, ok := geom.LineIntersect(a, c, p, q)
			if !ok {
				// Shouldn't happen given sideP*sideQ==-1, but avoid
				// corrupting the tree with a bogus vertex if it does.
				left = append(left, seg)
				continue
			}
			xi := VertexIndex(len(b.vertices))
			b.vertices = append(b.vertices, x)
			frag1 := LineSegment{V1: seg.V1, V2: xi}
			frag2 := LineSegment{V1: xi, V2: seg.V2}
			if sideP == -1 {
				left = append(left, frag1)
				right = append(right, frag2)
			} else {
				right = append(right, frag1)
				left = append(left, frag2)
			}
		case sideP == 0 && sideQ == 0:
			// Collinear: part of this partition's on-line set.
			left = append(left, seg)
		case sideP != 1 && sideQ != 1:
			// Front, or front+on-line.
			left = append(left, seg)
		default:
			// Back, or back+on-line.
			right = append(right, seg)
		}
	}

	// Place the splitter itself: left, unless left is empty.
	if len(left) == 0 {
		right = append(right, splitter)
	} else {
		left = append(left, splitter)
	}

	return b.makeNode(splitter, left, right)
}

// makeNode resolves left/right to leaf-or-recurse child refs and
// allocates the owning Node.
func (b *Builder) makeNode(splitter LineSegment, left, right []LineSegment) ChildRef {
	leftRef := b.childRef(left)
	rightRef := b.childRef(right)

	idx := len(b.nodes)
	b.nodes = append(b.nodes, Node{
		Splitter: splitter,
		Left:     leftRef,
		Right:    rightRef,
	})
	return ChildRef{Kind: RefNode, Index: idx}
}

// childRef decides whether a partitioned segment list is a leaf (convex
// sector) or needs further recursion, and returns the resulting ref.
func (b *Builder) childRef(segments []LineSegment) ChildRef {
	if len(segments) == 0 {
		idx := len(b.sectors)
		b.sectors = append(b.sectors, Sector{})
		return ChildRef{Kind: RefSector, Index: idx}
	}
	if b.isConvex(segments) {
		idx := len(b.sectors)
		b.sectors = append(b.sectors, Sector{Segments: segments})
		return ChildRef{Kind: RefSector, Index: idx}
	}
	return b.partition(segments)
}

// isConvex implements the convexity test: for every ordered pair (i, j
// != i) in the list, both endpoints of segment j must be on the front
// side or exactly on segment i's line. A crossing pair, or any back-side
// endpoint, fails the test.
func (b *Builder) isConvex(segments []LineSegment) bool {
	for _, si := range segments {
		a := b.vertices[si.V1]
		c := b.vertices[si.V2]
		for _, sj := range segments {
			if sj == si {
				continue
			}
			p := b.vertices[sj.V1]
			q := b.vertices[sj.V2]
			sideP := geom.Side(a, c, p)
			sideQ := geom.Side(a, c, q)
			if sideP*sideQ == -1 {
				return false
			}
			if sideP == 1 || sideQ == 1 {
				return false
			}
		}
	}
	return true
}
