// Package bricklayer solves the ICFP 2021 "Brick Layer" pose puzzle: given a
// polygonal hole and an articulated figure (a graph of vertices and edges with
// a per-problem elasticity), find an assignment of integer coordinates to the
// figure's vertices — a pose — under which every edge's length is preserved
// within tolerance and every edge segment stays inside the hole.
package bricklayer

import "fmt"

// Position is an integer point on the puzzle's lattice. Inputs carry
// non-negative coordinates; intermediate arithmetic (offsets, differences)
// is signed and is not represented by this type.
type Position struct {
	X, Y int32
}

// Edge is an unordered pair of indices into a Figure's vertex slice.
type Edge struct {
	Start, End int
}

// other returns the endpoint of e that isn't v, and whether v is an endpoint
// of e at all.
func (e Edge) other(v int) (int, bool) {
	switch v {
	case e.Start:
		return e.End, true
	case e.End:
		return e.Start, true
	default:
		return 0, false
	}
}

// Figure is the articulated graph to be posed: an ordered sequence of
// vertices and the edges connecting them. A Figure is immutable once
// constructed.
type Figure struct {
	Vertices []Position
	Edges    []Edge
}

// Hole is the ordered vertex sequence of a simple closed polygon; the
// closing edge between the last and first vertex is implicit.
type Hole struct {
	Vertices []Position
}

// Problem bundles a hole, a figure and the figure's elasticity, expressed in
// millionths (an edge may stretch or compress by at most Epsilon/1e6 of its
// original squared length).
type Problem struct {
	Hole    Hole
	Figure  Figure
	Epsilon uint32
}

// Solution (a Pose, once validated) assigns one Position to every vertex of
// a Figure, in the same index order as Figure.Vertices.
type Solution struct {
	Vertices []Position
}

// checkWellFormed validates the structural preconditions every constructor
// in this package relies on: the figure's edges must reference vertices that
// exist. It returns a MalformedInput error wrapping the specific sentinel.
func (p Problem) checkWellFormed() error {
	n := len(p.Figure.Vertices)
	for i, e := range p.Figure.Edges {
		if e.Start < 0 || e.Start >= n || e.End < 0 || e.End >= n {
			return &MalformedInputError{
				Err: fmt.Errorf("%w: edge %d references vertex out of [0,%d)", ErrEdgeIndexOutOfRange, i, n),
			}
		}
	}
	return nil
}
