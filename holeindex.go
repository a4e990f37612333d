package bricklayer

import "sort"

// HoleIndex is the set of lattice points lying inside or on the boundary of
// a hole polygon. Construction is one-shot; the set is read-only and shared
// by every branch of a search.
type HoleIndex struct {
	hole   []Position
	points []Position // sorted by (X, Y); backs binary-search Contains
}

// NewHoleIndex builds the lattice point set of a hole by bounding-box
// enumeration (see boundedLatticePoints). The hole's own vertices are always
// members, since they lie on the boundary by construction.
func NewHoleIndex(hole Hole) *HoleIndex {
	pts := boundedLatticePoints(hole.Vertices)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	return &HoleIndex{hole: hole.Vertices, points: pts}
}

// Contains reports whether p is a lattice point of the hole, in O(log n).
func (h *HoleIndex) Contains(p Position) bool {
	i := sort.Search(len(h.points), func(i int) bool {
		if h.points[i].X != p.X {
			return h.points[i].X >= p.X
		}
		return h.points[i].Y >= p.Y
	})
	return i < len(h.points) && h.points[i] == p
}

// Len returns the number of lattice points in the index.
func (h *HoleIndex) Len() int { return len(h.points) }

// Points returns the lattice points of the hole in sorted order. The
// returned slice is shared with the index and must not be mutated.
func (h *HoleIndex) Points() []Position { return h.points }

// Vertices returns the hole's polygon vertices, in input order.
func (h *HoleIndex) Vertices() []Position { return h.hole }
