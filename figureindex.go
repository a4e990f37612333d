package bricklayer

import "github.com/aurelien-rainone/assertgo"

// EdgeProfile precomputes, for one figure edge, the original squared length,
// the admissible interval that length may drift within, and the
// first-quadrant ring of admissible integer offset vectors (AdjVecs).
type EdgeProfile struct {
	Edge         Edge
	OriginalLen2 int64 // L_k
	LowerLen2    int64 // L_k * (1 - eps/1e6), ceil
	UpperLen2    int64 // L_k * (1 + eps/1e6), floor
	AdjVecs      []offset
}

// admits reports whether the (dx, dy) offset between this edge's two posed
// endpoints is admissible, by binary search over AdjVecs.
func (p *EdgeProfile) admits(dx, dy int32) bool {
	return searchAdjVec(p.AdjVecs, dx, dy)
}

// FigureIndex holds one EdgeProfile per figure edge, plus the adjacency
// table mapping a vertex to the edges incident to it.
type FigureIndex struct {
	figure   Figure
	profiles []EdgeProfile
	adj      [][]int // adj[v] = indices into profiles, in input order
}

// NewFigureIndex precomputes a FigureIndex for fig under elasticity epsilon
// (in millionths). It returns a MalformedInputError if an edge references a
// vertex index out of range.
func NewFigureIndex(fig Figure, epsilon uint32) (*FigureIndex, error) {
	n := len(fig.Vertices)
	for _, e := range fig.Edges {
		if e.Start < 0 || e.Start >= n || e.End < 0 || e.End >= n {
			return nil, &MalformedInputError{Err: ErrEdgeIndexOutOfRange}
		}
	}

	profiles := make([]EdgeProfile, len(fig.Edges))
	adj := make([][]int, n)
	for k, e := range fig.Edges {
		l2 := squaredDistance(fig.Vertices[e.Start], fig.Vertices[e.End])
		lo, hi := elasticityBounds(l2, epsilon)
		profiles[k] = EdgeProfile{
			Edge:         e,
			OriginalLen2: l2,
			LowerLen2:    lo,
			UpperLen2:    hi,
			AdjVecs:      ringOffsets(lo, hi),
		}
		assert.True(isSortedOffsets(profiles[k].AdjVecs), "AdjVecs for edge %d must be sorted", k)

		adj[e.Start] = append(adj[e.Start], k)
		adj[e.End] = append(adj[e.End], k)
	}

	return &FigureIndex{figure: fig, profiles: profiles, adj: adj}, nil
}

// elasticityBounds computes the admissible squared-length interval
// [L*(1-eps/1e6), L*(1+eps/1e6)], each end rounded inward to the nearest
// integer inside the real-valued interval, so AdjVecs never admits an
// offset the real-valued constraint B would reject.
func elasticityBounds(l2 int64, epsilon uint32) (lo, hi int64) {
	num := l2 * int64(epsilon)
	lo = l2 - num/1_000_000 // l2 - floor(l2*eps/1e6): lo rounds up
	hi = l2 + num/1_000_000 // l2 + floor(l2*eps/1e6): hi rounds down
	if lo < 0 {
		lo = 0
	}
	return lo, hi
}

func isSortedOffsets(os []offset) bool {
	for i := 1; i < len(os); i++ {
		if !os[i-1].less(os[i]) {
			return false
		}
	}
	for _, o := range os {
		if o.DX < 0 || o.DY < 0 {
			return false
		}
	}
	return true
}

// Profile returns the EdgeProfile for edge index k.
func (fi *FigureIndex) Profile(k int) *EdgeProfile { return &fi.profiles[k] }

// IncidentEdges returns the edge indices incident to vertex v, in input
// order.
func (fi *FigureIndex) IncidentEdges(v int) []int { return fi.adj[v] }

// NumVertices returns the number of figure vertices.
func (fi *FigureIndex) NumVertices() int { return len(fi.figure.Vertices) }

// NumEdges returns the number of figure edges.
func (fi *FigureIndex) NumEdges() int { return len(fi.profiles) }

// Figure returns the original figure this index was built from.
func (fi *FigureIndex) Figure() Figure { return fi.figure }
