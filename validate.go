package bricklayer

import (
	"fmt"
	"strconv"
)

// Validate checks a Solution against a Problem's three constraints —
// topology (A), elasticity (B), containment (C) — aggregating every
// failure into a *CompoundError rather than stopping at the first one, so a
// caller can see every reason a pose was rejected. A vertex-count mismatch
// is itself constraint A's failure mode (KindTopology); when it occurs, B
// and C can't be safely evaluated (there's no posed endpoint to read for
// some figure vertex), so Validate reports only the topology failure.
func Validate(problem Problem, sol Solution) error {
	if topologyErr := checkTopology(problem.Figure, sol); topologyErr != nil {
		return &CompoundError{Failures: []*ValidationError{topologyErr}}
	}

	var failures []*ValidationError
	if errs := checkElasticity(problem.Figure, sol, problem.Epsilon); len(errs) > 0 {
		failures = append(failures, errs...)
	}
	if err := checkContainment(problem.Hole, problem.Figure, sol); err != nil {
		failures = append(failures, err)
	}

	if len(failures) == 0 {
		return nil
	}
	return &CompoundError{Failures: failures}
}

// checkTopology implements constraint A. A Solution carries no edges of its
// own (it's a pose, not a graph): the figure's edge set is fixed at
// construction (NewFigureIndex rejects out-of-range edges), so the only way
// a Solution can fail to preserve it is by assigning the wrong number of
// positions.
func checkTopology(fig Figure, sol Solution) *ValidationError {
	if len(sol.Vertices) != len(fig.Vertices) {
		return &ValidationError{Kind: KindTopology, Detail: "vertex count mismatch"}
	}
	return nil
}

// checkElasticity implements constraint B using the integer test the spec
// prefers: |1e6*L' - 1e6*L| <= eps*L, evaluated per edge.
func checkElasticity(fig Figure, sol Solution, epsilon uint32) []*ValidationError {
	var errs []*ValidationError
	for k, e := range fig.Edges {
		l := squaredDistance(fig.Vertices[e.Start], fig.Vertices[e.End])
		lPrime := squaredDistance(sol.Vertices[e.Start], sol.Vertices[e.End])

		lhs := int64(1_000_000)*lPrime - int64(1_000_000)*l
		if lhs < 0 {
			lhs = -lhs
		}
		rhs := int64(epsilon) * l
		if lhs > rhs {
			errs = append(errs, &ValidationError{
				Kind: KindOverstretched,
				Detail: sprintEdgeStretch(k, e, l, lPrime),
			})
		}
	}
	return errs
}

func sprintEdgeStretch(k int, e Edge, l, lPrime int64) string {
	return "edge " + strconv.Itoa(k) + " (" + strconv.Itoa(e.Start) + "-" + strconv.Itoa(e.End) + "): " +
		"L=" + strconv.FormatInt(l, 10) + " L'=" + strconv.FormatInt(lPrime, 10)
}

// checkContainment implements constraint C: every point of every posed
// figure edge segment must lie inside or on the boundary of the hole. The
// pass/fail decision is always the exact integer test (endpoints in H, no
// proper crossing of a hole edge — see segmentCrossesOutside), per §9's
// preference for exact arithmetic; the float distance from the offending
// point to the hole boundary (euclideanDistanceToPolygon, the tolerance
// fallback named in §4.1) is used only to make the rejection's Detail
// message informative, never to decide containment itself.
func checkContainment(hole Hole, fig Figure, sol Solution) *ValidationError {
	for _, e := range fig.Edges {
		a, b := sol.Vertices[e.Start], sol.Vertices[e.End]
		if !insideOrOnBoundary(a, hole.Vertices) {
			return &ValidationError{Kind: KindOutsideHole, Detail: sprintOutside("edge endpoint", a, hole.Vertices)}
		}
		if !insideOrOnBoundary(b, hole.Vertices) {
			return &ValidationError{Kind: KindOutsideHole, Detail: sprintOutside("edge endpoint", b, hole.Vertices)}
		}
		if p, outside := segmentCrossesOutside(a, b, hole.Vertices); outside {
			return &ValidationError{Kind: KindOutsideHole, Detail: sprintOutside("edge segment", p, hole.Vertices)}
		}
	}
	return nil
}

// sprintOutside reports a violating point together with its euclidean
// distance to the hole boundary, for a human reading the rejection reason.
func sprintOutside(what string, p Position, hole []Position) string {
	d := euclideanDistanceToPolygon(p, hole)
	return fmt.Sprintf("%s outside hole at %v (~%.2f units beyond boundary)", what, p, d)
}

// segmentCrossesOutside reports whether segment [a,b] exits the hole
// polygon: true if some hole edge properly crosses [a,b] (a transversal
// intersection, not a shared endpoint or overlapping collinear run), which
// for a simple polygon implies part of [a,b] lies outside. When it reports
// true, the returned Position is [a,b]'s midpoint, for use as a diagnostic
// stand-in for "the point that's outside" in an error message; it plays no
// part in the decision itself.
func segmentCrossesOutside(a, b Position, hole []Position) (Position, bool) {
	mid := Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}

	n := len(hole)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if segmentsProperlyIntersect(a, b, hole[i], hole[j]) {
			return mid, true
		}
	}
	// Endpoints are both in H and the edge crosses no hole boundary edge
	// properly. Any other contact with the boundary happens at a or b or at
	// a hole vertex lying on [a,b] (the segment can leave the hole through
	// such a vertex, e.g. across the mouth of a concave indentation).
	// Between two consecutive such stops the segment is wholly inside or
	// wholly outside, so sampling the midpoint of every pair of stops,
	// scaled by 2 to keep the sample on the integer lattice, decides it.
	stops := []Position{a, b}
	for _, v := range hole {
		if onSegment(v, a, b) {
			stops = append(stops, v)
		}
	}
	for i := range stops {
		for j := i + 1; j < len(stops); j++ {
			scaledMid := Position{X: stops[i].X + stops[j].X, Y: stops[i].Y + stops[j].Y}
			if !midpointInsideScaled(scaledMid, hole) {
				return mid, true
			}
		}
	}
	return Position{}, false
}

func midpointInsideScaled(mid2x Position, hole []Position) bool {
	scaled := make([]Position, len(hole))
	for i, p := range hole {
		scaled[i] = Position{X: p.X * 2, Y: p.Y * 2}
	}
	return insideOrOnBoundary(mid2x, scaled)
}

func orient(a, b, c Position) int64 {
	return int64(b.X-a.X)*int64(c.Y-a.Y) - int64(b.Y-a.Y)*int64(c.X-a.X)
}

// segmentsProperlyIntersect reports whether [p1,p2] and [p3,p4] cross at a
// point interior to both segments (not merely touching at an endpoint).
func segmentsProperlyIntersect(p1, p2, p3, p4 Position) bool {
	d1 := orient(p3, p4, p1)
	d2 := orient(p3, p4, p2)
	d3 := orient(p1, p2, p3)
	d4 := orient(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

// ComputeDislikes returns the dislikes score of a pose: for every hole
// vertex, the squared distance to the nearest pose vertex, summed. Per §6
// it only errors (a *ValidationError of KindTopology) on vertex-count
// mismatch; it does not otherwise validate the pose, since dislikes is
// orthogonal to constraints A/B/C.
func ComputeDislikes(problem Problem, sol Solution) (int, error) {
	if len(sol.Vertices) != len(problem.Figure.Vertices) {
		return 0, &ValidationError{Kind: KindTopology, Detail: "vertex count mismatch"}
	}
	total := int64(0)
	for _, h := range problem.Hole.Vertices {
		best := int64(-1)
		for _, v := range sol.Vertices {
			d := squaredDistance(h, v)
			if best < 0 || d < best {
				best = d
			}
		}
		if best > 0 {
			total += best
		}
	}
	return int(total), nil
}

// lessDislikes is used by the search engine's tie-breaking rule: strictly
// better (lower) dislikes wins; equal dislikes keeps the earlier discovery.
func lessDislikes(a, b int) bool { return a < b }
