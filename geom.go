package bricklayer

import (
	"sort"

	"github.com/arl/gogeo/f32"
	"github.com/arl/math32"
)

// squaredDistance returns (p.X-q.X)^2 + (p.Y-q.Y)^2, computed in 64-bit
// signed arithmetic. Input coordinates are bounded (0 <= x,y <= 2^15) so the
// result never overflows int64 for any well-formed problem.
func squaredDistance(p, q Position) int64 {
	dx := int64(p.X) - int64(q.X)
	dy := int64(p.Y) - int64(q.Y)
	return dx*dx + dy*dy
}

// offset is a non-negative (dx, dy) pair: one quadrant-restricted entry of
// an edge's admissible displacement ring.
type offset struct {
	DX, DY int32
}

func (o offset) less(other offset) bool {
	if o.DX != other.DX {
		return o.DX < other.DX
	}
	return o.DY < other.DY
}

// ringOffsets enumerates every non-negative integer (x, y) with
// r1 <= x^2+y^2 <= r2, sorted lexicographically by (x, y). Bounds on x and y
// are computed with math32.Sqrt the way the teacher's vector helpers lean on
// a float32 math package rather than hand-rolled Newton iteration.
func ringOffsets(r1, r2 int64) []offset {
	if r2 < 0 {
		return nil
	}
	if r1 < 0 {
		r1 = 0
	}
	maxX := int32(math32.Sqrt(float32(r2)))
	// math32.Sqrt can undershoot by one ULP on perfect squares; nudge up
	// until squaring no longer exceeds r2, then back off.
	for int64(maxX+1)*int64(maxX+1) <= r2 {
		maxX++
	}
	for maxX > 0 && int64(maxX)*int64(maxX) > r2 {
		maxX--
	}

	var out []offset
	for x := int32(0); x <= maxX; x++ {
		rem2 := r2 - int64(x)*int64(x)
		if rem2 < 0 {
			continue
		}
		maxY := int32(math32.Sqrt(float32(rem2)))
		for int64(maxY+1)*int64(maxY+1) <= rem2 {
			maxY++
		}
		for maxY > 0 && int64(maxY)*int64(maxY) > rem2 {
			maxY--
		}

		var minY int32
		rem1 := r1 - int64(x)*int64(x)
		if rem1 > 0 {
			minY = int32(math32.Sqrt(float32(rem1)))
			for int64(minY)*int64(minY) < rem1 {
				minY++
			}
		}

		for y := minY; y <= maxY; y++ {
			out = append(out, offset{DX: x, DY: y})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// searchAdjVec reports whether the absolute offset (|dx|, |dy|) is present
// in a sorted, deduplicated AdjVecs ring, by binary search.
func searchAdjVec(adjVecs []offset, dx, dy int32) bool {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	want := offset{DX: dx, DY: dy}
	i := sort.Search(len(adjVecs), func(i int) bool { return !adjVecs[i].less(want) })
	return i < len(adjVecs) && adjVecs[i] == want
}

// boundingBox returns the integer axis-aligned bounding box of a point
// sequence: [xMin,xMax] x [yMin,yMax]. Grounded in gogeo/f32's Rectangle,
// whose own Extremes-style bookkeeping this mirrors in integer form.
func boundingBox(pts []Position) (xMin, yMin, xMax, yMax int32) {
	if len(pts) == 0 {
		return
	}
	xMin, xMax = pts[0].X, pts[0].X
	yMin, yMax = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	return
}

// pointInPolygon reports whether p lies strictly inside the simple polygon
// described by verts, using a ray-cast parity test (the "preferred
// integer-only test" of the lattice enumeration rule). Points on the
// boundary report false; callers combine it with onBoundary.
func pointInPolygon(p Position, verts []Position) bool {
	if onBoundary(p, verts) {
		return false
	}
	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := verts[i], verts[j]
		if (vi.Y > p.Y) == (vj.Y > p.Y) {
			continue
		}
		// x-coordinate where edge (vi,vj) crosses the horizontal ray at
		// p.Y, compared against p.X by cross-multiplication so no float
		// division (and its boundary sensitivity) is involved:
		//   p.X < vi.X + (p.Y-vi.Y)/(vj.Y-vi.Y) * (vj.X-vi.X)
		num := int64(p.Y-vi.Y) * int64(vj.X-vi.X)
		den := int64(vj.Y - vi.Y)
		lhs := (int64(p.X) - int64(vi.X)) * den
		if den < 0 {
			lhs, num = -lhs, -num
			den = -den
		}
		if lhs < num {
			inside = !inside
		}
	}
	return inside
}

// onSegment reports whether p lies on the closed segment [a,b], all three
// collinear-or-not, using exact integer arithmetic.
func onSegment(p, a, b Position) bool {
	cross := int64(b.X-a.X)*int64(p.Y-a.Y) - int64(b.Y-a.Y)*int64(p.X-a.X)
	if cross != 0 {
		return false
	}
	if p.X < min32(a.X, b.X) || p.X > max32(a.X, b.X) {
		return false
	}
	if p.Y < min32(a.Y, b.Y) || p.Y > max32(a.Y, b.Y) {
		return false
	}
	return true
}

// onBoundary reports whether p lies on any edge of the polygon described by
// verts (the closing edge between the last and first vertex included).
func onBoundary(p Position, verts []Position) bool {
	n := len(verts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if onSegment(p, verts[i], verts[j]) {
			return true
		}
	}
	return false
}

// insideOrOnBoundary is the lattice-enumeration membership test of §4.1:
// a point qualifies for a HoleIndex if it is interior to or on the
// boundary of the hole polygon.
func insideOrOnBoundary(p Position, verts []Position) bool {
	return pointInPolygon(p, verts) || onBoundary(p, verts)
}

// boundedLatticePoints enumerates every integer point in the bounding box of
// verts that lies inside or on the polygon's boundary.
func boundedLatticePoints(verts []Position) []Position {
	xMin, yMin, xMax, yMax := boundingBox(verts)
	var out []Position
	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			p := Position{X: x, Y: y}
			if insideOrOnBoundary(p, verts) {
				out = append(out, p)
			}
		}
	}
	return out
}

// convexHull computes the planar convex hull of pts using Andrew's
// monotone-chain algorithm, returning hull vertices in counter-clockwise
// order without a duplicated closing vertex.
func convexHull(pts []Position) []Position {
	uniq := make([]Position, len(pts))
	copy(uniq, pts)
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].X != uniq[j].X {
			return uniq[i].X < uniq[j].X
		}
		return uniq[i].Y < uniq[j].Y
	})
	uniq = dedupSorted(uniq)
	n := len(uniq)
	if n < 3 {
		return uniq
	}

	cross := func(o, a, b Position) int64 {
		return int64(a.X-o.X)*int64(b.Y-o.Y) - int64(a.Y-o.Y)*int64(b.X-o.X)
	}

	hull := make([]Position, 0, 2*n)
	// lower hull
	for _, p := range uniq {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// upper hull
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := uniq[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func dedupSorted(sorted []Position) []Position {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, p := range sorted[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// euclideanDistanceToPolygon is the tolerance-based fallback named in §4.1:
// the distance from p to the nearest point of the polygon boundary (0 if p
// is interior). It never decides containment itself — checkContainment's
// pass/fail call is always the exact integer test — but validate.go calls it
// to annotate a rejected edge's Detail message with how far outside the hole
// the offending point actually lies.
func euclideanDistanceToPolygon(p Position, verts []Position) float32 {
	if pointInPolygon(p, verts) {
		return 0
	}
	best := float32(3.4e38)
	n := len(verts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		d := distanceToSegment(p, verts[i], verts[j])
		if d < best {
			best = d
		}
	}
	return best
}

func distanceToSegment(p, a, b Position) float32 {
	ax, ay := float32(a.X), float32(a.Y)
	bx, by := float32(b.X), float32(b.Y)
	px, py := float32(p.X), float32(p.Y)

	abx, aby := bx-ax, by-ay
	apx, apy := px-ax, py-ay
	abLen2 := abx*abx + aby*aby
	if abLen2 == 0 {
		return math32.Sqrt(apx*apx + apy*apy)
	}
	t := f32.Clamp((apx*abx+apy*aby)/abLen2, 0, 1)
	cx, cy := ax+t*abx, ay+t*aby
	dx, dy := px-cx, py-cy
	return math32.Sqrt(dx*dx + dy*dy)
}
