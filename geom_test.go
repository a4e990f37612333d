package bricklayer

import "testing"

func TestSquaredDistance(t *testing.T) {
	distTests := []struct {
		p, q Position
		want int64
	}{
		{Position{0, 0}, Position{3, 4}, 25},
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{5, 5}, Position{5, 5}, 0},
	}
	for _, tt := range distTests {
		if got := squaredDistance(tt.p, tt.q); got != tt.want {
			t.Errorf("squaredDistance(%v, %v) = %d, want %d", tt.p, tt.q, got, tt.want)
		}
		// symmetry
		if got := squaredDistance(tt.q, tt.p); got != tt.want {
			t.Errorf("squaredDistance(%v, %v) = %d, want %d (symmetry)", tt.q, tt.p, got, tt.want)
		}
	}
}

func TestBoundedLatticePointsUnitSquare(t *testing.T) {
	hole := []Position{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	got := boundedLatticePoints(hole)

	want := map[Position]bool{}
	for x := int32(0); x <= 2; x++ {
		for y := int32(0); y <= 2; y++ {
			want[Position{x, y}] = true
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lattice points, want %d", len(got), len(want))
	}
	for _, p := range got {
		if !want[p] {
			t.Errorf("unexpected lattice point %v", p)
		}
		delete(want, p)
	}
	if len(want) != 0 {
		t.Errorf("missing lattice points: %v", want)
	}
}

func TestConvexHullDiamond(t *testing.T) {
	pts := []Position{{1, 2}, {2, 1}, {1, 0}, {0, 1}}
	hull := convexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("got %d hull vertices, want 4", len(hull))
	}
	want := map[Position]bool{{1, 2}: true, {2, 1}: true, {1, 0}: true, {0, 1}: true}
	for _, p := range hull {
		if !want[p] {
			t.Errorf("unexpected hull vertex %v", p)
		}
	}
}

func TestRingOffsetsSortedAndBounded(t *testing.T) {
	r1, r2 := int64(10), int64(20)
	ring := ringOffsets(r1, r2)
	if len(ring) == 0 {
		t.Fatal("expected a non-empty ring")
	}
	for i, o := range ring {
		if o.DX < 0 || o.DY < 0 {
			t.Errorf("offset %v has a negative component", o)
		}
		mag := int64(o.DX)*int64(o.DX) + int64(o.DY)*int64(o.DY)
		if mag < r1 || mag > r2 {
			t.Errorf("offset %v has squared magnitude %d outside [%d,%d]", o, mag, r1, r2)
		}
		if i > 0 && !ring[i-1].less(o) {
			t.Errorf("ring not strictly sorted at index %d: %v >= %v", i, ring[i-1], o)
		}
	}
}

func TestSearchAdjVec(t *testing.T) {
	ring := ringOffsets(0, 25)
	if !searchAdjVec(ring, 3, 4) {
		t.Error("expected (3,4) to be admissible within [0,25]")
	}
	if !searchAdjVec(ring, -3, -4) {
		t.Error("searchAdjVec should test the absolute offset")
	}
	if searchAdjVec(ring, 100, 100) {
		t.Error("(100,100) should not be admissible within [0,25]")
	}
}

func TestPointInPolygonUnitSquare(t *testing.T) {
	square := []Position{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	if !pointInPolygon(Position{1, 1}, square) {
		t.Error("(1,1) should be strictly inside the square")
	}
	if pointInPolygon(Position{0, 0}, square) {
		t.Error("a vertex should not count as strictly inside")
	}
	if !onBoundary(Position{0, 0}, square) {
		t.Error("(0,0) should be on the boundary")
	}
	if pointInPolygon(Position{5, 5}, square) {
		t.Error("(5,5) should be outside the square")
	}
}
