package bricklayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHoleIndexUnitSquare(t *testing.T) {
	hole := Hole{Vertices: []Position{{0, 0}, {0, 2}, {2, 2}, {2, 0}}}
	hi := NewHoleIndex(hole)

	assert.Equal(t, 9, hi.Len())
	for x := int32(0); x <= 2; x++ {
		for y := int32(0); y <= 2; y++ {
			assert.True(t, hi.Contains(Position{x, y}), "expected (%d,%d) in hole index", x, y)
		}
	}
	assert.False(t, hi.Contains(Position{3, 3}))
}

func TestHoleIndexSinglePoint(t *testing.T) {
	hole := Hole{Vertices: []Position{{5, 5}}}
	hi := NewHoleIndex(hole)
	assert.Equal(t, 1, hi.Len())
	assert.True(t, hi.Contains(Position{5, 5}))
}

func TestHoleIndexEveryPointIsInsideOrOnBoundary(t *testing.T) {
	hole := Hole{Vertices: []Position{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
	hi := NewHoleIndex(hole)
	for _, p := range hi.Points() {
		assert.True(t, insideOrOnBoundary(p, hole.Vertices), "HoleIndex point %v must satisfy point-in-polygon", p)
	}
	// hole vertices are always members
	for _, v := range hole.Vertices {
		assert.True(t, hi.Contains(v))
	}
}
