package bricklayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitEdgeFigure() Figure {
	return Figure{
		Vertices: []Position{{0, 0}, {0, 1}},
		Edges:    []Edge{{Start: 0, End: 1}},
	}
}

func TestFigureIndexZeroEpsilon(t *testing.T) {
	fi, err := NewFigureIndex(unitEdgeFigure(), 0)
	require.NoError(t, err)

	profile := fi.Profile(0)
	assert.EqualValues(t, 1, profile.OriginalLen2)
	assert.EqualValues(t, 1, profile.LowerLen2)
	assert.EqualValues(t, 1, profile.UpperLen2)

	// only isometries preserving the exact squared length are admissible
	assert.True(t, profile.admits(0, 1))
	assert.True(t, profile.admits(1, 0))
	assert.False(t, profile.admits(2, 0))
	assert.False(t, profile.admits(0, 0))
}

func TestFigureIndexMaxEpsilon(t *testing.T) {
	fig := Figure{
		Vertices: []Position{{0, 0}, {2, 0}},
		Edges:    []Edge{{Start: 0, End: 1}},
	}
	fi, err := NewFigureIndex(fig, 1_000_000)
	require.NoError(t, err)

	profile := fi.Profile(0)
	assert.EqualValues(t, 4, profile.OriginalLen2)
	assert.EqualValues(t, 0, profile.LowerLen2)
	assert.EqualValues(t, 8, profile.UpperLen2)
}

func TestFigureIndexAdjVecsInvariant(t *testing.T) {
	fig := Figure{
		Vertices: []Position{{0, 0}, {3, 4}, {10, 10}},
		Edges:    []Edge{{Start: 0, End: 1}, {Start: 1, End: 2}},
	}
	fi, err := NewFigureIndex(fig, 50_000)
	require.NoError(t, err)

	for k := 0; k < fi.NumEdges(); k++ {
		p := fi.Profile(k)
		require.True(t, isSortedOffsets(p.AdjVecs), "edge %d AdjVecs must be sorted and non-negative", k)
		for _, o := range p.AdjVecs {
			mag := int64(o.DX)*int64(o.DX) + int64(o.DY)*int64(o.DY)
			assert.GreaterOrEqual(t, mag, p.LowerLen2)
			assert.LessOrEqual(t, mag, p.UpperLen2)
		}
	}
}

func TestFigureIndexAdjacency(t *testing.T) {
	fig := Figure{
		Vertices: []Position{{0, 0}, {1, 0}, {2, 0}},
		Edges:    []Edge{{Start: 0, End: 1}, {Start: 1, End: 2}},
	}
	fi, err := NewFigureIndex(fig, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, fi.IncidentEdges(0))
	assert.Equal(t, []int{0, 1}, fi.IncidentEdges(1))
	assert.Equal(t, []int{1}, fi.IncidentEdges(2))
}

func TestFigureIndexOutOfRangeEdge(t *testing.T) {
	fig := Figure{
		Vertices: []Position{{0, 0}},
		Edges:    []Edge{{Start: 0, End: 5}},
	}
	_, err := NewFigureIndex(fig, 0)
	require.Error(t, err)
}
