package bricklayer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckElasticityAcceptsExactEdge(t *testing.T) {
	fig := Figure{
		Vertices: []Position{{0, 0}, {0, 1}},
		Edges:    []Edge{{Start: 0, End: 1}},
	}
	sol := Solution{Vertices: []Position{{0, 0}, {0, 1}}}
	errs := checkElasticity(fig, sol, 0)
	assert.Empty(t, errs)
}

func TestCheckElasticityRejectsStretchedEdge(t *testing.T) {
	fig := Figure{
		Vertices: []Position{{0, 0}, {0, 1}},
		Edges:    []Edge{{Start: 0, End: 1}},
	}
	sol := Solution{Vertices: []Position{{0, 0}, {0, 2}}}
	errs := checkElasticity(fig, sol, 0)
	require.Len(t, errs, 1)
	assert.Equal(t, KindOverstretched, errs[0].Kind)
}

func TestComputeDislikes(t *testing.T) {
	problem := Problem{
		Hole:   Hole{Vertices: []Position{{0, 0}, {4, 0}, {4, 4}, {0, 4}}},
		Figure: Figure{Vertices: []Position{{0, 0}, {1, 1}}},
	}
	sol := Solution{Vertices: []Position{{1, 1}, {3, 3}}}

	got, err := ComputeDislikes(problem, sol)
	require.NoError(t, err)
	assert.Equal(t, 24, got)
}

func TestComputeDislikesVertexCountMismatch(t *testing.T) {
	problem := Problem{
		Hole:   Hole{Vertices: []Position{{0, 0}}},
		Figure: Figure{Vertices: []Position{{0, 0}, {1, 1}}},
	}
	sol := Solution{Vertices: []Position{{0, 0}}}

	_, err := ComputeDislikes(problem, sol)
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, KindTopology, ve.Kind)
}

func TestValidateAggregatesFailures(t *testing.T) {
	// A stretched edge whose posed endpoints also sit outside the hole
	// should report both failures, not just the first one found.
	problem := Problem{
		Hole: Hole{Vertices: []Position{{0, 0}, {0, 2}, {2, 2}, {2, 0}}},
		Figure: Figure{
			Vertices: []Position{{0, 0}, {0, 1}},
			Edges:    []Edge{{Start: 0, End: 1}},
		},
		Epsilon: 0,
	}
	sol := Solution{Vertices: []Position{{0, 0}, {0, 100}}}

	err := Validate(problem, sol)
	require.Error(t, err)
	var compound *CompoundError
	require.True(t, errors.As(err, &compound))
	assert.True(t, compound.has(KindOverstretched))
	assert.True(t, compound.has(KindOutsideHole))
}

func TestValidateAcceptsIdentityPose(t *testing.T) {
	problem := Problem{
		Hole: Hole{Vertices: []Position{{0, 0}, {0, 2}, {2, 2}, {2, 0}}},
		Figure: Figure{
			Vertices: []Position{{0, 0}, {0, 1}},
			Edges:    []Edge{{Start: 0, End: 1}},
		},
		Epsilon: 0,
	}
	sol := Solution{Vertices: problem.Figure.Vertices}
	assert.NoError(t, Validate(problem, sol))
}

func TestValidateIsIdempotent(t *testing.T) {
	problem := Problem{
		Hole: Hole{Vertices: []Position{{0, 0}, {0, 2}, {2, 2}, {2, 0}}},
		Figure: Figure{
			Vertices: []Position{{0, 0}, {0, 1}},
			Edges:    []Edge{{Start: 0, End: 1}},
		},
	}
	sol := Solution{Vertices: problem.Figure.Vertices}

	err1 := Validate(problem, sol)
	err2 := Validate(problem, sol)
	assert.Equal(t, err1, err2)
}
