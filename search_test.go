package bricklayer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveTrivialUnitSquare(t *testing.T) {
	problem := Problem{
		Hole: Hole{Vertices: []Position{{0, 0}, {0, 2}, {2, 2}, {2, 0}}},
		Figure: Figure{
			Vertices: []Position{{0, 0}, {0, 1}},
			Edges:    []Edge{{Start: 0, End: 1}},
		},
		Epsilon: 0,
	}

	sol, dislikes, ok := Solve(context.Background(), problem, DefaultSearchLimits(), nil)
	require.True(t, ok, "expected a solution for a unit edge inside a 2x2 hole")
	assert.GreaterOrEqual(t, dislikes, 0)
	assert.NoError(t, Validate(problem, sol))
}

func TestSolveIsDeterministic(t *testing.T) {
	problem := Problem{
		Hole: Hole{Vertices: []Position{{0, 0}, {0, 3}, {3, 3}, {3, 0}}},
		Figure: Figure{
			Vertices: []Position{{0, 0}, {0, 1}, {1, 0}},
			Edges:    []Edge{{Start: 0, End: 1}, {Start: 0, End: 2}},
		},
		Epsilon: 0,
	}

	sol1, d1, ok1 := Solve(context.Background(), problem, DefaultSearchLimits(), nil)
	sol2, d2, ok2 := Solve(context.Background(), problem, DefaultSearchLimits(), nil)

	require.Equal(t, ok1, ok2)
	if ok1 {
		assert.Equal(t, d1, d2)
		assert.Equal(t, sol1, sol2)
	}
}

func TestSolveRespectsExpansionCap(t *testing.T) {
	problem := Problem{
		Hole: Hole{Vertices: []Position{{0, 0}, {0, 3}, {3, 3}, {3, 0}}},
		Figure: Figure{
			Vertices: []Position{{0, 0}, {0, 1}},
			Edges:    []Edge{{Start: 0, End: 1}},
		},
	}
	limits := SearchLimits{MaxExpansions: 1}
	// Should return promptly without hanging, regardless of whether a
	// solution was found within the single allowed expansion.
	done := make(chan struct{})
	go func() {
		Solve(context.Background(), problem, limits, nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Solve did not respect MaxExpansions")
	}
}

func TestSolveNoEdgesPicksAnyHolePoint(t *testing.T) {
	problem := Problem{
		Hole:   Hole{Vertices: []Position{{0, 0}, {0, 1}, {1, 1}, {1, 0}}},
		Figure: Figure{Vertices: []Position{{5, 5}}},
	}
	sol, _, ok := Solve(context.Background(), problem, DefaultSearchLimits(), nil)
	require.True(t, ok)
	require.Len(t, sol.Vertices, 1)
	assert.NoError(t, Validate(problem, sol))
}

func TestQuadrantVariants(t *testing.T) {
	assert.ElementsMatch(t, [][2]int32{{0, 0}}, quadrantVariants(offset{0, 0}))
	assert.ElementsMatch(t, [][2]int32{{0, 3}, {0, -3}}, quadrantVariants(offset{0, 3}))
	assert.ElementsMatch(t, [][2]int32{{3, 0}, {-3, 0}}, quadrantVariants(offset{3, 0}))
	assert.ElementsMatch(t,
		[][2]int32{{3, 4}, {3, -4}, {-3, 4}, {-3, -4}},
		quadrantVariants(offset{3, 4}))
}
