package bricklayer

import "context"

// SolveDefault runs Solve with DefaultSearchLimits and a silent
// SearchContext, for callers that don't need fine control over resource
// caps or progress reporting — the library-surface equivalent of §6's
// solve(&Problem) -> Option<(u32, Solution)>.
func SolveDefault(problem Problem) (Solution, int, bool) {
	return Solve(context.Background(), problem, DefaultSearchLimits(), nil)
}
