package bricklayer

import (
	"context"
	"time"
)

// quadrantVariants returns every sign-reflected variant of a first-quadrant
// offset (dx, dy): 1 variant if both components are zero, 2 if exactly one
// is zero, 4 otherwise — the "four quadrants with dedup when dx=0 or dy=0"
// rule of §3's EdgeProfile.
func quadrantVariants(o offset) [][2]int32 {
	switch {
	case o.DX == 0 && o.DY == 0:
		return [][2]int32{{0, 0}}
	case o.DX == 0:
		return [][2]int32{{0, o.DY}, {0, -o.DY}}
	case o.DY == 0:
		return [][2]int32{{o.DX, 0}, {-o.DX, 0}}
	default:
		return [][2]int32{{o.DX, o.DY}, {o.DX, -o.DY}, {-o.DX, o.DY}, {-o.DX, -o.DY}}
	}
}

// candidateSet is the accumulator for one unfilled slot's extension
// candidates, implementing "propose then filter": the first incident
// filled edge proposes a set of lattice points; subsequent incident edges
// filter it down by the admissible-offset test.
type candidateSet struct {
	started bool
	points  []Position
}

func (c *candidateSet) propose(pts []Position) {
	c.started = true
	c.points = pts
}

func (c *candidateSet) filter(keep func(Position) bool) {
	out := c.points[:0]
	for _, p := range c.points {
		if keep(p) {
			out = append(out, p)
		}
	}
	c.points = out
}

// engine holds everything a single Solve call shares read-only across its
// DFS branches: the hole and figure indices, search limits, and the mutable
// state (stack, visited set, best-so-far) owned exclusively by this run.
type engine struct {
	hole   *HoleIndex
	figure *FigureIndex
	limits SearchLimits
	ctx    *SearchContext

	stack   *poseStack
	visited map[fingerprint]struct{}

	haveBest     bool
	bestDislikes int
	bestSolution Solution

	expansions int
	problem    Problem
}

// Solve runs the seeded DFS of §4.5 over problem, returning the best pose
// found and its dislikes score, or ok=false if none was found before the
// search exhausted its frontier, hit a resource cap, or ctx was cancelled.
func Solve(ctx context.Context, problem Problem, limits SearchLimits, sctx *SearchContext) (Solution, int, bool) {
	if sctx == nil {
		sctx = NewSearchContext(nil)
	}
	sctx.start()

	hi := NewHoleIndex(problem.Hole)
	fi, err := NewFigureIndex(problem.Figure, problem.Epsilon)
	if err != nil {
		sctx.Warnf("figure index: %v", err)
		return Solution{}, 0, false
	}

	e := &engine{
		hole:    hi,
		figure:  fi,
		limits:  limits,
		ctx:     sctx,
		stack:   newPoseStack(1024),
		visited: make(map[fingerprint]struct{}),
		problem: problem,
	}
	e.seed()
	e.run(ctx)

	if !e.haveBest {
		return Solution{}, 0, false
	}
	return e.bestSolution, e.bestDislikes, true
}

// seed pushes, for every (hole vertex, figure vertex) pair, the partial
// pose with that one slot filled — the heuristic that an optimal pose
// usually seats a figure vertex on a hole vertex. Seeding order (outer loop
// over hole vertices, inner over figure vertices) combines with
// considerComplete's strictly-better replacement rule to give the
// deterministic tie-break of §4.5: among equal-dislikes poses, the
// earlier-discovered one wins, since a later equal-or-worse pose never
// replaces it.
func (e *engine) seed() {
	holeVerts := e.hole.Vertices()
	n := e.figure.NumVertices()
	for _, h := range holeVerts {
		for v := 0; v < n; v++ {
			pp := newPartialPose(n).set(v, h)
			e.consider(pp)
		}
	}
}

// consider routes a freshly-built PartialPose to wherever it belongs: a
// complete pose is validated immediately (this also handles the
// single-vertex, zero-edge figure, whose seed poses are complete on
// arrival), an incomplete but already-seen one is dropped, and everything
// else is pushed for expansion.
func (e *engine) consider(pp PartialPose) {
	if pp.complete() {
		e.considerComplete(pp)
		return
	}
	fp := pp.fingerprint()
	if _, seen := e.visited[fp]; seen {
		return
	}
	e.visited[fp] = struct{}{}
	e.stack.push(pp)
}

// run drains the candidate stack, expanding each popped PartialPose and
// validating every completed one, until the stack empties, a resource cap
// trips, or ctx is cancelled — returning the best pose found so far in any
// of those cases.
func (e *engine) run(ctx context.Context) {
	deadline := time.Time{}
	if e.limits.Timeout > 0 {
		deadline = time.Now().Add(e.limits.Timeout)
	}

	for !e.stack.empty() {
		if e.limits.MaxExpansions > 0 && e.expansions >= e.limits.MaxExpansions {
			e.ctx.Warnf("search: expansion cap (%d) reached", e.limits.MaxExpansions)
			return
		}
		if e.limits.MaxVisited > 0 && len(e.visited) >= e.limits.MaxVisited {
			e.ctx.Warnf("search: visited cap (%d) reached", e.limits.MaxVisited)
			return
		}
		select {
		case <-ctx.Done():
			e.ctx.Warnf("search: cancelled after %d expansions", e.expansions)
			return
		default:
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			e.ctx.Warnf("search: timeout (%s) reached", e.limits.Timeout)
			return
		}

		pp, ok := e.stack.pop()
		if !ok {
			return
		}
		e.expansions++
		e.expand(pp)

		if e.limits.StepEvery > 0 && e.expansions%e.limits.StepEvery == 0 {
			e.ctx.report(StepInfo{
				Expansions:   e.expansions,
				VisitedSize:  len(e.visited),
				StackDepth:   e.stack.len(),
				BestDislikes: e.bestDislikes,
				HaveSolution: e.haveBest,
			})
		}
	}
}

// expand enumerates every child extension of pp per §4.5's expansion rule
// and either materializes+validates a complete pose, or pushes a new
// not-yet-seen partial pose.
func (e *engine) expand(pp PartialPose) {
	n := e.figure.NumVertices()
	for i := 0; i < n; i++ {
		if _, filled := pp.at(i); filled {
			continue
		}
		var cand candidateSet
		for _, k := range e.figure.IncidentEdges(i) {
			profile := e.figure.Profile(k)
			j, ok := profile.Edge.other(i)
			if !ok {
				continue
			}
			pj, jFilled := pp.at(j)
			if !jFilled {
				continue
			}

			if !cand.started {
				cand.propose(e.proposeFromEdge(profile, pj))
			} else {
				cand.filter(func(p Position) bool {
					dx := p.X - pj.X
					dy := p.Y - pj.Y
					return profile.admits(dx, dy)
				})
			}
		}
		if !cand.started {
			// No incident filled edge: this slot can't be extended yet.
			continue
		}
		for _, p := range cand.points {
			e.emit(pp, i, p)
		}
	}
}

// proposeFromEdge forms the full four-quadrant displacement set for an
// edge profile by sign-reflecting AdjVecs around the filled endpoint pj,
// keeping only points that land inside the hole index.
func (e *engine) proposeFromEdge(profile *EdgeProfile, pj Position) []Position {
	var out []Position
	for _, o := range profile.AdjVecs {
		for _, v := range quadrantVariants(o) {
			p := Position{X: pj.X + v[0], Y: pj.Y + v[1]}
			if p.X < 0 || p.Y < 0 {
				continue
			}
			if e.hole.Contains(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// emit materializes the extension of pp with slot i set to p and routes it
// through consider: complete poses are validated, incomplete ones pushed if
// new.
func (e *engine) emit(pp PartialPose, i int, p Position) {
	e.consider(pp.set(i, p))
}

// considerComplete runs the full validator on a complete pose and records
// it as the new best if valid and strictly better than the current best,
// per the propagation policy of §7: validator failure here is a silent
// skip, not a propagated error.
func (e *engine) considerComplete(pp PartialPose) {
	sol := pp.solution()
	if err := Validate(e.problem, sol); err != nil {
		return
	}
	dislikes, err := ComputeDislikes(e.problem, sol)
	if err != nil {
		return
	}
	if !e.haveBest || lessDislikes(dislikes, e.bestDislikes) {
		e.haveBest = true
		e.bestDislikes = dislikes
		e.bestSolution = sol
	}
}
