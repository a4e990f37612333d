package bricklayer

import "encoding/json"

// This file implements the bit-exact JSON wire format of §6, matching the
// contest's own artifacts: positions and edges serialise as two-element
// arrays rather than objects. encoding/json's MarshalJSON/UnmarshalJSON
// hooks are the idiomatic way to do this in Go — no third-party JSON
// library in the retrieved pack offers array-tuple struct tags, so this one
// corner of the ambient stack stays on the standard library by necessity,
// the way the original Rust implementation hand-writes Serialize/Deserialize
// for the same shape in judge/src/format.rs.

// MarshalJSON renders a Position as [x, y].
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int32{p.X, p.Y})
}

// UnmarshalJSON parses a Position from [x, y].
func (p *Position) UnmarshalJSON(data []byte) error {
	var pair [2]int32
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// MarshalJSON renders an Edge as [start, end].
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{e.Start, e.End})
}

// UnmarshalJSON parses an Edge from [start, end].
func (e *Edge) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	e.Start, e.End = pair[0], pair[1]
	return nil
}

// figureJSON, holeJSON, problemJSON and solutionJSON mirror the contest's
// field names exactly so round-tripping through this package preserves the
// artifact's shape.
type figureJSON struct {
	Edges    []Edge     `json:"edges"`
	Vertices []Position `json:"vertices"`
}

type problemJSON struct {
	Hole    []Position `json:"hole"`
	Figure  figureJSON `json:"figure"`
	Epsilon uint32     `json:"epsilon"`
}

type solutionJSON struct {
	Vertices []Position `json:"vertices"`
}

// MarshalJSON renders a Problem as
// {"hole": [...], "figure": {"edges": [...], "vertices": [...]}, "epsilon": N}.
func (p Problem) MarshalJSON() ([]byte, error) {
	return json.Marshal(problemJSON{
		Hole: p.Hole.Vertices,
		Figure: figureJSON{
			Edges:    p.Figure.Edges,
			Vertices: p.Figure.Vertices,
		},
		Epsilon: p.Epsilon,
	})
}

// UnmarshalJSON parses a Problem and validates that every edge index is in
// range, returning a *MalformedInputError otherwise.
func (p *Problem) UnmarshalJSON(data []byte) error {
	var raw problemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Problem{
		Hole:    Hole{Vertices: raw.Hole},
		Figure:  Figure{Vertices: raw.Figure.Vertices, Edges: raw.Figure.Edges},
		Epsilon: raw.Epsilon,
	}
	return p.checkWellFormed()
}

// MarshalJSON renders a Solution as {"vertices": [...]}.
func (s Solution) MarshalJSON() ([]byte, error) {
	return json.Marshal(solutionJSON{Vertices: s.Vertices})
}

// UnmarshalJSON parses a Solution from {"vertices": [...]}.
func (s *Solution) UnmarshalJSON(data []byte) error {
	var raw solutionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Vertices = raw.Vertices
	return nil
}

// ParseProblem decodes a Problem from its JSON wire format.
func ParseProblem(data []byte) (Problem, error) {
	var p Problem
	if err := json.Unmarshal(data, &p); err != nil {
		return Problem{}, err
	}
	return p, nil
}

// ParseSolution decodes a Solution from its JSON wire format.
func ParseSolution(data []byte) (Solution, error) {
	var s Solution
	if err := json.Unmarshal(data, &s); err != nil {
		return Solution{}, err
	}
	return s, nil
}
