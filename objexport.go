package bricklayer

import (
	"fmt"
	"io"

	"github.com/aurelien-rainone/gobj"
)

// WriteOBJ dumps a hole polygon and a posed figure's edges as an OBJ
// wireframe (v/l records): the hole as a closed polygon, the figure's edges
// as line segments, for inspection with any OBJ viewer. This is the
// supplemental visualization path named in SPEC_FULL.md §B, running
// meshloaderobj.go's gobj-based loading in reverse — gobj has no writer of
// its own (the teacher only ever reads OBJ files), so the records are
// formatted directly while gobj.Vertex/gobj.Polygon carry the geometry and
// its bounding box the way meshloaderobj.go uses them on the read side.
func WriteOBJ(w io.Writer, problem Problem, sol Solution) error {
	holePoly := make(gobj.Polygon, len(problem.Hole.Vertices))
	for i, p := range problem.Hole.Vertices {
		holePoly[i] = gobj.NewVertex2D(float64(p.X), float64(p.Y))
	}
	bb := holePoly.AABB()

	if _, err := fmt.Fprintf(w, "# bricklayer export: hole bbox [%.0f,%.0f]-[%.0f,%.0f]\n",
		bb.MinX, bb.MinY, bb.MaxX, bb.MaxY); err != nil {
		return err
	}

	// Hole vertices first, as a closed loop.
	for _, v := range holePoly {
		if _, err := fmt.Fprintf(w, "v %g %g 0\n", v.X(), v.Y()); err != nil {
			return err
		}
	}
	for i := range holePoly {
		j := (i+1)%len(holePoly) + 1
		if _, err := fmt.Fprintf(w, "l %d %d\n", i+1, j); err != nil {
			return err
		}
	}

	// Posed figure vertices follow, offset by the hole's vertex count.
	base := len(holePoly)
	verts := sol.Vertices
	if verts == nil {
		verts = problem.Figure.Vertices
	}
	for _, p := range verts {
		if _, err := fmt.Fprintf(w, "v %g %g 0\n", float64(p.X), float64(p.Y)); err != nil {
			return err
		}
	}
	for _, e := range problem.Figure.Edges {
		if _, err := fmt.Fprintf(w, "l %d %d\n", base+e.Start+1, base+e.End+1); err != nil {
			return err
		}
	}
	return nil
}
