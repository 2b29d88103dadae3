package msdfgen

import "github.com/aurelien-rainone/assertgo"

// Contour is an ordered, cyclically-closed list of edge segments: the end
// point of each edge coincides with the start point of the next, and the
// last edge's end point coincides with the first edge's start point. This
// closure is an invariant enforced by construction and checked only under
// the debug build tag, per spec.md §2.5/§7.
type Contour struct {
	Edges []EdgeSegment
}

// NewContour creates an empty contour.
func NewContour() *Contour {
	return &Contour{}
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e EdgeSegment) {
	c.Edges = append(c.Edges, e)
}

// Bound returns the axis-aligned bounding box of all edges in the contour.
func (c *Contour) Bound() Rect {
	b := EmptyRect()
	for _, e := range c.Edges {
		b = b.Union(e.Bound())
	}
	return b
}

// Winding computes the signed area of the contour via the shoelace formula
// and returns its sign: +1 for counterclockwise (conventionally filled),
// -1 for clockwise (conventionally a hole), 0 for a degenerate (zero-area
// or empty) contour, per spec.md §3.
func (c *Contour) Winding() int {
	if len(c.Edges) == 0 {
		return 0
	}
	if len(c.Edges) == 1 {
		a := c.Edges[0].Point(0)
		b := c.Edges[0].Point(1.0 / 3.0)
		d := c.Edges[0].Point(2.0 / 3.0)
		area := a.Cross(b) + b.Cross(d) + d.Cross(a)
		return signOf(area)
	}

	var area float64
	for _, e := range c.Edges {
		area += e.Point(0).Cross(e.Point(1))
	}
	return signOf(area)
}

func signOf(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Reverse returns a new contour tracing the same boundary in the opposite
// direction: edges are reversed individually and their order is flipped.
// This negates Winding exactly, per spec.md §8.
func (c *Contour) Reverse() *Contour {
	assert.True(c.isClosed(), "contour of %d edges is not cyclically closed", len(c.Edges))
	r := &Contour{Edges: make([]EdgeSegment, len(c.Edges))}
	n := len(c.Edges)
	for i, e := range c.Edges {
		r.Edges[n-1-i] = e.Reverse()
	}
	return r
}

// isClosed reports whether the contour's edges form a cyclic chain: each
// edge's end point coincides (within tolerance) with the next edge's start
// point, and the last edge's end point coincides with the first edge's
// start point.
func (c *Contour) isClosed() bool {
	if len(c.Edges) == 0 {
		return true
	}
	const tolerance = 1e-6
	for i, e := range c.Edges {
		next := c.Edges[(i+1)%len(c.Edges)]
		gap := e.Point(1).Sub(next.Point(0))
		if gap.X > tolerance || gap.X < -tolerance || gap.Y > tolerance || gap.Y < -tolerance {
			return false
		}
	}
	return true
}
