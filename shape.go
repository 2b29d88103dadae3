package msdfgen

// YAxisOrientation records whether increasing Y points up or down in a
// shape's coordinate space, per spec.md §3. It affects nothing about the
// geometry itself; the generator uses it to pick which output row each
// sampled pixel row is written to (with YAxisUp, the highest Y lands in
// row 0), and the coloring passes are orientation-agnostic.
type YAxisOrientation int

const (
	YAxisUp YAxisOrientation = iota
	YAxisDown
)

// HoleHandling selects how Shape.Normalize treats contours whose winding
// disagrees with the convention (positive-area = filled, negative-area =
// hole). This resolves spec.md §9's open question about normalization
// flipping intentional holes: the default matches the reference
// implementation's behavior of treating winding sign as authoritative,
// while KeepWinding lets a caller that already oriented contours
// deliberately opt out.
type HoleHandling int

const (
	// FlipNegativeWinding reverses every contour with negative winding so
	// that all contours end up counterclockwise, the default assumed by
	// the coloring and combiner passes.
	FlipNegativeWinding HoleHandling = iota
	// KeepWinding leaves every contour's winding as given.
	KeepWinding
)

// Shape is an ordered list of contours together with the orientation
// convention for its coordinate space, per spec.md §3.
type Shape struct {
	Contours         []*Contour
	YAxisOrientation YAxisOrientation
}

// NewShape creates an empty shape with the default (up) Y orientation.
func NewShape() *Shape {
	return &Shape{YAxisOrientation: YAxisUp}
}

// AddContour appends a contour to the shape.
func (s *Shape) AddContour(c *Contour) {
	s.Contours = append(s.Contours, c)
}

// Bounds returns the union of every contour's bounding box, or an empty
// rectangle if the shape has no contours.
func (s *Shape) Bounds() Rect {
	b := EmptyRect()
	for _, c := range s.Contours {
		b = b.Union(c.Bound())
	}
	return b
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	n := 0
	for _, c := range s.Contours {
		n += len(c.Edges)
	}
	return n
}

// Normalize reverses every contour whose Winding disagrees with the
// counterclockwise-is-filled convention, according to mode. With
// FlipNegativeWinding (the default) this is equivalent to orienting every
// contour so corners are colored and scanlines are combined consistently;
// with KeepWinding no contour is altered.
func (s *Shape) Normalize(mode HoleHandling) {
	if mode == KeepWinding {
		return
	}
	for i, c := range s.Contours {
		if c.Winding() < 0 {
			s.Contours[i] = c.Reverse()
		}
	}
}

// Validate reports whether every contour is non-empty and cyclically
// closed. It is advisory per spec.md §7: callers decide what to do with a
// malformed shape rather than having construction reject it outright.
func (s *Shape) Validate() bool {
	for _, c := range s.Contours {
		if len(c.Edges) == 0 {
			continue
		}
		if !c.isClosed() {
			return false
		}
	}
	return true
}
