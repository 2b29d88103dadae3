package msdfgen

// SimpleContourCombiner resets a selector and feeds it every edge of every
// contour in the shape, with no winding correction, per spec.md §4.4.
type SimpleContourCombiner[T any] struct {
	shape    *Shape
	selector Selector[T]
}

// NewSimpleContourCombiner builds a combiner over shape using the given
// selector.
func NewSimpleContourCombiner[T any](shape *Shape, selector Selector[T]) *SimpleContourCombiner[T] {
	return &SimpleContourCombiner[T]{shape: shape, selector: selector}
}

// Distance resets the selector at origin, feeds it every edge, and returns
// the accumulated result.
func (c *SimpleContourCombiner[T]) Distance(origin Vector2) T {
	c.selector.Reset(origin)
	for _, contour := range c.shape.Contours {
		for _, edge := range contour.Edges {
			d, t := edge.SignedDistance(origin)
			c.selector.AddEdge(d, edge, origin, t)
		}
	}
	return c.selector.Distance()
}

// OverlappingContourCombiner adds a scanline-based non-zero-winding sign
// correction on top of SimpleContourCombiner, for shapes whose contours
// overlap or self-intersect, per spec.md §4.4. The scanline is rebuilt
// only when the query's y coordinate changes from the cached one, so
// callers that walk a row at a time (as the generator driver does) pay
// for the rebuild once per row.
type OverlappingContourCombiner[T SignFlippable[T]] struct {
	shape     *Shape
	selector  Selector[T]
	scanline  *Scanline
	haveY     bool
	cachedY   float64
}

// SignFlippable is implemented by every selector output type so the
// overlapping combiner can negate every scalar channel uniformly.
type SignFlippable[T any] interface {
	FlipSign() T
}

func (d SignedDistance) FlipSign() SignedDistance {
	return SignedDistance{Distance: -d.Distance, Dot: d.Dot}
}

func (m MultiDistance) FlipSign() MultiDistance {
	return MultiDistance{R: -m.R, G: -m.G, B: -m.B}
}

func (m MultiAndTrueDistance) FlipSign() MultiAndTrueDistance {
	return MultiAndTrueDistance{R: -m.R, G: -m.G, B: -m.B, A: -m.A}
}

// NewOverlappingContourCombiner builds a combiner over shape using the
// given selector.
func NewOverlappingContourCombiner[T SignFlippable[T]](shape *Shape, selector Selector[T]) *OverlappingContourCombiner[T] {
	return &OverlappingContourCombiner[T]{shape: shape, selector: selector, scanline: NewScanline()}
}

// distanceSign extracts the scalar sign check required by spec.md §4.4's
// "selector.distance() < 0" test, which differs per output type: a plain
// SignedDistance's own sign, or a multi-channel output's median.
func distanceSign[T any](v T) float64 {
	switch x := any(v).(type) {
	case SignedDistance:
		return x.Distance
	case MultiDistance:
		return x.Median()
	case MultiAndTrueDistance:
		return x.Median()
	default:
		return 0
	}
}

// Distance implements spec.md §4.4's overlapping combiner algorithm.
func (c *OverlappingContourCombiner[T]) Distance(origin Vector2) T {
	if !c.haveY || origin.Y != c.cachedY {
		c.scanline.Reset()
		for _, contour := range c.shape.Contours {
			for _, edge := range contour.Edges {
				for _, isect := range edge.ScanlineIntersections(origin.Y) {
					c.scanline.AddIntersection(isect.X, isect.Direction)
				}
			}
		}
		c.scanline.Sort()
		c.cachedY = origin.Y
		c.haveY = true
	}

	c.selector.Reset(origin)
	for _, contour := range c.shape.Contours {
		for _, edge := range contour.Edges {
			d, t := edge.SignedDistance(origin)
			c.selector.AddEdge(d, edge, origin, t)
		}
	}
	result := c.selector.Distance()

	filled := c.scanline.Filled(origin.X)
	if filled != (distanceSign(result) < 0) {
		result = result.FlipSign()
	}
	return result
}
