package msdfgen

// Selector accumulates SignedDistance candidates from the edges of a shape
// during one query and produces the chosen output type, per spec.md §4.3.
// Every variant shares the same Reset/AddEdge/Distance/Merge shape so the
// contour combiners in combiner.go can drive any of them identically.
type Selector[T any] interface {
	Reset(origin Vector2)
	AddEdge(d SignedDistance, edge EdgeSegment, origin Vector2, t float64)
	Distance() T
	Merge(a, b T) T
}

// TrueDistanceSelector keeps the single closest SignedDistance seen, per
// spec.md §4.3.
type TrueDistanceSelector struct {
	best SignedDistance
}

func NewTrueDistanceSelector() *TrueDistanceSelector {
	return &TrueDistanceSelector{best: InitialSignedDistance()}
}

func (s *TrueDistanceSelector) Reset(origin Vector2) {
	s.best = InitialSignedDistance()
}

func (s *TrueDistanceSelector) AddEdge(d SignedDistance, edge EdgeSegment, origin Vector2, t float64) {
	s.best = s.best.Resolve(d)
}

func (s *TrueDistanceSelector) Distance() SignedDistance { return s.best }

func (s *TrueDistanceSelector) Merge(a, b SignedDistance) SignedDistance { return a.Resolve(b) }

// PerpendicularDistanceSelector is TrueDistanceSelector, but every
// candidate is first refined through the edge's PerpendicularDistance
// endpoint-unification before comparison, per spec.md §4.3.
type PerpendicularDistanceSelector struct {
	best SignedDistance
}

func NewPerpendicularDistanceSelector() *PerpendicularDistanceSelector {
	return &PerpendicularDistanceSelector{best: InitialSignedDistance()}
}

func (s *PerpendicularDistanceSelector) Reset(origin Vector2) {
	s.best = InitialSignedDistance()
}

func (s *PerpendicularDistanceSelector) AddEdge(d SignedDistance, edge EdgeSegment, origin Vector2, t float64) {
	refined := edge.PerpendicularDistance(d, origin, t)
	s.best = s.best.Resolve(refined)
}

func (s *PerpendicularDistanceSelector) Distance() SignedDistance { return s.best }

func (s *PerpendicularDistanceSelector) Merge(a, b SignedDistance) SignedDistance { return a.Resolve(b) }

// MultiDistanceSelector keeps three independent minima, one per channel:
// an edge's candidate updates channel X only if the edge's color contains
// X, per spec.md §4.3.
type MultiDistanceSelector struct {
	r, g, b SignedDistance
}

func NewMultiDistanceSelector() *MultiDistanceSelector {
	return &MultiDistanceSelector{
		r: InitialSignedDistance(), g: InitialSignedDistance(), b: InitialSignedDistance(),
	}
}

func (s *MultiDistanceSelector) Reset(origin Vector2) {
	s.r, s.g, s.b = InitialSignedDistance(), InitialSignedDistance(), InitialSignedDistance()
}

func (s *MultiDistanceSelector) AddEdge(d SignedDistance, edge EdgeSegment, origin Vector2, t float64) {
	c := edge.Color()
	if c.Has(ColorRed) {
		s.r = s.r.Resolve(d)
	}
	if c.Has(ColorGreen) {
		s.g = s.g.Resolve(d)
	}
	if c.Has(ColorBlue) {
		s.b = s.b.Resolve(d)
	}
}

func (s *MultiDistanceSelector) Distance() MultiDistance {
	return MultiDistance{R: s.r.Distance, G: s.g.Distance, B: s.b.Distance}
}

// Merge takes the smaller |value| per channel independently.
func (s *MultiDistanceSelector) Merge(a, b MultiDistance) MultiDistance {
	return MultiDistance{
		R: smallerMagnitude(a.R, b.R),
		G: smallerMagnitude(a.G, b.G),
		B: smallerMagnitude(a.B, b.B),
	}
}

// MultiAndTrueDistanceSelector is a MultiDistanceSelector plus a fourth
// channel updated on every AddEdge regardless of color, per spec.md §4.3.
type MultiAndTrueDistanceSelector struct {
	r, g, b, a SignedDistance
}

func NewMultiAndTrueDistanceSelector() *MultiAndTrueDistanceSelector {
	init := InitialSignedDistance()
	return &MultiAndTrueDistanceSelector{r: init, g: init, b: init, a: init}
}

func (s *MultiAndTrueDistanceSelector) Reset(origin Vector2) {
	init := InitialSignedDistance()
	s.r, s.g, s.b, s.a = init, init, init, init
}

func (s *MultiAndTrueDistanceSelector) AddEdge(d SignedDistance, edge EdgeSegment, origin Vector2, t float64) {
	c := edge.Color()
	if c.Has(ColorRed) {
		s.r = s.r.Resolve(d)
	}
	if c.Has(ColorGreen) {
		s.g = s.g.Resolve(d)
	}
	if c.Has(ColorBlue) {
		s.b = s.b.Resolve(d)
	}
	s.a = s.a.Resolve(d)
}

func (s *MultiAndTrueDistanceSelector) Distance() MultiAndTrueDistance {
	return MultiAndTrueDistance{R: s.r.Distance, G: s.g.Distance, B: s.b.Distance, A: s.a.Distance}
}

// Merge takes the smaller |value| per channel independently, including A.
func (s *MultiAndTrueDistanceSelector) Merge(a, b MultiAndTrueDistance) MultiAndTrueDistance {
	return MultiAndTrueDistance{
		R: smallerMagnitude(a.R, b.R),
		G: smallerMagnitude(a.G, b.G),
		B: smallerMagnitude(a.B, b.B),
		A: smallerMagnitude(a.A, b.A),
	}
}

func smallerMagnitude(x, y float64) float64 {
	if absFloat(x) < absFloat(y) {
		return x
	}
	return y
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
