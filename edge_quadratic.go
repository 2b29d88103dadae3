package msdfgen

import "math"

// QuadraticSegment is a quadratic Bézier edge through three control
// points, per spec.md §3/§4.2.
type QuadraticSegment struct {
	P0, P1, P2 Vector2
	color      EdgeColor
}

// NewQuadraticSegment creates a white quadratic edge. The control points
// are stored as given, even when collinear (degenerate to a line); such
// edges rely on the chord fallback in Direction.
func NewQuadraticSegment(p0, p1, p2 Vector2) *QuadraticSegment {
	return &QuadraticSegment{P0: p0, P1: p1, P2: p2, color: ColorWhite}
}

func (e *QuadraticSegment) Point(t float64) Vector2 {
	u := 1 - t
	return Vector2{
		X: u*u*e.P0.X + 2*u*t*e.P1.X + t*t*e.P2.X,
		Y: u*u*e.P0.Y + 2*u*t*e.P1.Y + t*t*e.P2.Y,
	}
}

// Direction returns B'(t) = 2(1-t)(P1-P0) + 2t(P2-P1), falling back to the
// chord P2-P0 wherever the derivative vanishes at the queried t (as at an
// endpoint that coincides with the control point), per spec.md §4.2.
func (e *QuadraticSegment) Direction(t float64) Vector2 {
	u := 1 - t
	d := Vector2{
		X: 2*u*(e.P1.X-e.P0.X) + 2*t*(e.P2.X-e.P1.X),
		Y: 2*u*(e.P1.Y-e.P0.Y) + 2*t*(e.P2.Y-e.P1.Y),
	}
	if d.IsZero() {
		return e.P2.Sub(e.P0)
	}
	return d
}

// DirectionChange returns the constant second derivative
// B''(t) = 2(P2-2P1+P0).
func (e *QuadraticSegment) DirectionChange(t float64) Vector2 {
	return e.P0.Sub(e.P1.Mul(2)).Add(e.P2).Mul(2)
}

func (e *QuadraticSegment) Color() EdgeColor { return e.color }

func (e *QuadraticSegment) WithColor(c EdgeColor) EdgeSegment {
	cp := *e
	cp.color = c
	return &cp
}

// SignedDistance implements spec.md §4.2's quadratic algorithm: expand
// d|Q(t)-p|^2/dt = 0 into a cubic in t using the coefficients derived from
// (P0-p), (P1-P0), (P2-2P1+P0), solve it, and combine the interior roots
// with the two endpoint candidates.
func (e *QuadraticSegment) SignedDistance(p Vector2) (SignedDistance, float64) {
	qa := e.P0.Sub(p)
	ab := e.P1.Sub(e.P0)
	br := e.P2.Sub(e.P1).Sub(ab)

	a := br.Dot(br)
	b := 3 * ab.Dot(br)
	c := 2*ab.Dot(ab) + qa.Dot(br)
	d := qa.Dot(ab)

	roots := SolveCubic(a, b, c, d)

	best := InitialSignedDistance()
	bestT := 0.0

	evaluate := func(t float64) {
		pt := e.Point(t)
		q := p.Sub(pt)
		tangent := e.Direction(t)
		dist := signedPerpendicular(tangent, q, q.Length())

		var dot float64
		if t <= 0 || t >= 1 {
			dot = endpointDot(tangent, q)
		}

		cand := SignedDistance{Distance: dist, Dot: dot}
		if cand.Less(best) {
			best = cand
			bestT = t
		}
	}

	evaluate(0)
	evaluate(1)
	for _, t := range roots {
		if t > 0 && t < 1 {
			evaluate(t)
		}
	}

	return best, bestT
}

// PerpendicularDistance implements spec.md §4.2's endpoint unification:
// when t clamps to 0 or 1 within 1e-4, compare against the signed
// perpendicular distance to the tangent line at that endpoint and keep
// whichever is smaller in magnitude.
func (e *QuadraticSegment) PerpendicularDistance(d SignedDistance, p Vector2, t float64) SignedDistance {
	return quadraticCubicPerpendicular(e, d, p, t)
}

func (e *QuadraticSegment) ScanlineIntersections(y float64) []ScanlineIntersection {
	roots := SolveQuadratic(
		e.P0.Y-2*e.P1.Y+e.P2.Y,
		2*(e.P1.Y-e.P0.Y),
		e.P0.Y-y,
	)
	var out []ScanlineIntersection
	for _, t := range roots {
		if t < 0 || t > 1 {
			continue
		}
		dy := 2 * (1 - t) * (e.P1.Y - e.P0.Y) + 2*t*(e.P2.Y-e.P1.Y)
		if dy == 0 {
			continue
		}
		x := e.Point(t).X
		dir := 1
		if dy < 0 {
			dir = -1
		}
		out = append(out, ScanlineIntersection{X: x, Direction: dir})
	}
	return out
}

func (e *QuadraticSegment) Bound() Rect {
	b := Rect{
		MinX: math.Min(e.P0.X, e.P2.X), MinY: math.Min(e.P0.Y, e.P2.Y),
		MaxX: math.Max(e.P0.X, e.P2.X), MaxY: math.Max(e.P0.Y, e.P2.Y),
	}
	if dx := e.P0.X - 2*e.P1.X + e.P2.X; math.Abs(dx) > 1e-12 {
		if t := (e.P0.X - e.P1.X) / dx; t > 0 && t < 1 {
			x := e.Point(t).X
			b.MinX, b.MaxX = math.Min(b.MinX, x), math.Max(b.MaxX, x)
		}
	}
	if dy := e.P0.Y - 2*e.P1.Y + e.P2.Y; math.Abs(dy) > 1e-12 {
		if t := (e.P0.Y - e.P1.Y) / dy; t > 0 && t < 1 {
			y := e.Point(t).Y
			b.MinY, b.MaxY = math.Min(b.MinY, y), math.Max(b.MaxY, y)
		}
	}
	return b
}

func (e *QuadraticSegment) Reverse() EdgeSegment {
	return &QuadraticSegment{P0: e.P2, P1: e.P1, P2: e.P0, color: e.color}
}

func (e *QuadraticSegment) MoveStartPoint(p Vector2) EdgeSegment {
	cp := *e
	cp.P0 = p
	return &cp
}

func (e *QuadraticSegment) MoveEndPoint(p Vector2) EdgeSegment {
	cp := *e
	cp.P2 = p
	return &cp
}

// SplitInThirds performs de Casteljau subdivision at t=1/3 and t=2/3,
// producing three quadratic segments whose concatenation reproduces the
// original curve.
func (e *QuadraticSegment) SplitInThirds() [3]EdgeSegment {
	third := e.Point(1.0 / 3.0)
	twoThirds := e.Point(2.0 / 3.0)

	midControl := e.P0.Lerp(e.P1, 5.0/9.0).Lerp(e.P1.Lerp(e.P2, 4.0/9.0), 0.5)

	return [3]EdgeSegment{
		&QuadraticSegment{P0: e.P0, P1: e.P0.Lerp(e.P1, 1.0/3.0), P2: third, color: e.color},
		&QuadraticSegment{P0: third, P1: midControl, P2: twoThirds, color: e.color},
		&QuadraticSegment{P0: twoThirds, P1: e.P1.Lerp(e.P2, 2.0/3.0), P2: e.P2, color: e.color},
	}
}
