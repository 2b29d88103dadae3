package msdfgen

import (
	"log/slog"
	"math"
)

// CubicSegment is a cubic Bézier edge through four control points, per
// spec.md §3/§4.2.
type CubicSegment struct {
	P0, P1, P2, P3 Vector2
	color          EdgeColor
}

// NewCubicSegment creates a white cubic edge.
func NewCubicSegment(p0, p1, p2, p3 Vector2) *CubicSegment {
	if p0.Sub(p1).IsZero() && p2.Sub(p3).IsZero() {
		Logger().Warn("cubic edge has both control points coincident with their endpoints",
			slog.Any("p0", p0), slog.Any("p3", p3))
	}
	return &CubicSegment{P0: p0, P1: p1, P2: p2, P3: p3, color: ColorWhite}
}

func (e *CubicSegment) Point(t float64) Vector2 {
	u := 1 - t
	u2, t2 := u*u, t*t
	return Vector2{
		X: u*u2*e.P0.X + 3*u2*t*e.P1.X + 3*u*t2*e.P2.X + t*t2*e.P3.X,
		Y: u*u2*e.P0.Y + 3*u2*t*e.P1.Y + 3*u*t2*e.P2.Y + t*t2*e.P3.Y,
	}
}

// Direction returns B'(t), falling back per spec.md §4.2 to P2-P0 at t=0
// and P3-P1 at t=1 when the true derivative vanishes there (collinear
// control points at that end).
func (e *CubicSegment) Direction(t float64) Vector2 {
	u := 1 - t
	d := Vector2{
		X: 3*u*u*(e.P1.X-e.P0.X) + 6*u*t*(e.P2.X-e.P1.X) + 3*t*t*(e.P3.X-e.P2.X),
		Y: 3*u*u*(e.P1.Y-e.P0.Y) + 6*u*t*(e.P2.Y-e.P1.Y) + 3*t*t*(e.P3.Y-e.P2.Y),
	}
	if d.IsZero() {
		if t <= 0 {
			return e.P2.Sub(e.P0)
		}
		return e.P3.Sub(e.P1)
	}
	return d
}

// DirectionChange returns B''(t) = 6(1-t)(P2-2P1+P0) + 6t(P3-2P2+P1).
func (e *CubicSegment) DirectionChange(t float64) Vector2 {
	a := e.P2.Sub(e.P1.Mul(2)).Add(e.P0)
	b := e.P3.Sub(e.P2.Mul(2)).Add(e.P1)
	u := 1 - t
	return a.Mul(6 * u).Add(b.Mul(6 * t))
}

func (e *CubicSegment) Color() EdgeColor { return e.color }

func (e *CubicSegment) WithColor(c EdgeColor) EdgeSegment {
	cp := *e
	cp.color = c
	return &cp
}

// SignedDistance implements spec.md §4.2's cubic algorithm: there is no
// closed form, so it seeds Newton's method from 5 uniformly spaced
// starting parameters, refines each for up to 4 iterations on
// <Q(t)-p, Q'(t)> = 0, rejects refinements that leave [0,1], and compares
// the survivors against the two endpoint candidates.
func (e *CubicSegment) SignedDistance(p Vector2) (SignedDistance, float64) {
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

	for i := 0; i <= 4; i++ {
		t0 := float64(i) / 4.0
		if t, ok := e.newtonRefine(p, t0, 4); ok {
			evaluate(t)
		}
	}

	return best, bestT
}

// newtonRefine performs up to maxIter Newton iterations on
// f(t) = <Q(t)-p, Q'(t)> = 0, with step t - <q,d1> / (<d1,d1> + <q,d2>)
// per spec.md §4.2. Returns ok=false if the refined t leaves [0,1].
func (e *CubicSegment) newtonRefine(p Vector2, t float64, maxIter int) (float64, bool) {
	for i := 0; i < maxIter; i++ {
		q := e.Point(t).Sub(p)
		d1 := e.Direction(t)
		d2 := e.DirectionChange(t)

		denom := d1.Dot(d1) + q.Dot(d2)
		if denom == 0 {
			break
		}
		step := q.Dot(d1) / denom
		next := t - step
		if next < 0 || next > 1 {
			return 0, false
		}
		t = next
	}
	return t, true
}

// PerpendicularDistance implements spec.md §4.2's endpoint unification,
// shared with QuadraticSegment.
func (e *CubicSegment) PerpendicularDistance(d SignedDistance, p Vector2, t float64) SignedDistance {
	return quadraticCubicPerpendicular(e, d, p, t)
}

func (e *CubicSegment) ScanlineIntersections(y float64) []ScanlineIntersection {
	a := -e.P0.Y + 3*e.P1.Y - 3*e.P2.Y + e.P3.Y
	b := 3*e.P0.Y - 6*e.P1.Y + 3*e.P2.Y
	c := -3*e.P0.Y + 3*e.P1.Y
	d := e.P0.Y - y

	roots := SolveCubic(a, b, c, d)
	var out []ScanlineIntersection
	for _, t := range roots {
		if t < 0 || t > 1 {
			continue
		}
		u := 1 - t
		dy := 3*u*u*(e.P1.Y-e.P0.Y) + 6*u*t*(e.P2.Y-e.P1.Y) + 3*t*t*(e.P3.Y-e.P2.Y)
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

func (e *CubicSegment) Bound() Rect {
	b := Rect{
		MinX: math.Min(e.P0.X, e.P3.X), MinY: math.Min(e.P0.Y, e.P3.Y),
		MaxX: math.Max(e.P0.X, e.P3.X), MaxY: math.Max(e.P0.Y, e.P3.Y),
	}
	ax := -e.P0.X + 3*e.P1.X - 3*e.P2.X + e.P3.X
	bx := 2*e.P0.X - 4*e.P1.X + 2*e.P2.X
	cx := -e.P0.X + e.P1.X
	for _, t := range SolveQuadratic(ax, bx, cx) {
		if t > 0 && t < 1 {
			x := e.Point(t).X
			b.MinX, b.MaxX = math.Min(b.MinX, x), math.Max(b.MaxX, x)
		}
	}
	ay := -e.P0.Y + 3*e.P1.Y - 3*e.P2.Y + e.P3.Y
	by := 2*e.P0.Y - 4*e.P1.Y + 2*e.P2.Y
	cy := -e.P0.Y + e.P1.Y
	for _, t := range SolveQuadratic(ay, by, cy) {
		if t > 0 && t < 1 {
			y := e.Point(t).Y
			b.MinY, b.MaxY = math.Min(b.MinY, y), math.Max(b.MaxY, y)
		}
	}
	return b
}

func (e *CubicSegment) Reverse() EdgeSegment {
	return &CubicSegment{P0: e.P3, P1: e.P2, P2: e.P1, P3: e.P0, color: e.color}
}

func (e *CubicSegment) MoveStartPoint(p Vector2) EdgeSegment {
	cp := *e
	// Preserve the outgoing tangent direction from the old start point,
	// as the reference implementation does, so the curve doesn't kink.
	if !cp.P0.Sub(cp.P1).IsZero() {
		cp.P1 = cp.P1.Add(p.Sub(cp.P0))
	}
	cp.P0 = p
	return &cp
}

func (e *CubicSegment) MoveEndPoint(p Vector2) EdgeSegment {
	cp := *e
	if !cp.P3.Sub(cp.P2).IsZero() {
		cp.P2 = cp.P2.Add(p.Sub(cp.P3))
	}
	cp.P3 = p
	return &cp
}

// p012 is the second-level de Casteljau point mix(mix(p0,p1,t),mix(p1,p2,t),t).
func (e *CubicSegment) p012(t float64) Vector2 {
	return e.P0.Lerp(e.P1, t).Lerp(e.P1.Lerp(e.P2, t), t)
}

// p123 is the second-level de Casteljau point mix(mix(p1,p2,t),mix(p2,p3,t),t).
func (e *CubicSegment) p123(t float64) Vector2 {
	return e.P1.Lerp(e.P2, t).Lerp(e.P2.Lerp(e.P3, t), t)
}

// SplitInThirds performs de Casteljau subdivision at t=1/3 and t=2/3,
// matching the reference implementation's exact control-point formulas so
// that the three parts reproduce the original curve.
func (e *CubicSegment) SplitInThirds() [3]EdgeSegment {
	a := e.Point(1.0 / 3.0)
	b := e.Point(2.0 / 3.0)

	part1P1 := e.P0
	if e.P0 != e.P1 {
		part1P1 = e.P0.Lerp(e.P1, 1.0/3.0)
	}
	part3P2 := e.P3
	if e.P2 != e.P3 {
		part3P2 = e.P2.Lerp(e.P3, 2.0/3.0)
	}

	return [3]EdgeSegment{
		&CubicSegment{P0: e.P0, P1: part1P1, P2: e.p012(1.0 / 3.0), P3: a, color: e.color},
		&CubicSegment{
			P0:    a,
			P1:    e.p012(1.0 / 3.0).Lerp(e.p123(1.0/3.0), 2.0/3.0),
			P2:    e.p012(2.0 / 3.0).Lerp(e.p123(2.0/3.0), 1.0/3.0),
			P3:    b,
			color: e.color,
		},
		&CubicSegment{P0: b, P1: e.p123(2.0 / 3.0), P2: part3P2, P3: e.P3, color: e.color},
	}
}
