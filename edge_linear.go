package msdfgen

import (
	"log/slog"
	"math"
)

// LinearSegment is a straight edge between two control points, per
// spec.md §3/§4.2.
type LinearSegment struct {
	P0, P1 Vector2
	color  EdgeColor
}

// NewLinearSegment creates a white (all-channel) linear edge from p0 to
// p1.
func NewLinearSegment(p0, p1 Vector2) *LinearSegment {
	return &LinearSegment{P0: p0, P1: p1, color: ColorWhite}
}

func (e *LinearSegment) Point(t float64) Vector2 { return e.P0.Lerp(e.P1, t) }

func (e *LinearSegment) Direction(t float64) Vector2 { return e.P1.Sub(e.P0) }

func (e *LinearSegment) DirectionChange(t float64) Vector2 { return Vector2{} }

func (e *LinearSegment) Color() EdgeColor { return e.color }

func (e *LinearSegment) WithColor(c EdgeColor) EdgeSegment {
	cp := *e
	cp.color = c
	return &cp
}

// SignedDistance implements the closed-form linear case of spec.md §4.2:
// project (p-P0) onto (P1-P0), clamp to the segment, and take the signed
// perpendicular distance when the projection lands strictly inside;
// otherwise take the Euclidean distance to the nearer endpoint, signed by
// the cross product with the tangent.
func (e *LinearSegment) SignedDistance(p Vector2) (SignedDistance, float64) {
	ab := e.P1.Sub(e.P0)
	ap := p.Sub(e.P0)

	abLenSq := ab.LengthSquared()
	if abLenSq == 0 {
		Logger().Warn("zero-length linear edge", slog.Any("point", e.P0))
		return SignedDistance{Distance: ap.Length(), Dot: 0}, 0
	}

	t := ap.Dot(ab) / abLenSq

	var closest Vector2
	switch {
	case t <= 0:
		closest = e.P0
	case t >= 1:
		closest = e.P1
	default:
		closest = e.P0.Add(ab.Mul(t))
	}
	q := p.Sub(closest)
	dist := signedPerpendicular(ab, q, q.Length())

	if t > 0 && t < 1 {
		return SignedDistance{Distance: dist, Dot: 0}, t
	}
	return SignedDistance{Distance: dist, Dot: endpointDot(ab, q)}, t
}

// PerpendicularDistance returns d unchanged: no endpoint unification is
// applied to linear segments, per spec.md §4.2.
func (e *LinearSegment) PerpendicularDistance(d SignedDistance, p Vector2, t float64) SignedDistance {
	return d
}

func (e *LinearSegment) ScanlineIntersections(y float64) []ScanlineIntersection {
	dy := e.P1.Y - e.P0.Y
	if dy == 0 {
		return nil
	}
	t := (y - e.P0.Y) / dy
	if t < 0 || t > 1 {
		return nil
	}
	x := e.P0.X + t*(e.P1.X-e.P0.X)
	dir := 1
	if dy < 0 {
		dir = -1
	}
	return []ScanlineIntersection{{X: x, Direction: dir}}
}

func (e *LinearSegment) Bound() Rect {
	return Rect{
		MinX: math.Min(e.P0.X, e.P1.X), MinY: math.Min(e.P0.Y, e.P1.Y),
		MaxX: math.Max(e.P0.X, e.P1.X), MaxY: math.Max(e.P0.Y, e.P1.Y),
	}
}

func (e *LinearSegment) Reverse() EdgeSegment {
	return &LinearSegment{P0: e.P1, P1: e.P0, color: e.color}
}

func (e *LinearSegment) MoveStartPoint(p Vector2) EdgeSegment {
	return &LinearSegment{P0: p, P1: e.P1, color: e.color}
}

func (e *LinearSegment) MoveEndPoint(p Vector2) EdgeSegment {
	return &LinearSegment{P0: e.P0, P1: p, color: e.color}
}

func (e *LinearSegment) SplitInThirds() [3]EdgeSegment {
	a := e.Point(1.0 / 3.0)
	b := e.Point(2.0 / 3.0)
	return [3]EdgeSegment{
		&LinearSegment{P0: e.P0, P1: a, color: e.color},
		&LinearSegment{P0: a, P1: b, color: e.color},
		&LinearSegment{P0: b, P1: e.P1, color: e.color},
	}
}
