package msdfgen

import "math"

// Vector2 is a real-valued 2-D vector. It is used both as a direction and
// as a point; the distinction is documentation, not type, matching the
// data model in spec.md §3.
type Vector2 struct {
	X, Y float64
}

// V2 is a convenience constructor for Vector2.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2-D cross product (the z-component of the 3-D cross
// product with z=0). Its sign indicates whether w is counterclockwise (>0)
// or clockwise (<0) from v.
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of the vector.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared length, avoiding a sqrt.
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Orthogonal returns v rotated 90 degrees. Counterclockwise (the
// polarity used throughout this package) unless ccw is false.
func (v Vector2) Orthogonal(ccw bool) Vector2 {
	if ccw {
		return Vector2{X: -v.Y, Y: v.X}
	}
	return Vector2{X: v.Y, Y: -v.X}
}

// Normalize returns a unit vector in the direction of v. Per spec.md §3,
// normalizing the zero vector returns a chosen axis vector — (1, 0) unless
// allowZero is true, in which case the zero vector itself is returned.
func (v Vector2) Normalize(allowZero ...bool) Vector2 {
	length := v.Length()
	if length == 0 {
		if len(allowZero) > 0 && allowZero[0] {
			return Vector2{}
		}
		return Vector2{X: 1, Y: 0}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Lerp returns linear interpolation between v and w: v + t*(w-v).
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{
		X: v.X + t*(w.X-v.X),
		Y: v.Y + t*(w.Y-v.Y),
	}
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyRect returns a rectangle with inverted infinite bounds, suitable as
// the identity element for repeated Union calls.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, s.MinX),
		MinY: math.Min(r.MinY, s.MinY),
		MaxX: math.Max(r.MaxX, s.MaxX),
		MaxY: math.Max(r.MaxY, s.MaxY),
	}
}

// Expand returns a rectangle expanded by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		MinX: r.MinX - margin, MinY: r.MinY - margin,
		MaxX: r.MaxX + margin, MaxY: r.MaxY + margin,
	}
}
