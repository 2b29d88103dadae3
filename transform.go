package msdfgen

import "math"

// Projection maps shape-space coordinates to bitmap-pixel coordinates and
// back, per spec.md §3: project(p) = Scale ⊙ (p+Translate), unproject(p) =
// p/Scale - Translate.
type Projection struct {
	Scale     Vector2
	Translate Vector2
}

// IdentityProjection returns a Projection with unit scale and zero
// translation.
func IdentityProjection() Projection {
	return Projection{Scale: V2(1, 1), Translate: V2(0, 0)}
}

// Project maps a shape-space point to pixel space.
func (p Projection) Project(point Vector2) Vector2 {
	return Vector2{X: (point.X + p.Translate.X) * p.Scale.X, Y: (point.Y + p.Translate.Y) * p.Scale.Y}
}

// Unproject maps a pixel-space point back to shape space, the exact
// inverse of Project.
func (p Projection) Unproject(point Vector2) Vector2 {
	return Vector2{X: point.X/p.Scale.X - p.Translate.X, Y: point.Y/p.Scale.Y - p.Translate.Y}
}

// DistanceMapping linearly maps a shape-space distance into the bitmap's
// stored value range: Map(x) = x*Scale + Translate, Inverse the exact
// inverse, per spec.md §3/§6.
type DistanceMapping struct {
	Scale     float64
	Translate float64
}

// IdentityDistanceMapping returns the identity mapping (Scale 1,
// Translate 0).
func IdentityDistanceMapping() DistanceMapping {
	return DistanceMapping{Scale: 1, Translate: 0}
}

// DistanceMappingFromRange builds the mapping spec.md §6 describes as
// typical: a shape-space distance range [-r, +r] maps to the bitmap value
// range [0, 1], so 0 maps to 0.5.
func DistanceMappingFromRange(r float64) DistanceMapping {
	return DistanceMapping{Scale: 0.5 / r, Translate: 0.5}
}

// Map converts a shape-space signed distance into a bitmap value.
func (m DistanceMapping) Map(x float64) float64 { return x*m.Scale + m.Translate }

// Inverse converts a bitmap value back into a shape-space signed
// distance, the exact inverse of Map.
func (m DistanceMapping) Inverse(v float64) float64 { return (v - m.Translate) / m.Scale }

// SDFTransformation combines a Projection and a DistanceMapping into the
// single value the generator driver needs: where to sample and how to
// rescale what it finds there, per spec.md §4.6.
type SDFTransformation struct {
	Projection      Projection
	DistanceMapping DistanceMapping
}

// NewSDFTransformation builds an SDFTransformation with the given
// projection and distance mapping.
func NewSDFTransformation(projection Projection, mapping DistanceMapping) SDFTransformation {
	return SDFTransformation{Projection: projection, DistanceMapping: mapping}
}

// TransformationForRange builds the SDFTransformation for the common case
// of spec.md §6: fit bounds into a width x height bitmap uniformly scaled
// (preserving aspect ratio, using the tighter axis) with rangeValue pixels
// of padding on every side, and map shape-space distances in
// [-rangeValue, +rangeValue] to the bitmap's [0, 1] value range. Returns
// ErrEmptyShape if bounds has zero or negative area.
func TransformationForRange(bounds Rect, width, height int, rangeValue float64) (SDFTransformation, error) {
	if bounds.IsEmpty() {
		return SDFTransformation{}, ErrEmptyShape
	}
	availX := float64(width) - 2*rangeValue
	availY := float64(height) - 2*rangeValue
	scale := math.Min(availX/bounds.Width(), availY/bounds.Height())

	// Pixel-space offset of bounds.Min: rangeValue of padding, plus half
	// the leftover space once the shape is scaled to fit availX/availY.
	leftPadX := rangeValue + 0.5*(availX-scale*bounds.Width())
	leftPadY := rangeValue + 0.5*(availY-scale*bounds.Height())

	translate := V2(leftPadX/scale-bounds.MinX, leftPadY/scale-bounds.MinY)

	projection := Projection{Scale: V2(scale, scale), Translate: translate}
	return NewSDFTransformation(projection, DistanceMappingFromRange(rangeValue)), nil
}
