package msdfgen

import "testing"

func TestProjectionInverse(t *testing.T) {
	p := Projection{Scale: V2(28, 28), Translate: V2(-0.5, -0.5)}
	points := []Vector2{V2(0, 0), V2(1, 1), V2(-3.5, 12.25)}
	for _, pt := range points {
		got := p.Unproject(p.Project(pt))
		if !almostEqual(got.X, pt.X, 1e-9) || !almostEqual(got.Y, pt.Y, 1e-9) {
			t.Errorf("Unproject(Project(%v)) = %v, want %v", pt, got, pt)
		}
	}
}

func TestDistanceMappingInverse(t *testing.T) {
	m := DistanceMappingFromRange(2)
	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		got := m.Inverse(m.Map(x))
		if !almostEqual(got, x, 1e-9) {
			t.Errorf("Inverse(Map(%v)) = %v, want %v", x, got, x)
		}
	}
}

func TestDistanceMappingFromRangeMapsZeroToHalf(t *testing.T) {
	m := DistanceMappingFromRange(2)
	if got := m.Map(0); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("Map(0) = %v, want 0.5", got)
	}
}

func TestTransformationForRangeEmptyBounds(t *testing.T) {
	_, err := TransformationForRange(Rect{}, 32, 32, 4)
	if err != ErrEmptyShape {
		t.Errorf("err = %v, want ErrEmptyShape", err)
	}
}

func TestTransformationForRangeFitsBoundsWithPadding(t *testing.T) {
	bounds := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 20}
	transform, err := TransformationForRange(bounds, 32, 64, 4)
	if err != nil {
		t.Fatalf("TransformationForRange: %v", err)
	}

	// The tighter axis (both here scale to exactly 2.4) should place
	// bounds.Min at the padding offset and bounds.Max at width/height
	// minus the padding offset, on at least one axis.
	minPx := transform.Projection.Project(V2(bounds.MinX, bounds.MinY))
	maxPx := transform.Projection.Project(V2(bounds.MaxX, bounds.MaxY))

	if minPx.X < 4 || minPx.Y < 4 || maxPx.X > 32-4 || maxPx.Y > 64-4 {
		t.Errorf("projected bounds [%v, %v] violate the 4px pad within a 32x64 bitmap", minPx, maxPx)
	}
	// X is the tighter-fitting axis (10/32 < 20/64 is false; scale picks
	// the smaller of 24/10=2.4 and 56/20=2.8, so X has no slack beyond
	// the pad).
	if !almostEqual(minPx.X, 4, 1e-6) {
		t.Errorf("projected min.X = %v, want exactly the 4px pad on the tight axis", minPx.X)
	}
	if !almostEqual(maxPx.X, 28, 1e-6) {
		t.Errorf("projected max.X = %v, want 28 (32 - 4px pad)", maxPx.X)
	}
}
