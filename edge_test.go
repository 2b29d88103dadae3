package msdfgen

import (
	"math"
	"testing"
)

func TestLinearSegmentSignedDistanceInterior(t *testing.T) {
	e := NewLinearSegment(V2(0, 0), V2(10, 0))
	d, t0 := e.SignedDistance(V2(5, 2))
	// (5,2) is counterclockwise of the P0->P1 tangent, the filled side
	// for a counterclockwise-wound contour, so the signed distance is
	// negative per spec.md §3.
	if !almostEqual(d.Distance, -2, 1e-9) {
		t.Errorf("Distance = %v, want -2", d.Distance)
	}
	if t0 <= 0 || t0 >= 1 {
		t.Errorf("t = %v, want strictly inside (0,1)", t0)
	}
}

func TestLinearSegmentSignedDistanceSign(t *testing.T) {
	e := NewLinearSegment(V2(0, 0), V2(10, 0))
	below, _ := e.SignedDistance(V2(5, -2))
	above, _ := e.SignedDistance(V2(5, 2))
	if below.Distance == above.Distance {
		t.Error("points on opposite sides should have opposite-signed distance")
	}
	if below.Distance*above.Distance >= 0 {
		t.Errorf("expected opposite signs, got %v and %v", below.Distance, above.Distance)
	}
}

func TestEdgeEndpointDistanceIsZero(t *testing.T) {
	segments := []EdgeSegment{
		NewLinearSegment(V2(0, 0), V2(4, 3)),
		NewQuadraticSegment(V2(0, 0), V2(2, 5), V2(4, 0)),
		NewCubicSegment(V2(0, 0), V2(1, 5), V2(3, 5), V2(4, 0)),
	}
	for _, e := range segments {
		for _, p := range []Vector2{e.Point(0), e.Point(1)} {
			d, _ := e.SignedDistance(p)
			if !almostEqual(d.Distance, 0, 1e-6) {
				t.Errorf("%T endpoint distance = %v, want ~0", e, d.Distance)
			}
		}
	}
}

func TestQuadraticSegmentCoincidentControlPoints(t *testing.T) {
	e := NewQuadraticSegment(V2(0, 0), V2(0, 0), V2(0, 0))
	d, _ := e.SignedDistance(V2(0.001, 0))
	if math.IsNaN(d.Distance) {
		t.Fatal("distance is NaN")
	}
	if !almostEqual(d.Distance, 0.001, 1e-6) {
		t.Errorf("distance = %v, want ~0.001", d.Distance)
	}
}

func TestEdgeReverseRoundTrip(t *testing.T) {
	segments := []EdgeSegment{
		NewLinearSegment(V2(0, 0), V2(4, 3)),
		NewQuadraticSegment(V2(0, 0), V2(2, 5), V2(4, 0)),
		NewCubicSegment(V2(0, 0), V2(1, 5), V2(3, 5), V2(4, 0)),
	}
	for _, e := range segments {
		r := e.Reverse()
		if !almostEqual(r.Point(0).X, e.Point(1).X, 1e-9) || !almostEqual(r.Point(0).Y, e.Point(1).Y, 1e-9) {
			t.Errorf("%T: Reverse().Point(0) != Point(1)", e)
		}
		if !almostEqual(r.Point(1).X, e.Point(0).X, 1e-9) || !almostEqual(r.Point(1).Y, e.Point(0).Y, 1e-9) {
			t.Errorf("%T: Reverse().Point(1) != Point(0)", e)
		}
	}
}

func TestEdgeSplitInThirdsReproducesCurve(t *testing.T) {
	segments := []EdgeSegment{
		NewLinearSegment(V2(0, 0), V2(9, 0)),
		NewQuadraticSegment(V2(0, 0), V2(4, 8), V2(9, 0)),
		NewCubicSegment(V2(0, 0), V2(2, 8), V2(6, 8), V2(9, 0)),
	}
	for _, e := range segments {
		parts := e.SplitInThirds()
		if !almostEqual(parts[0].Point(0).X, e.Point(0).X, 1e-9) {
			t.Errorf("%T: first part doesn't start at original start", e)
		}
		if !almostEqual(parts[2].Point(1).X, e.Point(1).X, 1e-9) {
			t.Errorf("%T: last part doesn't end at original end", e)
		}
		mid1 := e.Point(1.0 / 3.0)
		if !almostEqual(parts[0].Point(1).X, mid1.X, 1e-6) || !almostEqual(parts[0].Point(1).Y, mid1.Y, 1e-6) {
			t.Errorf("%T: split point at 1/3 mismatch: got %v, want %v", e, parts[0].Point(1), mid1)
		}
	}
}

func TestScanlineIntersectionsLinear(t *testing.T) {
	e := NewLinearSegment(V2(0, 0), V2(10, 10))
	isects := e.ScanlineIntersections(5)
	if len(isects) != 1 {
		t.Fatalf("len(isects) = %d, want 1", len(isects))
	}
	if !almostEqual(isects[0].X, 5, 1e-9) {
		t.Errorf("X = %v, want 5", isects[0].X)
	}
}
