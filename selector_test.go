package msdfgen

import "testing"

func TestTrueDistanceSelectorKeepsClosest(t *testing.T) {
	s := NewTrueDistanceSelector()
	origin := V2(0, 0)
	s.Reset(origin)
	s.AddEdge(SignedDistance{Distance: 5}, nil, origin, 0)
	s.AddEdge(SignedDistance{Distance: -2}, nil, origin, 0)
	s.AddEdge(SignedDistance{Distance: 3}, nil, origin, 0)

	got := s.Distance()
	if got.Distance != -2 {
		t.Errorf("Distance() = %v, want -2 (smallest |value|)", got.Distance)
	}
}

func TestMultiDistanceSelectorPerChannel(t *testing.T) {
	s := NewMultiDistanceSelector()
	origin := V2(0, 0)
	s.Reset(origin)

	red := NewLinearSegment(V2(0, 0), V2(1, 0)).WithColor(ColorRed)
	green := NewLinearSegment(V2(0, 0), V2(1, 0)).WithColor(ColorGreen)

	s.AddEdge(SignedDistance{Distance: 1}, red, origin, 0)
	s.AddEdge(SignedDistance{Distance: 2}, green, origin, 0)

	got := s.Distance()
	if got.R != 1 {
		t.Errorf("R = %v, want 1 (only red edge contributes)", got.R)
	}
	if got.G != 2 {
		t.Errorf("G = %v, want 2 (only green edge contributes)", got.G)
	}
	if got.B != InitialSignedDistance().Distance {
		t.Errorf("B = %v, want untouched initial value", got.B)
	}
}

func TestMultiAndTrueDistanceSelectorAlphaAlwaysUpdates(t *testing.T) {
	s := NewMultiAndTrueDistanceSelector()
	origin := V2(0, 0)
	s.Reset(origin)

	black := NewLinearSegment(V2(0, 0), V2(1, 0)).WithColor(ColorBlack)
	s.AddEdge(SignedDistance{Distance: 4}, black, origin, 0)

	got := s.Distance()
	if got.A != 4 {
		t.Errorf("A = %v, want 4 (updates regardless of color)", got.A)
	}
	if got.R != InitialSignedDistance().Distance {
		t.Errorf("R = %v, want untouched (black edge contributes no channel)", got.R)
	}
}

func TestMultiDistanceSelectorMergeSmallerMagnitude(t *testing.T) {
	s := NewMultiDistanceSelector()
	a := MultiDistance{R: -1, G: 3, B: 5}
	b := MultiDistance{R: 2, G: -2, B: -4}
	merged := s.Merge(a, b)
	if merged.R != -1 || merged.G != -2 || merged.B != -4 {
		t.Errorf("Merge() = %+v, want {-1,-2,-4}", merged)
	}
}
