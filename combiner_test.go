package msdfgen

import "testing"

func TestSimpleContourCombinerUnitSquare(t *testing.T) {
	s := NewShape()
	s.AddContour(square(true))

	combiner := NewSimpleContourCombiner[SignedDistance](s, NewTrueDistanceSelector())
	interior := combiner.Distance(V2(5, 5))
	exterior := combiner.Distance(V2(-5, -5))

	if interior.Distance >= 0 {
		t.Errorf("interior distance = %v, want negative", interior.Distance)
	}
	if exterior.Distance <= 0 {
		t.Errorf("exterior distance = %v, want positive", exterior.Distance)
	}
}

func TestOverlappingContourCombinerAgreesWithWinding(t *testing.T) {
	s := NewShape()
	// Two overlapping CCW squares: [0,10]x[0,10] and [5,15]x[0,10].
	c1 := NewContour()
	c1.AddEdge(NewLinearSegment(V2(0, 0), V2(10, 0)))
	c1.AddEdge(NewLinearSegment(V2(10, 0), V2(10, 10)))
	c1.AddEdge(NewLinearSegment(V2(10, 10), V2(0, 10)))
	c1.AddEdge(NewLinearSegment(V2(0, 10), V2(0, 0)))

	c2 := NewContour()
	c2.AddEdge(NewLinearSegment(V2(5, 0), V2(15, 0)))
	c2.AddEdge(NewLinearSegment(V2(15, 0), V2(15, 10)))
	c2.AddEdge(NewLinearSegment(V2(15, 10), V2(5, 10)))
	c2.AddEdge(NewLinearSegment(V2(5, 10), V2(5, 0)))

	s.AddContour(c1)
	s.AddContour(c2)

	combiner := NewOverlappingContourCombiner[SignedDistance](s, NewTrueDistanceSelector())
	overlap := combiner.Distance(V2(7, 5))
	if overlap.Distance >= 0 {
		t.Errorf("overlap region distance = %v, want negative (still interior)", overlap.Distance)
	}
}
