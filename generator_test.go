package msdfgen

import "testing"

func unitSquareShape() *Shape {
	s := NewShape()
	s.AddContour(square(true))
	return s
}

func TestGenerateSDFUnitSquare(t *testing.T) {
	shape := NewShape()
	c := NewContour()
	c.AddEdge(NewLinearSegment(V2(0, 0), V2(1, 0)))
	c.AddEdge(NewLinearSegment(V2(1, 0), V2(1, 1)))
	c.AddEdge(NewLinearSegment(V2(1, 1), V2(0, 1)))
	c.AddEdge(NewLinearSegment(V2(0, 1), V2(0, 0)))
	shape.AddContour(c)

	bitmap := NewFloatBitmap(32, 32, 1)
	// Scale 20, Translate 0.3 places the unit square at pixels [6, 26] of
	// the 32px bitmap. With the default Y-up orientation output row r is
	// sampled at pixel-space y = 31 - r, so pixel (16,16)'s center
	// unprojects to (0.525, 0.475), well inside the square, and pixel
	// (0,0)'s center unprojects to (-0.275, 1.275), outside it. A range of 0.25 (a quarter of the
	// square's own size) is small enough that both samples saturate past
	// the [0, 1] ends of the mapped range instead of landing near the
	// middle.
	transform := NewSDFTransformation(
		Projection{Scale: V2(20, 20), Translate: V2(0.3, 0.3)},
		DistanceMappingFromRange(0.25),
	)

	if err := GenerateSDF(bitmap, shape, transform, DefaultGeneratorConfig()); err != nil {
		t.Fatalf("GenerateSDF: %v", err)
	}

	// Negative distance marks the filled side (spec.md §3), and
	// DistanceMappingFromRange sends -r to 0 and +r to 1, so a deep
	// interior pixel maps well below 0 and a genuinely exterior pixel
	// maps well above 1 at this saturating range.
	interior := bitmap.GetPixel(16, 16)[0]
	if interior > 0.1 {
		t.Errorf("deep interior value = %v, want well below 0.1", interior)
	}

	exterior := bitmap.GetPixel(0, 0)[0]
	if exterior < 0.9 {
		t.Errorf("exterior value = %v, want well above 0.9", exterior)
	}
}

func TestGenerateSDFChannelMismatch(t *testing.T) {
	shape := unitSquareShape()
	bitmap := NewFloatBitmap(4, 4, 3)
	transform := NewSDFTransformation(IdentityProjection(), IdentityDistanceMapping())

	if err := GenerateSDF(bitmap, shape, transform, DefaultGeneratorConfig()); err != ErrChannelCountMismatch {
		t.Errorf("err = %v, want ErrChannelCountMismatch", err)
	}
}

func TestGenerateMSDFChannelCount(t *testing.T) {
	shape := unitSquareShape()
	ColorEdgesSimple(shape, DefaultColoringConfig())

	bitmap := NewFloatBitmap(16, 16, 3)
	// Scale 14, Translate 1/14 places the unit square at pixels [1, 15] of
	// the 16px bitmap, centered on pixel (8,8).
	transform := NewSDFTransformation(
		Projection{Scale: V2(14, 14), Translate: V2(1.0/14, 1.0/14)},
		DistanceMappingFromRange(2),
	)

	if err := GenerateMSDF(bitmap, shape, transform, DefaultMSDFGeneratorConfig()); err != nil {
		t.Fatalf("GenerateMSDF: %v", err)
	}

	median := MultiDistance{
		R: bitmap.GetPixel(8, 8)[0],
		G: bitmap.GetPixel(8, 8)[1],
		B: bitmap.GetPixel(8, 8)[2],
	}.Median()
	if median > 0.5 {
		t.Errorf("interior median = %v, want < 0.5 (negative shape-space distance on the filled side)", median)
	}
}

func TestGenerateSDFEmptyShapeIsUniform(t *testing.T) {
	shape := NewShape()
	bitmap := NewFloatBitmap(4, 4, 1)
	transform := NewSDFTransformation(IdentityProjection(), IdentityDistanceMapping())

	if err := GenerateSDF(bitmap, shape, transform, DefaultGeneratorConfig()); err != nil {
		t.Fatalf("GenerateSDF: %v", err)
	}
	first := bitmap.GetPixel(0, 0)[0]
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if v := bitmap.GetPixel(x, y)[0]; v != first {
				t.Errorf("pixel (%d,%d) = %v, want uniform %v", x, y, v, first)
			}
		}
	}
}

func TestGenerateSDFDeterministic(t *testing.T) {
	shape := unitSquareShape()
	transform := NewSDFTransformation(
		Projection{Scale: V2(14, 14), Translate: V2(-0.5, -0.5)},
		DistanceMappingFromRange(2),
	)

	b1 := NewFloatBitmap(16, 16, 1)
	b2 := NewFloatBitmap(16, 16, 1)
	GenerateSDF(b1, shape, transform, DefaultGeneratorConfig())
	GenerateSDF(b2, shape, transform, DefaultGeneratorConfig())

	for i := range b1.Data() {
		if b1.Data()[i] != b2.Data()[i] {
			t.Fatalf("output not deterministic at index %d: %v vs %v", i, b1.Data()[i], b2.Data()[i])
		}
	}
}
