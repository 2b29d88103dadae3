package msdfgen

// GeneratorConfig controls the SDF/PSDF generators, per spec.md §6.
type GeneratorConfig struct {
	// OverlapSupport selects the overlapping combiner (non-zero winding
	// correction) when true, the simple combiner when false.
	OverlapSupport bool
}

// DefaultGeneratorConfig returns {OverlapSupport: true}, per spec.md §6.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{OverlapSupport: true}
}

// MSDFGeneratorConfig extends GeneratorConfig with an opaque
// error-correction payload. Error correction itself is out of scope per
// spec.md §1; the hook exists so a caller-supplied post-process can still
// be threaded through without the generator needing to know its shape.
type MSDFGeneratorConfig struct {
	GeneratorConfig
	ErrorCorrection any
}

// DefaultMSDFGeneratorConfig returns the same default as
// DefaultGeneratorConfig with no error-correction payload.
func DefaultMSDFGeneratorConfig() MSDFGeneratorConfig {
	return MSDFGeneratorConfig{GeneratorConfig: DefaultGeneratorConfig()}
}

// GenerateSDF fills a single-channel bitmap with true signed distance,
// per spec.md §4.6.
func GenerateSDF(bitmap Bitmap, shape *Shape, transform SDFTransformation, cfg GeneratorConfig) error {
	if bitmap.ChannelCount() != 1 {
		return ErrChannelCountMismatch
	}
	generate(bitmap, shape, transform, cfg.OverlapSupport, func() Selector[SignedDistance] { return NewTrueDistanceSelector() })
	return nil
}

// GeneratePSDF fills a single-channel bitmap with perpendicular signed
// distance, per spec.md §4.6.
func GeneratePSDF(bitmap Bitmap, shape *Shape, transform SDFTransformation, cfg GeneratorConfig) error {
	if bitmap.ChannelCount() != 1 {
		return ErrChannelCountMismatch
	}
	generate(bitmap, shape, transform, cfg.OverlapSupport, func() Selector[SignedDistance] { return NewPerpendicularDistanceSelector() })
	return nil
}

// GenerateMSDF fills a three-channel bitmap with multi-channel signed
// distance, per spec.md §4.6.
func GenerateMSDF(bitmap Bitmap, shape *Shape, transform SDFTransformation, cfg MSDFGeneratorConfig) error {
	if bitmap.ChannelCount() != 3 {
		return ErrChannelCountMismatch
	}
	generateMulti(bitmap, shape, transform, cfg.OverlapSupport)
	return nil
}

// GenerateMTSDF fills a four-channel bitmap with multi-channel-and-true
// signed distance, per spec.md §4.6.
func GenerateMTSDF(bitmap Bitmap, shape *Shape, transform SDFTransformation, cfg MSDFGeneratorConfig) error {
	if bitmap.ChannelCount() != 4 {
		return ErrChannelCountMismatch
	}
	generateMultiAndTrue(bitmap, shape, transform, cfg.OverlapSupport)
	return nil
}

// rowOrder returns, for each output row index, the shape-space row it
// corresponds to, accounting for the shape's Y-axis orientation per
// spec.md §4.6 step 1: "up" maps to row 0 unless the shape says
// otherwise, in which case it maps to the last row.
func rowOrder(shape *Shape, height int) func(row int) int {
	if shape.YAxisOrientation == YAxisDown {
		return func(row int) int { return row }
	}
	return func(row int) int { return height - 1 - row }
}

// forEachPixelSerpentine drives the single-threaded, synchronous pixel
// loop required by spec.md §5: rows outer, columns in alternating
// (serpentine) order within each row so the overlapping combiner's
// scanline cache is reused between adjacent calls.
func forEachPixelSerpentine(width, height int, shape *Shape, visit func(x, y int, p Vector2)) {
	order := rowOrder(shape, height)
	for row := 0; row < height; row++ {
		y := order(row)
		leftToRight := row%2 == 0
		for i := 0; i < width; i++ {
			x := i
			if !leftToRight {
				x = width - 1 - i
			}
			visit(x, row, V2(float64(x)+0.5, float64(y)+0.5))
		}
	}
}

// generate drives GenerateSDF/GeneratePSDF: the two differ only in which
// scalar selector newSelector constructs (TrueDistance vs
// PerpendicularDistance), per spec.md §4.6 step 5.
func generate(bitmap Bitmap, shape *Shape, transform SDFTransformation, overlapSupport bool, newSelector func() Selector[SignedDistance]) {
	width, height := bitmap.Width(), bitmap.Height()

	var combine func(Vector2) SignedDistance
	if overlapSupport {
		combiner := NewOverlappingContourCombiner[SignedDistance](shape, newSelector())
		combine = combiner.Distance
	} else {
		combiner := NewSimpleContourCombiner[SignedDistance](shape, newSelector())
		combine = combiner.Distance
	}

	forEachPixelSerpentine(width, height, shape, func(x, y int, p Vector2) {
		d := combine(transform.Projection.Unproject(p))
		bitmap.SetPixel(x, y, []float64{transform.DistanceMapping.Map(d.Distance)})
	})
}

func generateMulti(bitmap Bitmap, shape *Shape, transform SDFTransformation, overlapSupport bool) {
	width, height := bitmap.Width(), bitmap.Height()
	mapChannels := func(m MultiDistance) []float64 {
		return []float64{
			transform.DistanceMapping.Map(m.R),
			transform.DistanceMapping.Map(m.G),
			transform.DistanceMapping.Map(m.B),
		}
	}

	if overlapSupport {
		selector := NewMultiDistanceSelector()
		combiner := NewOverlappingContourCombiner[MultiDistance](shape, selector)
		forEachPixelSerpentine(width, height, shape, func(x, y int, p Vector2) {
			m := combiner.Distance(transform.Projection.Unproject(p))
			bitmap.SetPixel(x, y, mapChannels(m))
		})
		return
	}
	selector := NewMultiDistanceSelector()
	combiner := NewSimpleContourCombiner[MultiDistance](shape, selector)
	forEachPixelSerpentine(width, height, shape, func(x, y int, p Vector2) {
		m := combiner.Distance(transform.Projection.Unproject(p))
		bitmap.SetPixel(x, y, mapChannels(m))
	})
}

func generateMultiAndTrue(bitmap Bitmap, shape *Shape, transform SDFTransformation, overlapSupport bool) {
	width, height := bitmap.Width(), bitmap.Height()
	mapChannels := func(m MultiAndTrueDistance) []float64 {
		return []float64{
			transform.DistanceMapping.Map(m.R),
			transform.DistanceMapping.Map(m.G),
			transform.DistanceMapping.Map(m.B),
			transform.DistanceMapping.Map(m.A),
		}
	}

	if overlapSupport {
		selector := NewMultiAndTrueDistanceSelector()
		combiner := NewOverlappingContourCombiner[MultiAndTrueDistance](shape, selector)
		forEachPixelSerpentine(width, height, shape, func(x, y int, p Vector2) {
			m := combiner.Distance(transform.Projection.Unproject(p))
			bitmap.SetPixel(x, y, mapChannels(m))
		})
		return
	}
	selector := NewMultiAndTrueDistanceSelector()
	combiner := NewSimpleContourCombiner[MultiAndTrueDistance](shape, selector)
	forEachPixelSerpentine(width, height, shape, func(x, y int, p Vector2) {
		m := combiner.Distance(transform.Projection.Unproject(p))
		bitmap.SetPixel(x, y, mapChannels(m))
	})
}
