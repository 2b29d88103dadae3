// Package msdfgen computes multi-channel signed distance fields (MSDF) from
// closed 2-D vector shapes built out of line, quadratic, and cubic Bézier
// segments.
//
// A signed distance field encodes, for every pixel of a raster, the
// distance from that pixel's center to the nearest point of a shape's
// outline, negative on the filled side. A multi-channel field stores three
// such fields in the red, green and blue channels, each restricted to a
// different subset of the shape's edges chosen so that sharp corners
// survive reconstruction by the per-pixel median of the three channels.
// This technique keeps glyph and icon outlines crisp under arbitrary
// magnification while storing only a small fixed-size texture.
//
// # Pipeline
//
// Build a [Shape] out of [Contour] values, each a closed loop of
// [EdgeSegment] values (see [NewLinearSegment], [NewQuadraticSegment],
// [NewCubicSegment]). Assign edge colors with one of [ColorEdgesSimple],
// [ColorEdgesInkTrap], or [ColorEdgesByDistance]. Build an
// [SDFTransformation] describing how shape-space coordinates map onto
// pixel centers and how distances map onto stored channel values. Call
// [GenerateSDF], [GeneratePSDF], [GenerateMSDF], or [GenerateMTSDF] to fill
// a [Bitmap].
//
//	shape := msdfgen.NewShape()
//	shape.AddContour(contour)
//	shape.Normalize(msdfgen.FlipNegativeWinding)
//	msdfgen.ColorEdgesSimple(shape, msdfgen.DefaultColoringConfig())
//
//	bitmap := msdfgen.NewFloatBitmap(32, 32, 3)
//	transform, err := msdfgen.TransformationForRange(shape.Bounds(), 32, 32, 4.0)
//	if err != nil {
//		// shape has no edges
//	}
//	msdfgen.GenerateMSDF(bitmap, shape, transform, msdfgen.DefaultMSDFGeneratorConfig())
//
// # Scope
//
// This package is the computational core only. It does not parse fonts or
// SVG paths, does not encode images to disk, and does not offer GPU
// acceleration or run-time parallelism — see SPEC_FULL.md for the full
// rationale. Callers own shape construction and bitmap storage; this
// package only computes distance values into bitmaps the caller provides.
package msdfgen
