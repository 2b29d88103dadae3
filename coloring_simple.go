package msdfgen

import (
	"log/slog"

	"github.com/aurelien-rainone/assertgo"
)

// ColorEdgesSimple implements spec.md §4.5's fast heuristic: for each
// contour, detect corners and dispatch on how many were found.
func ColorEdgesSimple(shape *Shape, cfg ColoringConfig) {
	seed := cfg.Seed
	for _, contour := range shape.Contours {
		colorContourSimple(contour, cfg.AngleThreshold, &seed)
	}
}

func colorContourSimple(contour *Contour, threshold float64, seed *uint64) {
	n := len(contour.Edges)
	if n == 0 {
		return
	}
	if n == 1 {
		contour.Edges[0] = contour.Edges[0].WithColor(ColorWhite)
		return
	}

	corners := cornerIndices(contour.Edges, threshold)
	Logger().Debug("coloring contour", slog.Int("edges", n), slog.Int("corners", len(corners)))

	switch len(corners) {
	case 0:
		colorSmoothContour(contour, seed)
	case 1:
		colorTeardropContour(contour, corners[0], seed)
	default:
		colorMultiCornerContour(contour, corners, seed)
	}
}

// colorSmoothContour assigns the whole (corner-free) loop a single
// non-white color advanced from the seed.
func colorSmoothContour(contour *Contour, seed *uint64) {
	c := nextColor(initColor(seed), seed)
	for i := range contour.Edges {
		contour.Edges[i] = contour.Edges[i].WithColor(c)
	}
}

// colorTeardropContour handles the one-corner case: colors A and B are
// chosen with A&B exactly one channel and A|B == WHITE, then distributed
// across the contour via the balanced trichotomy, with WHITE as the
// bridge at the zero-offset positions. Per spec.md §9's open question,
// the index-arithmetic shortcut used by the reference implementation only
// works when corner ∈ {0,1}; contours with fewer than three edges are
// split into thirds first so there are always enough pieces to carry the
// A/bridge/B distribution, and the caller-guarantee is asserted under the
// debug build tag.
func colorTeardropContour(contour *Contour, corner int, seed *uint64) {
	if len(contour.Edges) < 3 {
		assert.True(corner == 0 || corner == 1, "teardrop corner index %d out of the {0,1} range guaranteed for contours with fewer than three edges", corner)
		splitContourInThirds(contour)
		// The corner after old edge c now follows the last third, 3c+2.
		corner = 3*corner + 2
	}

	a, b := teardropColors(seed)
	n := len(contour.Edges)
	for i := 0; i < n; i++ {
		pos := (i - corner - 1 + n) % n
		offset := balancedTrichotomy(pos, n)
		contour.Edges[i] = contour.Edges[i].WithColor(colorFromOffset(offset, a, ColorWhite, b))
	}
}

// colorMultiCornerContour partitions the contour into splines and colors
// each with the seed-advanced next color, banning the initial color only
// on the last spline so the wrap-around boundary's shared channel
// differs, per spec.md §4.5.
func colorMultiCornerContour(contour *Contour, corners []int, seed *uint64) {
	n := len(contour.Edges)
	splines := splitIntoSplines(n, corners)

	current := initColor(seed)
	firstColor := current
	for i, sp := range splines {
		if i > 0 {
			current = nextColor(current, seed)
		}
		if i == len(splines)-1 && len(splines) > 1 {
			// Ban the color the first spline used so the wrap-around
			// corner's two incident splines differ.
			for current == firstColor {
				current = nextColor(current, seed)
			}
		}
		if i == 0 {
			firstColor = current
		}
		for j := sp.Start; j != sp.End; j = (j + 1) % n {
			contour.Edges[j] = contour.Edges[j].WithColor(current)
		}
	}
}

// splitContourInThirds replaces every edge in the contour with its three
// SplitInThirds pieces, in order, tripling the edge count.
func splitContourInThirds(contour *Contour) {
	out := make([]EdgeSegment, 0, len(contour.Edges)*3)
	for _, e := range contour.Edges {
		parts := e.SplitInThirds()
		out = append(out, parts[0], parts[1], parts[2])
	}
	contour.Edges = out
}
