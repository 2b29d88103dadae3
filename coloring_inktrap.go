package msdfgen

// ColorEdgesInkTrap extends ColorEdgesSimple by detecting "minor" corners
// — an approximation of ink-trap features in type design, where a short
// bridging spline sits between two longer bordering splines — and
// recoloring them after the major corners have already been colored, per
// spec.md §4.5.
func ColorEdgesInkTrap(shape *Shape, cfg ColoringConfig) {
	ColorEdgesSimple(shape, cfg)

	for _, contour := range shape.Contours {
		recolorMinorCorners(contour, cfg)
	}
}

// recolorMinorCorners finds every minor corner in a contour already
// colored by the simple algorithm and recolors it as the XOR-complement
// of the bitwise-AND of its neighbors' colors, so that if every minor
// spline were to collapse, the remaining coloring stays self-consistent.
func recolorMinorCorners(contour *Contour, cfg ColoringConfig) {
	n := len(contour.Edges)
	if n < 3 {
		return
	}
	corners := cornerIndices(contour.Edges, cfg.AngleThreshold)
	if len(corners) < 2 {
		return
	}
	splines := splitIntoSplines(n, corners)
	if len(splines) < 3 {
		return
	}

	for i, bridge := range splines {
		prev := splines[(i-1+len(splines))%len(splines)]
		next := splines[(i+1)%len(splines)]
		if !isMinorBridge(contour.Edges, n, prev, bridge, next, cfg.InkTrapFactor) {
			continue
		}

		prevColor := contour.Edges[prev.Start].Color()
		nextColor := contour.Edges[next.Start].Color()
		recolored := prevColor.Intersect(nextColor).Complement()
		for j := bridge.Start; j != bridge.End; j = (j + 1) % n {
			contour.Edges[j] = contour.Edges[j].WithColor(recolored)
		}
	}
}

// isMinorBridge reports whether bridge is shorter than both of its
// bordering splines scaled by factor, the ink-trap heuristic from
// spec.md §4.5.
func isMinorBridge(edges []EdgeSegment, n int, prev, bridge, next spline, factor float64) bool {
	bridgeLen := bridge.length(edges, n)
	if bridgeLen == 0 {
		return true
	}
	return prev.length(edges, n) > factor*bridgeLen && next.length(edges, n) > factor*bridgeLen
}
